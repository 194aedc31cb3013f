package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight is a light source with no size at a single position
type PointLight struct {
	Position  core.Point
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Point, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
