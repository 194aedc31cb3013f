package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Plane is the local xz plane with its normal pointing along +y
type Plane struct {
	Object
}

// NewPlane creates an xz plane with the default material and identity transform
func NewPlane() *Plane {
	return &Plane{Object: NewObject()}
}

// LocalIntersect returns the single crossing of the y=0 plane
func (p *Plane) LocalIntersect(ray core.Ray) []float64 {
	// Parallel or coplanar rays never cross the plane
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// LocalNormalAt is constant for a plane
func (p *Plane) LocalNormalAt(point core.Point) core.Vec3 {
	return core.NewVec3(0, 1, 0)
}
