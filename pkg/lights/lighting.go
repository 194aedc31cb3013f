package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Lighting evaluates the Phong reflection model at a surface point.
// eye and normal must be unit vectors. When inShadow is set only the
// ambient term contributes.
func Lighting(m material.Material, light PointLight, point core.Point, eye, normal core.Vec3, inShadow bool) (core.Color, error) {
	effectiveColor := m.Color().MultiplyColor(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient())

	if inShadow {
		return ambient, nil
	}

	lightDir, err := light.Position.Subtract(point).Normalize()
	if err != nil {
		return core.Black, fmt.Errorf("light direction at %v: %w", point, err)
	}

	// Light on the far side of the surface contributes nothing beyond ambient
	lightDotNormal := lightDir.Dot(normal)
	if lightDotNormal < 0 {
		return ambient, nil
	}

	diffuse := effectiveColor.Multiply(m.Diffuse() * lightDotNormal)

	specular := core.Black
	reflectDir := lightDir.Negate().Reflect(normal)
	if reflectDotEye := reflectDir.Dot(eye); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess())
		specular = light.Intensity.Multiply(m.Specular() * factor)
	}

	return ambient.Add(diffuse).Add(specular), nil
}
