package world

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// Bias is how far the over point is pushed off the surface along the normal
const Bias = 50 * core.Epsilon

// PreComps holds the geometry of one ray/shape hit needed for shading
type PreComps struct {
	Intersection geometry.Intersection
	Point        core.Point // World-space hit point
	OverPoint    core.Point // Hit point nudged along the normal by Bias
	EyeVec       core.Vec3  // Unit vector back toward the ray origin
	Normal       core.Vec3  // Unit normal, flipped to face the eye
	Inside       bool       // Whether the ray origin is inside the shape
}

// PrepareComputations derives shading geometry from a hit and the ray that produced it
func PrepareComputations(hit geometry.Intersection, ray core.Ray) (PreComps, error) {
	point := ray.At(hit.T)
	eye := ray.Direction.Negate()

	normal, err := geometry.NormalAt(hit.Object, point)
	if err != nil {
		return PreComps{}, err
	}

	inside := false
	if normal.Dot(eye) < 0 {
		inside = true
		normal = normal.Negate()
	}

	return PreComps{
		Intersection: hit,
		Point:        point,
		OverPoint:    point.Add(normal.Multiply(Bias)),
		EyeVec:       eye,
		Normal:       normal,
		Inside:       inside,
	}, nil
}
