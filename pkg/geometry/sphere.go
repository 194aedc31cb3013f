package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Sphere is a unit sphere centered at the local origin. Size and position
// come from its transform.
type Sphere struct {
	Object
}

// NewSphere creates a unit sphere with the default material and identity transform
func NewSphere() *Sphere {
	return &Sphere{Object: NewObject()}
}

// LocalIntersect solves |O + tD|² = 1 for t
func (s *Sphere) LocalIntersect(ray core.Ray) []float64 {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(core.Origin)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	// A tangent ray yields two equal roots
	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return []float64{t1, t2}
}

// LocalNormalAt returns the vector from the center to the point
func (s *Sphere) LocalNormalAt(point core.Point) core.Vec3 {
	return point.Subtract(core.Origin)
}
