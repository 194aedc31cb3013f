package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Object holds the state shared by every shape: identity, material and the
// world transform together with its cached inverse and inverse-transpose.
// Concrete shapes embed it.
type Object struct {
	id        int
	material  material.Material
	transform core.Matrix4
	inverse   core.Matrix4
	normalMat core.Matrix4
}

// NewObject creates an object with the default material and identity transform
func NewObject() Object {
	return Object{
		material:  material.Default(),
		transform: core.Identity(),
		inverse:   core.Identity(),
		normalMat: core.Identity(),
	}
}

func (o *Object) ID() int { return o.id }
func (o *Object) SetID(id int) { o.id = id }
func (o *Object) Material() material.Material { return o.material }

// SetMaterial replaces the material; the object keeps its own copy
func (o *Object) SetMaterial(m material.Material) {
	o.material = m
}

func (o *Object) Transform() core.Matrix4 { return o.transform }
func (o *Object) InverseTransform() core.Matrix4 { return o.inverse }
func (o *Object) NormalTransform() core.Matrix4 { return o.normalMat }

// SetTransform assigns the object-to-world transform
func (o *Object) SetTransform(m core.Matrix4) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("shape transform: %w", err)
	}
	o.transform = m
	o.inverse = inv
	o.normalMat = inv.Transpose()
	return nil
}

// Intersect returns every intersection of a world-space ray with the shape
func Intersect(s Shape, ray core.Ray) Intersections {
	var xs Intersections
	IntersectInto(s, ray, &xs)
	return xs
}

// IntersectInto adds the intersections of a world-space ray with s to xs.
// The ray is moved into local space; t values need no conversion back because
// the local ray keeps the world ray's parameterization.
func IntersectInto(s Shape, ray core.Ray, xs *Intersections) {
	localRay := ray.Transform(s.InverseTransform())
	for _, t := range s.LocalIntersect(localRay) {
		xs.Insert(NewIntersection(t, s))
	}
}

// NormalAt returns the unit world-space surface normal at a world point
func NormalAt(s Shape, worldPoint core.Point) (core.Vec3, error) {
	localPoint := s.InverseTransform().MultiplyPoint(worldPoint)
	localNormal := s.LocalNormalAt(localPoint)

	// Inverse-transpose keeps the normal perpendicular under non-uniform scaling
	worldNormal := s.NormalTransform().MultiplyVec(localNormal)
	n, err := worldNormal.Normalize()
	if err != nil {
		return core.Vec3{}, fmt.Errorf("normal at %v: %w", worldPoint, err)
	}
	return n, nil
}

// SameShape reports whether two shapes have equal transforms and materials
func SameShape(a, b Shape) bool {
	return a.Transform().ApproxEqual(b.Transform()) && a.Material().ApproxEqual(b.Material())
}
