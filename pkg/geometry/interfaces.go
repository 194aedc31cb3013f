package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
//
// Concrete shapes only know their own local space: LocalIntersect and
// LocalNormalAt work on an untransformed primitive. The world-space entry
// points are the package functions Intersect and NormalAt, which move rays
// and points through the shape's transform before delegating.
type Shape interface {
	// ID identifies the shape within a world; 0 means not yet registered
	ID() int
	SetID(id int)

	Material() material.Material
	SetMaterial(m material.Material)

	Transform() core.Matrix4
	// SetTransform rejects singular matrices with core.ErrSingularMatrix
	SetTransform(m core.Matrix4) error
	InverseTransform() core.Matrix4
	NormalTransform() core.Matrix4

	// LocalIntersect returns the t values where a local-space ray meets the shape
	LocalIntersect(ray core.Ray) []float64
	// LocalNormalAt returns the (unnormalized) local-space normal at a local point
	LocalNormalAt(point core.Point) core.Vec3
}
