package world

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// World is a scene: a single point light and the shapes it illuminates.
// The world owns its shapes; intersections and precomputed hits refer into
// it and must not be kept after the world is discarded.
type World struct {
	light  lights.PointLight
	shapes []geometry.Shape
	nextID int
}

// New creates an empty world lit by the given light
func New(light lights.PointLight) *World {
	return &World{
		light:  light,
		shapes: make([]geometry.Shape, 0),
		nextID: 1,
	}
}

// Light returns the world's light
func (w *World) Light() lights.PointLight {
	return w.light
}

// SetLight replaces the world's light
func (w *World) SetLight(light lights.PointLight) {
	w.light = light
}

// Add registers shapes with the world, assigning each a unique ID
func (w *World) Add(shapes ...geometry.Shape) {
	for _, s := range shapes {
		s.SetID(w.nextID)
		w.nextID++
		w.shapes = append(w.shapes, s)
	}
}

// Shapes returns the shapes in insertion order
func (w *World) Shapes() []geometry.Shape {
	out := make([]geometry.Shape, len(w.shapes))
	copy(out, w.shapes)
	return out
}

// Len returns the number of shapes
func (w *World) Len() int {
	return len(w.shapes)
}

// Contains reports whether this exact shape instance belongs to the world
func (w *World) Contains(s geometry.Shape) bool {
	for _, shape := range w.shapes {
		if shape == s {
			return true
		}
	}
	return false
}

// Intersect returns every intersection of the ray with the world, sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, shape := range w.shapes {
		geometry.IntersectInto(shape, ray, &xs)
	}
	return xs
}

// IsShadowed reports whether some shape lies between point and the light
func (w *World) IsShadowed(point core.Point) (bool, error) {
	toLight := w.light.Position.Subtract(point)
	distance := toLight.Length()
	direction, err := toLight.Normalize()
	if err != nil {
		return false, fmt.Errorf("shadow ray from %v: %w", point, err)
	}

	hit, ok := w.Intersect(core.NewRay(point, direction)).Hit()
	return ok && hit.T < distance, nil
}

// ShadeHit computes the color at a precomputed hit. The shadow ray starts
// at the over point so the surface cannot shadow itself.
func (w *World) ShadeHit(comps PreComps) (core.Color, error) {
	shadowed, err := w.IsShadowed(comps.OverPoint)
	if err != nil {
		return core.Black, err
	}

	return lights.Lighting(
		comps.Intersection.Object.Material(),
		w.light,
		comps.Point,
		comps.EyeVec,
		comps.Normal,
		shadowed,
	)
}

// ColorAt returns the color seen along a ray, or black if it hits nothing
func (w *World) ColorAt(ray core.Ray) (core.Color, error) {
	hit, ok := w.Intersect(ray).Hit()
	if !ok {
		return core.Black, nil
	}

	comps, err := PrepareComputations(hit, ray)
	if err != nil {
		return core.Black, err
	}
	return w.ShadeHit(comps)
}
