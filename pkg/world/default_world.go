package world

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// DefaultWorld creates the reference world: a white light at (-10, 10, -10)
// and two concentric spheres, the outer one green-tinted and the inner one
// scaled by half with the default material.
func DefaultWorld() *World {
	w := New(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	outerMaterial, err := material.NewBuilder().
		Color(core.NewColor(0.8, 1.0, 0.6)).
		Diffuse(0.7).
		Specular(0.2).
		Build()
	if err != nil {
		panic(fmt.Sprintf("default world material: %v", err))
	}
	outer := geometry.NewSphere()
	outer.SetMaterial(outerMaterial)

	inner := geometry.NewSphere()
	if err := inner.SetTransform(core.Scaling(0.5, 0.5, 0.5)); err != nil {
		panic(fmt.Sprintf("default world transform: %v", err))
	}

	w.Add(outer, inner)
	return w
}
