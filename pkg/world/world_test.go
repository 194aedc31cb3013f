package world

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

const tolerance = 1e-4

func colorsClose(a, b core.Color) bool {
	return math.Abs(a.R-b.R) < tolerance &&
		math.Abs(a.G-b.G) < tolerance &&
		math.Abs(a.B-b.B) < tolerance
}

func TestDefaultWorld(t *testing.T) {
	w := DefaultWorld()

	if w.Light().Position != core.NewPoint(-10, 10, -10) || w.Light().Intensity != core.White {
		t.Errorf("Unexpected light: %+v", w.Light())
	}
	if w.Len() != 2 {
		t.Fatalf("Expected 2 shapes, got %d", w.Len())
	}

	shapes := w.Shapes()
	outer := shapes[0].Material()
	if outer.Color() != core.NewColor(0.8, 1.0, 0.6) || outer.Diffuse() != 0.7 || outer.Specular() != 0.2 {
		t.Errorf("Unexpected outer material: %+v", outer)
	}
	if shapes[1].Transform() != core.Scaling(0.5, 0.5, 0.5) {
		t.Errorf("Unexpected inner transform:\n%v", shapes[1].Transform())
	}
	if !w.Contains(shapes[0]) || !w.Contains(shapes[1]) {
		t.Error("World should contain its shapes")
	}
	if w.Contains(geometry.NewSphere()) {
		t.Error("World should not contain an unregistered sphere")
	}
}

func TestWorld_AddAssignsDistinctIDs(t *testing.T) {
	w := New(lights.NewPointLight(core.NewPoint(0, 0, 0), core.White))
	a := geometry.NewSphere()
	b := geometry.NewPlane()
	w.Add(a, b)

	if a.ID() == 0 || b.ID() == 0 {
		t.Errorf("Registered shapes should have non-zero IDs, got %d and %d", a.ID(), b.ID())
	}
	if a.ID() == b.ID() {
		t.Errorf("Shapes should have distinct IDs, both got %d", a.ID())
	}
}

func TestWorld_Intersect(t *testing.T) {
	w := DefaultWorld()
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVec3(0, 0, 1))

	xs := w.Intersect(ray)
	expected := []float64{4, 4.5, 5.5, 6}
	if xs.Len() != len(expected) {
		t.Fatalf("Expected %d intersections, got %d", len(expected), xs.Len())
	}
	for i, tVal := range expected {
		if math.Abs(xs.At(i).T-tVal) > core.Epsilon {
			t.Errorf("Position %d: expected t=%f, got t=%f", i, tVal, xs.At(i).T)
		}
	}
}

func TestPrepareComputations(t *testing.T) {
	shape := geometry.NewSphere()

	t.Run("outside", func(t *testing.T) {
		ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVec3(0, 0, 1))
		comps, err := PrepareComputations(geometry.NewIntersection(4, shape), ray)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if comps.Intersection.T != 4 || comps.Intersection.Object != geometry.Shape(shape) {
			t.Errorf("Unexpected intersection: %v", comps.Intersection)
		}
		if !comps.Point.ApproxEqual(core.NewPoint(0, 0, -1)) {
			t.Errorf("Expected point (0,0,-1), got %v", comps.Point)
		}
		if !comps.EyeVec.ApproxEqual(core.NewVec3(0, 0, -1)) {
			t.Errorf("Expected eye (0,0,-1), got %v", comps.EyeVec)
		}
		if !comps.Normal.ApproxEqual(core.NewVec3(0, 0, -1)) {
			t.Errorf("Expected normal (0,0,-1), got %v", comps.Normal)
		}
		if comps.Inside {
			t.Error("Expected hit from outside")
		}
	})

	t.Run("inside", func(t *testing.T) {
		ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, 0, 1))
		comps, err := PrepareComputations(geometry.NewIntersection(1, shape), ray)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !comps.Point.ApproxEqual(core.NewPoint(0, 0, 1)) {
			t.Errorf("Expected point (0,0,1), got %v", comps.Point)
		}
		if !comps.EyeVec.ApproxEqual(core.NewVec3(0, 0, -1)) {
			t.Errorf("Expected eye (0,0,-1), got %v", comps.EyeVec)
		}
		if !comps.Inside {
			t.Error("Expected hit from inside")
		}
		if !comps.Normal.ApproxEqual(core.NewVec3(0, 0, -1)) {
			t.Errorf("Expected flipped normal (0,0,-1), got %v", comps.Normal)
		}
	})
}

func TestPrepareComputations_OverPoint(t *testing.T) {
	shape := geometry.NewSphere()
	if err := shape.SetTransform(core.Translation(0, 0, 1)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVec3(0, 0, 1))

	comps, err := PrepareComputations(geometry.NewIntersection(5, shape), ray)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if comps.OverPoint.Z >= -Bias/2 {
		t.Errorf("Over point should sit above the surface, got z=%g", comps.OverPoint.Z)
	}
	if comps.Point.Z <= comps.OverPoint.Z {
		t.Errorf("Point z=%g should be greater than over point z=%g", comps.Point.Z, comps.OverPoint.Z)
	}
}

func TestWorld_ShadeHit(t *testing.T) {
	t.Run("outside", func(t *testing.T) {
		w := DefaultWorld()
		ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVec3(0, 0, 1))
		comps, err := PrepareComputations(geometry.NewIntersection(4, w.Shapes()[0]), ray)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		c, err := w.ShadeHit(comps)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if expected := core.NewColor(0.38066, 0.47583, 0.2855); !colorsClose(c, expected) {
			t.Errorf("Expected %v, got %v", expected, c)
		}
	})

	t.Run("inside", func(t *testing.T) {
		w := DefaultWorld()
		w.SetLight(lights.NewPointLight(core.NewPoint(0, 0.25, 0), core.White))
		ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, 0, 1))
		comps, err := PrepareComputations(geometry.NewIntersection(0.5, w.Shapes()[1]), ray)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		c, err := w.ShadeHit(comps)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if expected := core.NewColor(0.90498, 0.90498, 0.90498); !colorsClose(c, expected) {
			t.Errorf("Expected %v, got %v", expected, c)
		}
	})

	t.Run("in shadow", func(t *testing.T) {
		w := New(lights.NewPointLight(core.NewPoint(0, 0, -10), core.White))
		s1 := geometry.NewSphere()
		s2 := geometry.NewSphere()
		if err := s2.SetTransform(core.Translation(0, 0, 10)); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		w.Add(s1, s2)

		ray := core.NewRay(core.NewPoint(0, 0, 5), core.NewVec3(0, 0, 1))
		comps, err := PrepareComputations(geometry.NewIntersection(4, s2), ray)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		c, err := w.ShadeHit(comps)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if expected := core.NewColor(0.1, 0.1, 0.1); !colorsClose(c, expected) {
			t.Errorf("Expected %v, got %v", expected, c)
		}
	})
}

func TestWorld_ColorAt(t *testing.T) {
	t.Run("ray misses", func(t *testing.T) {
		w := DefaultWorld()
		c, err := w.ColorAt(core.NewRay(core.NewPoint(0, 0, -5), core.NewVec3(0, 1, 0)))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if c != core.Black {
			t.Errorf("Expected black, got %v", c)
		}
	})

	t.Run("ray hits", func(t *testing.T) {
		w := DefaultWorld()
		c, err := w.ColorAt(core.NewRay(core.NewPoint(0, 0, -5), core.NewVec3(0, 0, 1)))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if expected := core.NewColor(0.38066, 0.47583, 0.2855); !colorsClose(c, expected) {
			t.Errorf("Expected %v, got %v", expected, c)
		}
	})

	t.Run("intersection behind the ray", func(t *testing.T) {
		w := DefaultWorld()
		shapes := w.Shapes()
		for _, s := range shapes {
			m := s.Material()
			if err := m.SetAmbient(1); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			s.SetMaterial(m)
		}

		c, err := w.ColorAt(core.NewRay(core.NewPoint(0, 0, 0.75), core.NewVec3(0, 0, -1)))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if expected := shapes[1].Material().Color(); !colorsClose(c, expected) {
			t.Errorf("Expected inner sphere color %v, got %v", expected, c)
		}
	})
}

func TestWorld_IsShadowed(t *testing.T) {
	tests := []struct {
		name     string
		point    core.Point
		expected bool
	}{
		{"nothing collinear with point and light", core.NewPoint(0, 10, 0), false},
		{"object between point and light", core.NewPoint(10, -10, 10), true},
		{"object behind the light", core.NewPoint(-20, 20, -20), false},
		{"object behind the point", core.NewPoint(-2, 2, -2), false},
	}

	w := DefaultWorld()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := w.IsShadowed(tt.point)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected shadowed=%t, got %t", tt.expected, got)
			}
		})
	}
}

func TestWorld_EmptyWorldIsBlack(t *testing.T) {
	w := New(lights.NewPointLight(core.NewPoint(0, 0, 0), core.White))
	c, err := w.ColorAt(core.NewRay(core.NewPoint(0, 0, -5), core.NewVec3(0, 0, 1)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c != core.Black {
		t.Errorf("Expected black, got %v", c)
	}
}

func TestWorld_ShapeMaterialUsedForShading(t *testing.T) {
	w := New(lights.NewPointLight(core.NewPoint(0, 0, -10), core.White))
	m, err := material.NewBuilder().Color(core.NewColor(1, 0, 0)).Specular(0).Build()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	s := geometry.NewSphere()
	s.SetMaterial(m)
	w.Add(s)

	c, err := w.ColorAt(core.NewRay(core.NewPoint(0, 0, -5), core.NewVec3(0, 0, 1)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// ambient 0.1 + diffuse 0.9 facing the light head on
	if expected := core.NewColor(1, 0, 0); !colorsClose(c, expected) {
		t.Errorf("Expected %v, got %v", expected, c)
	}
}
