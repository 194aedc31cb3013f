package material

import (
	"errors"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestDefaultMaterial(t *testing.T) {
	m := Default()

	if m.Color() != core.White {
		t.Errorf("Expected white, got %v", m.Color())
	}
	if m.Ambient() != 0.1 || m.Diffuse() != 0.9 || m.Specular() != 0.9 || m.Shininess() != 200 {
		t.Errorf("Unexpected default coefficients: %+v", m)
	}
}

func TestMaterial_SettersRejectNegative(t *testing.T) {
	tests := []struct {
		name string
		set  func(m *Material) error
	}{
		{"ambient", func(m *Material) error { return m.SetAmbient(-0.1) }},
		{"diffuse", func(m *Material) error { return m.SetDiffuse(-1) }},
		{"specular", func(m *Material) error { return m.SetSpecular(-0.5) }},
		{"shininess", func(m *Material) error { return m.SetShininess(-10) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Default()
			err := tt.set(&m)
			if !errors.Is(err, ErrInvalidMaterial) {
				t.Errorf("Expected ErrInvalidMaterial, got %v", err)
			}
			if !m.ApproxEqual(Default()) {
				t.Errorf("Rejected assignment should leave material unchanged, got %+v", m)
			}
		})
	}
}

func TestMaterial_SettersAcceptZero(t *testing.T) {
	m := Default()
	if err := m.SetSpecular(0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if m.Specular() != 0 {
		t.Errorf("Expected specular 0, got %f", m.Specular())
	}
}

func TestBuilder(t *testing.T) {
	m, err := NewBuilder().
		Color(core.NewColor(0.8, 1.0, 0.6)).
		Diffuse(0.7).
		Specular(0.2).
		Build()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if m.Color() != core.NewColor(0.8, 1.0, 0.6) || m.Diffuse() != 0.7 || m.Specular() != 0.2 {
		t.Errorf("Builder produced %+v", m)
	}
	if m.Ambient() != DefaultAmbient || m.Shininess() != DefaultShininess {
		t.Errorf("Builder should keep untouched defaults, got %+v", m)
	}

	_, err = NewBuilder().Ambient(-1).Diffuse(0.5).Build()
	if !errors.Is(err, ErrInvalidMaterial) {
		t.Errorf("Expected ErrInvalidMaterial from builder, got %v", err)
	}
}

func TestMaterialIsCopiedByValue(t *testing.T) {
	original := Default()
	copied := original
	copied.SetColor(core.Black)
	if original.Color() != core.White {
		t.Error("Mutating a copy should not affect the original")
	}
}
