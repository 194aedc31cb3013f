package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ErrInvalidMaterial is returned when a reflection coefficient is negative
var ErrInvalidMaterial = errors.New("invalid material parameter")

// Default Phong coefficients
const (
	DefaultAmbient   = 0.1
	DefaultDiffuse   = 0.9
	DefaultSpecular  = 0.9
	DefaultShininess = 200.0
)

// Material holds the Phong reflectance parameters of a surface.
// Coefficients are kept private so every assignment goes through a setter
// that rejects negative values.
type Material struct {
	color     core.Color
	ambient   float64
	diffuse   float64
	specular  float64
	shininess float64
}

// NewMaterial creates a material with the default coefficients and the given color
func NewMaterial(color core.Color) Material {
	return Material{
		color:     color,
		ambient:   DefaultAmbient,
		diffuse:   DefaultDiffuse,
		specular:  DefaultSpecular,
		shininess: DefaultShininess,
	}
}

// Default returns a white material with the default coefficients
func Default() Material {
	return NewMaterial(core.White)
}

func (m Material) Color() core.Color { return m.color }
func (m Material) Ambient() float64 { return m.ambient }
func (m Material) Diffuse() float64 { return m.diffuse }
func (m Material) Specular() float64 { return m.specular }
func (m Material) Shininess() float64 { return m.shininess }

// SetColor sets the surface color
func (m *Material) SetColor(c core.Color) {
	m.color = c
}

// SetAmbient sets the ambient reflection coefficient
func (m *Material) SetAmbient(v float64) error {
	if err := checkNonNegative("ambient", v); err != nil {
		return err
	}
	m.ambient = v
	return nil
}

// SetDiffuse sets the diffuse reflection coefficient
func (m *Material) SetDiffuse(v float64) error {
	if err := checkNonNegative("diffuse", v); err != nil {
		return err
	}
	m.diffuse = v
	return nil
}

// SetSpecular sets the specular reflection coefficient
func (m *Material) SetSpecular(v float64) error {
	if err := checkNonNegative("specular", v); err != nil {
		return err
	}
	m.specular = v
	return nil
}

// SetShininess sets the specular exponent
func (m *Material) SetShininess(v float64) error {
	if err := checkNonNegative("shininess", v); err != nil {
		return err
	}
	m.shininess = v
	return nil
}

// ApproxEqual compares two materials within core.Epsilon
func (m Material) ApproxEqual(other Material) bool {
	return m.color.ApproxEqual(other.color) &&
		core.FloatEqual(m.ambient, other.ambient) &&
		core.FloatEqual(m.diffuse, other.diffuse) &&
		core.FloatEqual(m.specular, other.specular) &&
		core.FloatEqual(m.shininess, other.shininess)
}

func checkNonNegative(name string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%w: %s must be non-negative, got %g", ErrInvalidMaterial, name, v)
	}
	return nil
}

// Builder assembles a Material from chained calls. The first invalid value
// is remembered and reported by Build.
type Builder struct {
	m   Material
	err error
}

// NewBuilder starts from the default material
func NewBuilder() *Builder {
	return &Builder{m: Default()}
}

// From starts a builder from an existing material
func From(m Material) *Builder {
	return &Builder{m: m}
}

func (b *Builder) Color(c core.Color) *Builder {
	b.m.SetColor(c)
	return b
}

func (b *Builder) Ambient(v float64) *Builder {
	return b.apply(b.m.SetAmbient, v)
}

func (b *Builder) Diffuse(v float64) *Builder {
	return b.apply(b.m.SetDiffuse, v)
}

func (b *Builder) Specular(v float64) *Builder {
	return b.apply(b.m.SetSpecular, v)
}

func (b *Builder) Shininess(v float64) *Builder {
	return b.apply(b.m.SetShininess, v)
}

func (b *Builder) apply(set func(float64) error, v float64) *Builder {
	if b.err != nil {
		return b
	}
	b.err = set(v)
	return b
}

// Build returns the material or the first error encountered
func (b *Builder) Build() (Material, error) {
	if b.err != nil {
		return Material{}, b.err
	}
	return b.m, nil
}
