package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
	"github.com/df07/go-phong-raytracer/pkg/world"
)

// ErrInvalidScene is returned for a scene file that parses but cannot be built
var ErrInvalidScene = errors.New("invalid scene")

// Defaults for omitted camera and light fields
const (
	DefaultWidth  = 200
	DefaultHeight = 100
	DefaultFOVDeg = 60.0
)

// Vec is a JSON triple, used for points, vectors and colors
type Vec [3]float64

func (v Vec) point() core.Point { return core.NewPoint(v[0], v[1], v[2]) }
func (v Vec) vec() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }
func (v Vec) color() core.Color { return core.NewColor(v[0], v[1], v[2]) }

type CameraCfg struct {
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	FOVDeg float64 `json:"fovDeg,omitempty"`
	From   *Vec    `json:"from,omitempty"`
	To     *Vec    `json:"to,omitempty"`
	Up     *Vec    `json:"up,omitempty"`
}

type LightCfg struct {
	Position  Vec  `json:"position"`
	Intensity *Vec `json:"intensity,omitempty"` // defaults to white
}

// MaterialCfg overrides fields of the default material
type MaterialCfg struct {
	Color     *Vec     `json:"color,omitempty"`
	Ambient   *float64 `json:"ambient,omitempty"`
	Diffuse   *float64 `json:"diffuse,omitempty"`
	Specular  *float64 `json:"specular,omitempty"`
	Shininess *float64 `json:"shininess,omitempty"`
}

// TransformStep is a single transformation. Exactly one field must be set.
// Rotations are in degrees.
type TransformStep struct {
	Translate  *Vec        `json:"translate,omitempty"`
	Scale      *Vec        `json:"scale,omitempty"`
	RotateXDeg *float64    `json:"rotateXDeg,omitempty"`
	RotateYDeg *float64    `json:"rotateYDeg,omitempty"`
	RotateZDeg *float64    `json:"rotateZDeg,omitempty"`
	Shear      *[6]float64 `json:"shear,omitempty"` // xy, xz, yx, yz, zx, zy
}

type ShapeCfg struct {
	Type      string          `json:"type"` // "sphere" or "plane"
	Material  MaterialCfg     `json:"material"`
	Transform []TransformStep `json:"transform,omitempty"` // applied first to last
}

// SceneConfig is the JSON form of a scene
type SceneConfig struct {
	Name        string     `json:"name,omitempty"`
	Variant     string     `json:"variant,omitempty"`
	Description string     `json:"description,omitempty"`
	Group       string     `json:"group,omitempty"`
	Camera      CameraCfg  `json:"camera"`
	Light       LightCfg   `json:"light"`
	Shapes      []ShapeCfg `json:"shapes"`
}

// ParseSceneConfig decodes a scene document, rejecting unknown fields
func ParseSceneConfig(r io.Reader) (*SceneConfig, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var cfg SceneConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return &cfg, nil
}

// LoadSceneConfig reads and decodes a scene file
func LoadSceneConfig(path string) (*SceneConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	return ParseSceneConfig(file)
}

// LoadSceneJSON loads a scene file and builds it. A positive width or
// height overrides the size stored in the file.
func LoadSceneJSON(path string, width, height int) (*scene.Scene, error) {
	cfg, err := LoadSceneConfig(path)
	if err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return cfg.Build(width, height)
}

// ParseSceneJSON decodes and builds a scene document
func ParseSceneJSON(r io.Reader, width, height int) (*scene.Scene, error) {
	cfg, err := ParseSceneConfig(r)
	if err != nil {
		return nil, err
	}
	return cfg.Build(width, height)
}

// Build validates the configuration and constructs the scene
func (cfg *SceneConfig) Build(width, height int) (*scene.Scene, error) {
	camera, err := cfg.Camera.build(width, height)
	if err != nil {
		return nil, err
	}

	w := world.New(cfg.Light.build())
	for i, sc := range cfg.Shapes {
		shape, err := sc.build()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		w.Add(shape)
	}

	return &scene.Scene{Name: cfg.Name, World: w, Camera: camera}, nil
}

func (c CameraCfg) build(width, height int) (*renderer.Camera, error) {
	if width <= 0 {
		width = c.Width
	}
	if height <= 0 {
		height = c.Height
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	fov := c.FOVDeg
	if fov == 0 {
		fov = DefaultFOVDeg
	}

	from, to, up := Vec{0, 0, -5}, Vec{0, 0, 0}, Vec{0, 1, 0}
	if c.From != nil {
		from = *c.From
	}
	if c.To != nil {
		to = *c.To
	}
	if c.Up != nil {
		up = *c.Up
	}

	camera, err := scene.NewCamera(width, height, fov*math.Pi/180, from.point(), to.point(), up.vec())
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	return camera, nil
}

func (l LightCfg) build() lights.PointLight {
	intensity := core.White
	if l.Intensity != nil {
		intensity = l.Intensity.color()
	}
	return lights.NewPointLight(l.Position.point(), intensity)
}

func (m MaterialCfg) build() (material.Material, error) {
	b := material.NewBuilder()
	if m.Color != nil {
		b.Color(m.Color.color())
	}
	if m.Ambient != nil {
		b.Ambient(*m.Ambient)
	}
	if m.Diffuse != nil {
		b.Diffuse(*m.Diffuse)
	}
	if m.Specular != nil {
		b.Specular(*m.Specular)
	}
	if m.Shininess != nil {
		b.Shininess(*m.Shininess)
	}
	return b.Build()
}

// matrix returns the step's transformation matrix
func (s TransformStep) matrix() (core.Matrix4, error) {
	const k = math.Pi / 180

	var m core.Matrix4
	set := 0
	if s.Translate != nil {
		m, set = core.Translation(s.Translate[0], s.Translate[1], s.Translate[2]), set+1
	}
	if s.Scale != nil {
		m, set = core.Scaling(s.Scale[0], s.Scale[1], s.Scale[2]), set+1
	}
	if s.RotateXDeg != nil {
		m, set = core.RotationX(*s.RotateXDeg*k), set+1
	}
	if s.RotateYDeg != nil {
		m, set = core.RotationY(*s.RotateYDeg*k), set+1
	}
	if s.RotateZDeg != nil {
		m, set = core.RotationZ(*s.RotateZDeg*k), set+1
	}
	if s.Shear != nil {
		sh := s.Shear
		m, set = core.Shearing(sh[0], sh[1], sh[2], sh[3], sh[4], sh[5]), set+1
	}
	if set != 1 {
		return core.Matrix4{}, fmt.Errorf("%w: transform step must set exactly one operation, got %d", ErrInvalidScene, set)
	}
	return m, nil
}

// Transform composes the steps so the first listed is applied first
func Transform(steps []TransformStep) (core.Matrix4, error) {
	m := core.Identity()
	for i, step := range steps {
		op, err := step.matrix()
		if err != nil {
			return core.Matrix4{}, fmt.Errorf("step %d: %w", i, err)
		}
		m = op.Multiply(m)
	}
	return m, nil
}

func (sc ShapeCfg) build() (geometry.Shape, error) {
	var shape geometry.Shape
	switch sc.Type {
	case "sphere":
		shape = geometry.NewSphere()
	case "plane":
		shape = geometry.NewPlane()
	default:
		return nil, fmt.Errorf("%w: unknown shape type %q", ErrInvalidScene, sc.Type)
	}

	m, err := sc.Material.build()
	if err != nil {
		return nil, err
	}
	shape.SetMaterial(m)

	transform, err := Transform(sc.Transform)
	if err != nil {
		return nil, err
	}
	if err := shape.SetTransform(transform); err != nil {
		return nil, err
	}
	return shape, nil
}
