package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/world"
)

// ErrUnknownScene is returned by Create for a name with no built-in scene
var ErrUnknownScene = errors.New("unknown scene")

// Scene pairs a world with the camera that views it
type Scene struct {
	Name   string
	World  *world.World
	Camera *renderer.Camera
}

// Builder creates a scene rendered at the given image size
type Builder func(width, height int) (*Scene, error)

var builtins = map[string]Builder{
	"default": NewDefaultScene,
	"room":    NewRoomScene,
	"spheres": NewSpheresScene,
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create builds the named built-in scene
func Create(name string, width, height int) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return build(width, height)
}

// NewCamera creates a camera looking from one point toward another
func NewCamera(width, height int, fov float64, from, to core.Point, up core.Vec3) (*renderer.Camera, error) {
	camera, err := renderer.NewCamera(width, height, fov)
	if err != nil {
		return nil, err
	}
	view, err := renderer.ViewTransform(from, to, up)
	if err != nil {
		return nil, err
	}
	if err := camera.SetTransform(view); err != nil {
		return nil, err
	}
	return camera, nil
}

// place sets a shape's transform and material and adds it to the world
func place(w *world.World, s geometry.Shape, transform core.Matrix4, m material.Material) error {
	if err := s.SetTransform(transform); err != nil {
		return err
	}
	s.SetMaterial(m)
	w.Add(s)
	return nil
}
