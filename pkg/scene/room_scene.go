package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/world"
)

// Materials shared by the room and spheres scenes
func roomMaterials() (wall, middle, right, left material.Material, err error) {
	if wall, err = material.NewBuilder().Color(core.NewColor(1, 0.9, 0.9)).Specular(0).Build(); err != nil {
		return
	}
	if middle, err = material.NewBuilder().Color(core.NewColor(0.1, 1, 0.5)).Diffuse(0.7).Specular(0.3).Build(); err != nil {
		return
	}
	if right, err = material.NewBuilder().Color(core.NewColor(0.5, 1, 0.1)).Diffuse(0.7).Specular(0.3).Build(); err != nil {
		return
	}
	left, err = material.NewBuilder().Color(core.NewColor(1, 0.8, 0.1)).Diffuse(0.7).Specular(0.3).Build()
	return
}

// addRoomSpheres adds the three spheres that sit on the floor
func addRoomSpheres(w *world.World, middle, right, left material.Material) error {
	if err := place(w, geometry.NewSphere(),
		core.Identity().Translated(-0.5, 1, 0.5), middle); err != nil {
		return err
	}
	if err := place(w, geometry.NewSphere(),
		core.Identity().Scaled(0.5, 0.5, 0.5).Translated(1.5, 0.5, -0.5), right); err != nil {
		return err
	}
	return place(w, geometry.NewSphere(),
		core.Identity().Scaled(0.33, 0.33, 0.33).Translated(-1.5, 0.33, -0.75), left)
}

func newRoomView(width, height int) (*Scene, error) {
	camera, err := NewCamera(width, height, math.Pi/3,
		core.NewPoint(0, 1.5, -5), core.NewPoint(0, 1, 0), core.NewVec3(0, 1, 0))
	if err != nil {
		return nil, err
	}
	return &Scene{Camera: camera}, nil
}

// NewRoomScene creates three spheres standing on a floor plane in a corner
// formed by two wall planes, lit from the front left
func NewRoomScene(width, height int) (*Scene, error) {
	s, err := newRoomView(width, height)
	if err != nil {
		return nil, err
	}
	s.Name = "room"

	wall, middle, right, left, err := roomMaterials()
	if err != nil {
		return nil, err
	}

	w := world.New(lights.NewPointLight(core.NewPoint(-1, 2, -3), core.White))
	if err := place(w, geometry.NewPlane(), core.Identity(), wall); err != nil {
		return nil, err
	}
	if err := place(w, geometry.NewPlane(),
		core.Identity().RotatedZ(math.Pi/2).Translated(-5, 0, 0), wall); err != nil {
		return nil, err
	}
	if err := place(w, geometry.NewPlane(),
		core.Identity().RotatedX(math.Pi/2).Translated(0, 0, 10), wall); err != nil {
		return nil, err
	}
	if err := addRoomSpheres(w, middle, right, left); err != nil {
		return nil, err
	}

	s.World = w
	return s, nil
}

// NewSpheresScene builds the room from flattened spheres instead of planes,
// with walls angled away from the camera
func NewSpheresScene(width, height int) (*Scene, error) {
	s, err := newRoomView(width, height)
	if err != nil {
		return nil, err
	}
	s.Name = "spheres"

	wall, middle, right, left, err := roomMaterials()
	if err != nil {
		return nil, err
	}

	w := world.New(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))
	slab := core.Identity().Scaled(10, 0.01, 10)
	if err := place(w, geometry.NewSphere(), slab, wall); err != nil {
		return nil, err
	}
	if err := place(w, geometry.NewSphere(),
		slab.RotatedX(math.Pi/2).RotatedY(-math.Pi/4).Translated(0, 0, 5), wall); err != nil {
		return nil, err
	}
	if err := place(w, geometry.NewSphere(),
		slab.RotatedX(math.Pi/2).RotatedY(math.Pi/4).Translated(0, 0, 5), wall); err != nil {
		return nil, err
	}
	if err := addRoomSpheres(w, middle, right, left); err != nil {
		return nil, err
	}

	s.World = w
	return s, nil
}
