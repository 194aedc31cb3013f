package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/world"
)

// NewDefaultScene views the standard two-sphere world from five units in front
func NewDefaultScene(width, height int) (*Scene, error) {
	camera, err := NewCamera(width, height, math.Pi/2,
		core.NewPoint(0, 0, -5), core.NewPoint(0, 0, 0), core.NewVec3(0, 1, 0))
	if err != nil {
		return nil, err
	}
	return &Scene{Name: "default", World: world.DefaultWorld(), Camera: camera}, nil
}
