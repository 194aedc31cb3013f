package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/world"
)

// ErrInvalidCamera is returned for a camera with a non-positive image size
// or a field of view outside (0, π)
var ErrInvalidCamera = errors.New("invalid camera")

// Camera maps pixels of an image to rays. The image plane sits one unit in
// front of the eye at z = -1 in camera space; the transform moves the world
// relative to the camera.
type Camera struct {
	hSize, vSize int
	fov          float64
	transform    core.Matrix4
	inverse      core.Matrix4

	// Derived from size and field of view
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera at the origin looking down -z
func NewCamera(hSize, vSize int, fov float64) (*Camera, error) {
	if hSize <= 0 || vSize <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidCamera, hSize, vSize)
	}
	if fov <= 0 || fov >= math.Pi {
		return nil, fmt.Errorf("%w: field of view %g", ErrInvalidCamera, fov)
	}

	c := &Camera{
		hSize:     hSize,
		vSize:     vSize,
		fov:       fov,
		transform: core.Identity(),
		inverse:   core.Identity(),
	}
	c.computePixelSize()
	return c, nil
}

// computePixelSize fits the image plane to the field of view along its longer side
func (c *Camera) computePixelSize() {
	halfView := math.Tan(c.fov / 2)
	aspect := float64(c.hSize) / float64(c.vSize)

	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(c.hSize)
}

func (c *Camera) HSize() int { return c.hSize }
func (c *Camera) VSize() int { return c.vSize }
func (c *Camera) FieldOfView() float64 { return c.fov }
func (c *Camera) PixelSize() float64 { return c.pixelSize }
func (c *Camera) Transform() core.Matrix4 { return c.transform }

// SetTransform sets the view transform, usually built with ViewTransform
func (c *Camera) SetTransform(m core.Matrix4) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// RayForPixel returns the world-space ray through the center of pixel (x, y)
func (c *Camera) RayForPixel(x, y int) (core.Ray, error) {
	// Offset from the edge of the canvas to the pixel's center
	xOffset := (float64(x) + 0.5) * c.pixelSize
	yOffset := (float64(y) + 0.5) * c.pixelSize

	// Untransformed coordinates of the pixel; the camera looks toward -z so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyPoint(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyPoint(core.Origin)
	direction, err := pixel.Subtract(origin).Normalize()
	if err != nil {
		return core.Ray{}, fmt.Errorf("ray for pixel (%d, %d): %w", x, y, err)
	}

	return core.NewRay(origin, direction), nil
}

// Render draws the world one pixel at a time in row-major order
func (c *Camera) Render(w *world.World) (*canvas.Canvas, error) {
	img, err := canvas.New(c.hSize, c.vSize)
	if err != nil {
		return nil, err
	}
	for y := 0; y < c.vSize; y++ {
		if err := renderRow(c, w, img, y); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// ViewTransform orients the world relative to an eye at from, looking at
// to, with up roughly pointing upward
func ViewTransform(from, to core.Point, up core.Vec3) (core.Matrix4, error) {
	forward, err := to.Subtract(from).Normalize()
	if err != nil {
		return core.Matrix4{}, fmt.Errorf("view transform forward: %w", err)
	}
	upN, err := up.Normalize()
	if err != nil {
		return core.Matrix4{}, fmt.Errorf("view transform up: %w", err)
	}

	left := forward.Cross(upN)
	trueUp := left.Cross(forward)

	orientation := core.Matrix4{
		left.X, left.Y, left.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	}
	return orientation.Multiply(core.Translation(-from.X, -from.Y, -from.Z)), nil
}
