package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/world"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	// NumWorkers is the number of goroutines shading rows. 1 renders
	// sequentially, 0 or less uses runtime.NumCPU().
	NumWorkers int
}

// DefaultRenderConfig renders sequentially
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{NumWorkers: 1}
}

// Raytracer renders a world through a camera onto a canvas
type Raytracer struct {
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Raytracer{config: config, logger: logger}
}

func (rt *Raytracer) workers() int {
	if rt.config.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return rt.config.NumWorkers
}

// Render shades every pixel of the camera's image. Rows are independent, so
// with more than one worker each row is shaded by its own goroutine; the
// resulting canvas is identical to a sequential render.
func (rt *Raytracer) Render(ctx context.Context, camera *Camera, w *world.World) (*canvas.Canvas, RenderStats, error) {
	img, err := canvas.New(camera.HSize(), camera.VSize())
	if err != nil {
		return nil, RenderStats{}, err
	}

	numWorkers := min(rt.workers(), camera.VSize())
	rt.logger.Printf("Rendering %dx%d with %d worker(s)...\n", camera.HSize(), camera.VSize(), numWorkers)
	start := time.Now()

	if numWorkers == 1 {
		err = rt.renderSequential(ctx, camera, w, img)
	} else {
		err = rt.renderParallel(ctx, camera, w, img, numWorkers)
	}
	if err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		Width:       camera.HSize(),
		Height:      camera.VSize(),
		TotalPixels: camera.HSize() * camera.VSize(),
		Workers:     numWorkers,
		Duration:    time.Since(start),
	}
	rt.logger.Printf("Render completed in %v (%.0f pixels/s)\n", stats.Duration, stats.PixelsPerSecond())
	return img, stats, nil
}

func (rt *Raytracer) renderSequential(ctx context.Context, camera *Camera, w *world.World, img *canvas.Canvas) error {
	for y := 0; y < camera.VSize(); y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := renderRow(camera, w, img, y); err != nil {
			return err
		}
	}
	return nil
}

func (rt *Raytracer) renderParallel(ctx context.Context, camera *Camera, w *world.World, img *canvas.Canvas, numWorkers int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	for y := 0; y < camera.VSize(); y++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Each row writes a disjoint slice of the canvas
			return renderRow(camera, w, img, y)
		})
	}
	return g.Wait()
}

// renderRow shades row y left to right
func renderRow(camera *Camera, w *world.World, img *canvas.Canvas, y int) error {
	for x := 0; x < camera.HSize(); x++ {
		ray, err := camera.RayForPixel(x, y)
		if err != nil {
			return err
		}
		c, err := w.ColorAt(ray)
		if err != nil {
			return fmt.Errorf("pixel (%d, %d): %w", x, y, err)
		}
		img.WritePixel(x, y, c)
	}
	return nil
}
