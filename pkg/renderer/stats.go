package renderer

import (
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
)

// RenderStats contains statistics about a finished render
type RenderStats struct {
	Width       int           // Image width in pixels
	Height      int           // Image height in pixels
	TotalPixels int           // Total number of pixels rendered
	Workers     int           // Number of goroutines that shaded rows
	Duration    time.Duration // Wall time spent rendering
}

// PixelsPerSecond returns the rendering throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Duration.Seconds()
}

// AverageLuminance returns the mean Rec. 709 luminance of the canvas with
// each channel clamped to [0, 1]
func AverageLuminance(c *canvas.Canvas) float64 {
	total := 0.0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			p := c.PixelAt(x, y).Clamp(0, 1)
			total += 0.2126*p.R + 0.7152*p.G + 0.0722*p.B
		}
	}
	return total / float64(c.Width()*c.Height())
}
