package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

const (
	defaultWidth  = 200
	defaultHeight = 100
	scenesDir     = "scenes"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "room", "Built-in scene name, scene file name in scenes/, or path to a .json scene")
	configPath := flag.String("config", "", "Path to a JSON scene file (overrides -scene)")
	width := flag.Int("width", 0, "Image width in pixels (0 uses the scene's size)")
	height := flag.Int("height", 0, "Image height in pixels (0 uses the scene's size)")
	workers := flag.Int("workers", 1, "Number of rendering goroutines (0 = all CPUs)")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	out := flag.String("out", "", "Output file, '-' for stdout (default output/<scene>/render_<timestamp>.<format>)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.BuiltInScenes() {
			fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
		}
		return
	}

	if *format != "ppm" && *format != "png" {
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", *format)
		os.Exit(2)
	}

	selectedScene, err := createScene(*sceneType, *configPath, *width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	raytracer := renderer.NewRaytracer(renderer.RenderConfig{NumWorkers: *workers}, stderrLogger{})
	img, stats, err := raytracer.Render(context.Background(), selectedScene.Camera, selectedScene.World)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}

	filename := *out
	if filename == "" {
		filename = defaultOutputPath(selectedScene.Name, *format, time.Now())
	}

	writeStart := time.Now()
	if err := saveImage(img, filename, *format); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "\nImage %d x %d\n", stats.Width, stats.Height)
	fmt.Fprintf(os.Stderr, "Rendering took %dms.\n", stats.Duration.Milliseconds())
	fmt.Fprintf(os.Stderr, "Writing %s took %dms.\n", strings.ToUpper(*format), time.Since(writeStart).Milliseconds())
	fmt.Fprintf(os.Stderr, "Average luminance: %.3f\n", renderer.AverageLuminance(img))
	if filename != "-" {
		fmt.Fprintf(os.Stderr, "Render saved as %s\n", filename)
	}
}

// stderrLogger keeps stdout free for image data
type stderrLogger struct{}

func (stderrLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// createScene resolves a scene from a config file, a built-in name, a file
// in the scenes directory or a direct path to a JSON scene
func createScene(sceneType, configPath string, width, height int) (*scene.Scene, error) {
	if configPath != "" {
		return loaders.LoadSceneJSON(configPath, width, height)
	}
	if sceneType == "" {
		return nil, errors.New("no scene given")
	}

	if strings.HasSuffix(sceneType, ".json") {
		return loaders.LoadSceneJSON(sceneType, width, height)
	}

	s, err := scene.Create(sceneType, orDefault(width, defaultWidth), orDefault(height, defaultHeight))
	if !errors.Is(err, scene.ErrUnknownScene) {
		return s, err
	}

	path := filepath.Join(scenesDir, sceneType+".json")
	if _, statErr := os.Stat(path); statErr != nil {
		return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(scene.Names(), ", "))
	}
	return loaders.LoadSceneJSON(path, width, height)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.<format>
func defaultOutputPath(sceneName, format string, now time.Time) string {
	if sceneName == "" {
		sceneName = "scene"
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.%s", timestamp, format))
}

// saveImage writes the canvas to filename, or to stdout for "-"
func saveImage(img *canvas.Canvas, filename, format string) error {
	if filename == "-" {
		return encodeImage(os.Stdout, img, format)
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := encodeImage(file, img, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func encodeImage(w io.Writer, img *canvas.Canvas, format string) error {
	switch format {
	case "png":
		return img.WritePNG(w)
	case "ppm":
		return img.WritePPM(w)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
