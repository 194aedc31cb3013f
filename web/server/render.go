package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// RenderResponse is returned for format=json
type RenderResponse struct {
	Scene     string           `json:"scene"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
	ElapsedMs int64            `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	TotalPixels      int     `json:"totalPixels"`
	Workers          int     `json:"workers"`
	PixelsPerSecond  float64 `json:"pixelsPerSecond"`
	AverageLuminance float64 `json:"averageLuminance"`
}

// consoleBuffer bounds the log lines collected for one render
const consoleBuffer = 32

// handleRender renders a scene and returns it as PNG, PPM or JSON
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeJSONError(w, sceneErrorStatus(err), err.Error())
		return
	}

	consoleChan := make(chan ConsoleMessage, consoleBuffer)
	logger := NewWebLogger(req.Scene, consoleChan)
	raytracer := renderer.NewRaytracer(renderer.RenderConfig{NumWorkers: req.Workers}, logger)

	// Use request context to stop rendering when the client disconnects
	startTime := time.Now()
	img, stats, err := raytracer.Render(r.Context(), sceneObj.Camera, sceneObj.World)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("Render of %s canceled by client", req.Scene)
			return
		}
		writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	switch req.Format {
	case "ppm":
		s.writeImage(w, "image/x-portable-pixmap", img.WritePPM)
	case "png":
		s.writeImage(w, "image/png", img.WritePNG)
	case "json":
		imageData, err := s.canvasToBase64PNG(img)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
			return
		}
		writeJSON(w, http.StatusOK, RenderResponse{
			Scene:     req.Scene,
			ImageData: imageData,
			Stats: Stats{
				Width:            stats.Width,
				Height:           stats.Height,
				TotalPixels:      stats.TotalPixels,
				Workers:          stats.Workers,
				PixelsPerSecond:  stats.PixelsPerSecond(),
				AverageLuminance: renderer.AverageLuminance(img),
			},
			Console:   drainConsole(consoleChan),
			ElapsedMs: time.Since(startTime).Milliseconds(),
		})
	}
}

// writeImage encodes into a buffer first so an encoding failure can still
// be reported with an error status
func (s *Server) writeImage(w http.ResponseWriter, contentType string, encode func(w io.Writer) error) {
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// canvasToBase64PNG converts a canvas to base64-encoded PNG
func (s *Server) canvasToBase64PNG(img *canvas.Canvas) (string, error) {
	var buf bytes.Buffer
	if err := img.WritePNG(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// drainConsole collects the messages already logged without blocking
func drainConsole(ch chan ConsoleMessage) []ConsoleMessage {
	messages := []ConsoleMessage{}
	for {
		select {
		case msg := <-ch:
			messages = append(messages, msg)
		default:
			return messages
		}
	}
}
