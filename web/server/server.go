package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Limits on requested image sizes
const (
	minImageSize = 1
	maxImageSize = 2000
)

// errSceneNotFound is returned for a scene ID that names nothing
var errSceneNotFound = errors.New("scene not found")

// Server handles web requests for the raytracer
type Server struct {
	port      int
	scenesDir string
}

// NewServer creates a new web server that also serves JSON scenes found in scenesDir
func NewServer(port int, scenesDir string) *Server {
	return &Server{port: port, scenesDir: scenesDir}
}

// RenderRequest represents a render or inspect request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Scene ID (e.g., "room" or "json:room-corner")
	Width   int    `json:"width"`   // Image width
	Height  int    `json:"height"`  // Image height
	Workers int    `json:"workers"` // Rendering goroutines, 0 for all CPUs
	Format  string `json:"format"`  // "png", "ppm" or "json"
}

// Handler returns the HTTP handler serving the API
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists built-in and file scenes grouped for display
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	response, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// parseRenderRequest parses request parameters shared by render and inspect
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "room", Format: "png"}

	if sceneID := query.Get("scene"); sceneID != "" {
		req.Scene = sceneID
	}
	if format := query.Get("format"); format != "" {
		req.Format = format
	}
	if req.Format != "png" && req.Format != "ppm" && req.Format != "json" {
		return nil, fmt.Errorf("format must be png, ppm or json, got: %s", req.Format)
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 200, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 100, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, 256); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.Workers == 1 {
		log.Printf("Render warning: Large image rendered on a single worker may render slowly")
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds a scene by ID: a built-in name or "json:<file name>"
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	if name, ok := strings.CutPrefix(req.Scene, "json:"); ok {
		// Scene IDs are file names, never paths
		if name == "" || name != filepath.Base(name) {
			return nil, fmt.Errorf("%w: %s", errSceneNotFound, req.Scene)
		}
		path := filepath.Join(s.scenesDir, name+".json")
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %s", errSceneNotFound, req.Scene)
		}
		return loaders.LoadSceneJSON(path, req.Width, req.Height)
	}

	sceneObj, err := scene.Create(req.Scene, req.Width, req.Height)
	if errors.Is(err, scene.ErrUnknownScene) {
		return nil, fmt.Errorf("%w: %s", errSceneNotFound, req.Scene)
	}
	return sceneObj, err
}

// sceneErrorStatus maps scene creation errors to HTTP status codes
func sceneErrorStatus(err error) int {
	if errors.Is(err, errSceneNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
