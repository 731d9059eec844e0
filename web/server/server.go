package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmw7/go-raycast-renderer/pkg/output"
	"github.com/dmw7/go-raycast-renderer/pkg/renderer"
	"github.com/dmw7/go-raycast-renderer/pkg/scene"
)

// Server handles web requests for the raycast renderer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string // Scene name (e.g. "default")
	Width  int    // Image width
	Height int    // Image height
	Thumb  int    // Thumbnail width (0 = full frame)
}

// StatsResponse represents frame statistics returned as JSON
type StatsResponse struct {
	Scene       string `json:"scene"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	TotalPixels int    `json:"totalPixels"`
	HitPixels   int    `json:"hitPixels"`
	MissPixels  int    `json:"missPixels"`
	RenderMs    int64  `json:"renderMs"`
}

// Handler returns the route handler, exposed for tests
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/health", s.handleHealth)
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

// handleRender renders a single frame and returns it as PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, rt, err := s.setupRender(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	img, stats := rt.RenderFrameParallel()
	log.Printf("Rendered %s %dx%d in %v", req.Scene, req.Width, req.Height, stats.RenderTime)

	var data []byte
	if req.Thumb > 0 {
		data, err = output.EncodePNG(output.Thumbnail(img, uint(req.Thumb)))
	} else {
		data, err = output.EncodePNG(img)
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode image: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleStats renders a frame and returns its statistics as JSON
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	req, rt, err := s.setupRender(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, stats := rt.RenderFrameParallel()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(StatsResponse{
		Scene:       req.Scene,
		Width:       req.Width,
		Height:      req.Height,
		TotalPixels: stats.TotalPixels,
		HitPixels:   stats.HitPixels,
		MissPixels:  stats.MissPixels,
		RenderMs:    stats.RenderTime.Milliseconds(),
	})
}

// setupRender parses request parameters and builds the renderer
func (s *Server) setupRender(r *http.Request) (*RenderRequest, *renderer.Renderer, error) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid request: %w", err)
	}

	sceneObj := s.createScene(req.Scene)
	if sceneObj == nil {
		return nil, nil, fmt.Errorf("unknown scene: %s", req.Scene)
	}

	rt, err := renderer.NewRenderer(sceneObj, req.Width, req.Height)
	if err != nil {
		return nil, nil, err
	}
	return req, rt, nil
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if scene := r.URL.Query().Get("scene"); scene != "" {
		req.Scene = scene
	} else {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 800, 2, 4096); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 450, 2, 4096); err != nil {
		return nil, err
	}
	if req.Thumb, err = parseIntParam(r.URL.Query(), "thumb", 0, 0, 1024); err != nil {
		return nil, err
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

// createScene creates a scene based on the scene name
func (s *Server) createScene(sceneName string) *scene.Scene {
	switch sceneName {
	case "default":
		return scene.NewDefaultScene()
	case "row":
		return scene.NewRowScene()
	default:
		return nil
	}
}
