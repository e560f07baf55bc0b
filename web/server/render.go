package server

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/display"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string // Scene ID from /api/scenes
	Width   int    // Image width, defaults to the scene's recommended width
	Height  int    // Image height, defaults to the scene's recommended height
	Workers int    // Number of row workers
	Depth   int    // Maximum reflection depth
}

// parseRenderRequest parses and validates request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, scene.SceneInfo, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	info, ok := findScene(req.Scene)
	if !ok {
		return nil, scene.SceneInfo{}, fmt.Errorf("unknown scene: %s", req.Scene)
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", info.Width, minImageSize, maxImageSize); err != nil {
		return nil, info, err
	}
	if req.Height, err = parseIntParam(query, "height", info.Height, minImageSize, maxImageSize); err != nil {
		return nil, info, err
	}
	if req.Workers, err = parseIntParam(query, "workers", renderer.DefaultNumWorkers, 1, maxWorkers); err != nil {
		return nil, info, err
	}
	if req.Depth, err = parseIntParam(query, "depth", renderer.DefaultTraceConfig().MaxDepth, 0, maxDepth); err != nil {
		return nil, info, err
	}

	return req, info, nil
}

// findScene looks a scene up in the built-in catalogue
func findScene(id string) (scene.SceneInfo, bool) {
	for _, info := range scene.ListScenes() {
		if info.ID == id {
			return info, true
		}
	}
	return scene.SceneInfo{}, false
}

// handleRender renders a scene and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, _, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	renderID := newRenderID()
	logger := NewWebLogger(renderID, nil)

	sceneObj, _, err := scene.Create(req.Scene)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	config := renderer.DefaultRenderConfig(req.Width, req.Height)
	config.NumWorkers = req.Workers
	config.Trace.MaxDepth = req.Depth

	rend, err := renderer.NewRenderer(sceneObj, config, logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	frame, stats, err := rend.ComputeFrame()
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	// Client went away while we were tracing
	if err := r.Context().Err(); err != nil {
		logger.Printf("Render abandoned: %v", err)
		return
	}

	canvas, err := display.NewCanvas(config.Width, config.Height)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	stats.DrawTime = renderer.Draw(canvas, frame)

	var buf bytes.Buffer
	if err := canvas.EncodePNG(&buf); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	logger.Printf("Rendered %s at %dx%d in %v", req.Scene, req.Width, req.Height, stats.ComputeTime+stats.DrawTime)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-ID", renderID)
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt((stats.ComputeTime+stats.DrawTime).Milliseconds(), 10))
	w.Header().Set("X-Render-Luminance", strconv.FormatFloat(frame.AverageLuminance(), 'f', 4, 64))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing render %s: %v", renderID, err)
	}
}
