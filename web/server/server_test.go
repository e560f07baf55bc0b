package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, "/api/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, "/api/scenes")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var scenes []scene.SceneInfo
	if err := json.NewDecoder(rec.Body).Decode(&scenes); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(scenes) != len(scene.ListScenes()) {
		t.Errorf("Expected %d scenes, got %d", len(scene.ListScenes()), len(scenes))
	}
	for _, info := range scenes {
		if info.ID == "" || info.Width <= 0 || info.Height <= 0 {
			t.Errorf("Incomplete scene info: %+v", info)
		}
	}
}

func TestHandleRender(t *testing.T) {
	rec := get(t, "/api/render?scene=reflective&width=32&height=24&workers=3")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}
	if rec.Header().Get("X-Render-ID") == "" {
		t.Error("Expected a render ID header")
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Body is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("Expected 32x24 image, got %v", b)
	}
}

func TestHandleRender_MatchesAcrossWorkerCounts(t *testing.T) {
	one := get(t, "/api/render?scene=shapes&width=24&height=24&workers=1")
	many := get(t, "/api/render?scene=shapes&width=24&height=24&workers=8")

	if one.Code != http.StatusOK || many.Code != http.StatusOK {
		t.Fatalf("Expected 200s, got %d and %d", one.Code, many.Code)
	}
	if !bytes.Equal(one.Body.Bytes(), many.Body.Bytes()) {
		t.Error("PNG output should not depend on the worker count")
	}
}

func TestHandleRender_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"unknown scene", "scene=nope"},
		{"zero width", "width=0"},
		{"huge height", "height=100000"},
		{"non-numeric width", "width=wide"},
		{"zero workers", "workers=0"},
		{"negative depth", "depth=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, "/api/render?"+tt.query)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", rec.Code)
			}
			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("Invalid JSON error body: %v", err)
			}
			if body["error"] == "" {
				t.Error("Expected an error message")
			}
		})
	}
}

func TestHandleRender_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/render", nil)
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}

func TestHandleInspect(t *testing.T) {
	// Just below the image center the camera looks at the red sphere
	rec := get(t, "/api/inspect?scene=default&width=40&height=40&x=20&y=25")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp InspectResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if !resp.Hit || resp.GeometryType != "sphere" {
		t.Errorf("Expected a sphere hit, got %+v", resp)
	}
	if resp.Distance < 1 {
		t.Errorf("Hit distance %f is inside the primary range", resp.Distance)
	}
	if resp.Properties["materialColor"] == nil {
		t.Error("Expected material color in properties")
	}

	// The top-left corner looks up into empty sky
	rec = get(t, "/api/inspect?scene=default&width=40&height=40&x=0&y=0")
	resp = InspectResponse{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if resp.Hit || resp.Color != "#ffffff" || resp.ObjectIndex != -1 {
		t.Errorf("Expected a background miss, got %+v", resp)
	}
}

func TestHandleInspect_BadRequests(t *testing.T) {
	for _, query := range []string{
		"scene=default&width=40&height=40",
		"scene=default&width=40&height=40&x=40&y=0",
		"scene=default&width=40&height=40&x=0&y=-1",
		"scene=nope&x=0&y=0",
	} {
		if rec := get(t, "/api/inspect?"+query); rec.Code != http.StatusBadRequest {
			t.Errorf("Query %q: expected 400, got %d", query, rec.Code)
		}
	}
}

func TestWebLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWebLogger("render-test-1", log.New(&buf, "", 0))

	logger.Printf("Rendering %dx%d...\n", 4, 3)
	logger.Printf("done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %q", lines)
	}
	if lines[0] != "[render-test-1] Rendering 4x3..." {
		t.Errorf("Unexpected first line %q", lines[0])
	}
	if lines[1] != "[render-test-1] done" {
		t.Errorf("Unexpected second line %q", lines[1])
	}
}

func TestNewRenderID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newRenderID()
		if seen[id] {
			t.Fatalf("Duplicate render ID %s", id)
		}
		seen[id] = true
	}
}
