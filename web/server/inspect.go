package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Color        string                 `json:"color"` // Final pixel color, #rrggbb
	GeometryType string                 `json:"geometryType,omitempty"`
	ObjectIndex  int                    `json:"objectIndex"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// extractGeometryInfo names the shape and lists its orientation where it has one
func extractGeometryInfo(obj geometry.Object, properties map[string]interface{}) string {
	if oriented, ok := obj.(geometry.Oriented); ok {
		axis := oriented.Axis()
		properties["axis"] = [3]float64{axis.X, axis.Y, axis.Z}
	}

	switch obj.(type) {
	case *geometry.Sphere:
		return "sphere"
	case *geometry.Plane:
		return "plane"
	case *geometry.Cylinder:
		return "cylinder"
	case *geometry.Torus:
		return "torus"
	default:
		return "unknown"
	}
}

// extractMaterialInfo lists the shading parameters of a material
func extractMaterialInfo(mat material.Material, properties map[string]interface{}) {
	properties["materialColor"] = mat.Color.Hex()
	properties["reflective"] = mat.Reflective
	if mat.HasSpecular() {
		properties["specular"] = mat.Specular
	}
}

// inspectPixel casts the primary ray through pixel (x, y) and describes the first object hit
func inspectPixel(sceneObj *scene.Scene, width, height, x, y int) InspectResponse {
	camera := renderer.NewCamera(renderer.DefaultViewport(), width, height)
	raytracer := renderer.NewRaytracer(sceneObj, renderer.DefaultTraceConfig())
	ray := camera.GetRay(x, y)

	response := InspectResponse{
		Color:       raytracer.TracePrimary(ray).Hex(),
		ObjectIndex: -1,
	}

	hit, ok := raytracer.Inspect(ray)
	if !ok {
		return response
	}

	properties := make(map[string]interface{})
	response.Hit = true
	response.ObjectIndex = hit.Index
	response.GeometryType = extractGeometryInfo(hit.Object, properties)
	extractMaterialInfo(hit.Object.Material(), properties)
	response.Point = vecArray(hit.Point)
	response.Normal = vecArray(hit.Normal)
	response.Distance = hit.T
	response.Properties = properties
	return response
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// handleInspect reports what the camera sees through a single pixel
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, _, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	query := r.URL.Query()
	if query.Get("x") == "" || query.Get("y") == "" {
		writeError(w, http.StatusBadRequest, "x and y are required")
		return
	}
	x, err := parseIntParam(query, "x", 0, 0, req.Width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", 0, 0, req.Height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sceneObj, _, err := scene.Create(req.Scene)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, req.Width, req.Height, x, y))
}
