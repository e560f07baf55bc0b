package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier used on the command line and in URLs
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
	Width       int    `json:"width"`  // Recommended image width
	Height      int    `json:"height"` // Recommended image height
}

type catalogueEntry struct {
	info  SceneInfo
	build func() (*Scene, error)
}

var catalogue = map[string]catalogueEntry{
	"default": {
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default",
			Description: "Red, blue and green spheres on a yellow ground sphere",
			Width:       400,
			Height:      400,
		},
		build: NewDefaultScene,
	},
	"reflective": {
		info: SceneInfo{
			ID:          "reflective",
			DisplayName: "Reflective Spheres",
			Description: "The default layout with partly mirrored surfaces",
			Width:       400,
			Height:      400,
		},
		build: NewReflectiveScene,
	},
	"shapes": {
		info: SceneInfo{
			ID:          "shapes",
			DisplayName: "Shapes",
			Description: "Sphere, capped cylinder and torus over a reflective plane",
			Width:       400,
			Height:      400,
		},
		build: NewShapesScene,
	},
	"cornell": {
		info: SceneInfo{
			ID:          "cornell",
			DisplayName: "Cornell Box",
			Description: "Open box with colored side walls, a mirror sphere and a glossy sphere",
			Width:       400,
			Height:      400,
		},
		build: NewCornellScene,
	},
	"cylinders": {
		info: SceneInfo{
			ID:          "cylinders",
			DisplayName: "Cylinders",
			Description: "Capped cylinders in several orientations on a ground plane",
			Width:       400,
			Height:      400,
		},
		build: NewCylinderScene,
	},
	"spheregrid": {
		info: SceneInfo{
			ID:          "spheregrid",
			DisplayName: "Sphere Grid",
			Description: "Grid of OKLCH-colored spheres alternating matte and mirror finishes",
			Width:       400,
			Height:      400,
		},
		build: NewSphereGridScene,
	},
	"mirrors": {
		info: SceneInfo{
			ID:          "mirrors",
			DisplayName: "Facing Mirrors",
			Description: "Two mirror spheres reflecting into each other",
			Width:       400,
			Height:      400,
		},
		build: NewMirrorScene,
	},
}

// ListScenes returns every built-in scene sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(catalogue))
	for _, entry := range catalogue {
		scenes = append(scenes, entry.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the scene registered under id
func Create(id string) (*Scene, SceneInfo, error) {
	entry, ok := catalogue[id]
	if !ok {
		return nil, SceneInfo{}, fmt.Errorf("unknown scene: %q", id)
	}
	s, err := entry.build()
	if err != nil {
		return nil, SceneInfo{}, fmt.Errorf("failed to build scene %q: %w", id, err)
	}
	return s, entry.info, nil
}
