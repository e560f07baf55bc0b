package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/display"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneType  string
	width      int // 0 means the scene's recommended width
	height     int // 0 means the scene's recommended height
	workers    int
	depth      int
	sequential bool
	output     string // empty means output/<scene>/render_<timestamp>.png
}

func main() {
	var opts options
	flag.StringVar(&opts.sceneType, "scene", "default", "Scene to render (see -help for the list)")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (default: scene's recommended width)")
	flag.IntVar(&opts.height, "height", 0, "Image height in pixels (default: scene's recommended height)")
	flag.IntVar(&opts.workers, "workers", renderer.DefaultNumWorkers, "Number of parallel row workers")
	flag.IntVar(&opts.depth, "depth", renderer.DefaultTraceConfig().MaxDepth, "Maximum reflection depth")
	flag.BoolVar(&opts.sequential, "sequential", false, "Trace rows on a single goroutine")
	flag.StringVar(&opts.output, "output", "", "Output PNG path")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	fmt.Println("Starting Whitted Raytracer...")

	filename, err := run(opts, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

func showHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
}

// createScene builds the named built-in scene
func createScene(sceneType string) (*scene.Scene, scene.SceneInfo, error) {
	if sceneType == "" {
		return nil, scene.SceneInfo{}, fmt.Errorf("scene type must not be empty")
	}
	return scene.Create(sceneType)
}

// buildConfig applies command line overrides to the scene's defaults
func buildConfig(opts options, info scene.SceneInfo) renderer.RenderConfig {
	width, height := info.Width, info.Height
	if opts.width != 0 {
		width = opts.width
	}
	if opts.height != 0 {
		height = opts.height
	}

	config := renderer.DefaultRenderConfig(width, height)
	config.NumWorkers = opts.workers
	config.Trace.MaxDepth = opts.depth
	return config
}

// outputPath returns where the render for opts should be written
func outputPath(opts options, now time.Time) string {
	if opts.output != "" {
		return opts.output
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", opts.sceneType, fmt.Sprintf("render_%s.png", timestamp))
}

// run renders the selected scene and saves it as a PNG, returning the file name
func run(opts options, logger core.Logger) (string, error) {
	selectedScene, info, err := createScene(opts.sceneType)
	if err != nil {
		return "", err
	}
	logger.Printf("Using %s scene (%d objects)...\n", info.DisplayName, selectedScene.GetPrimitiveCount())

	config := buildConfig(opts, info)
	r, err := renderer.NewRenderer(selectedScene, config, logger)
	if err != nil {
		return "", err
	}

	canvas, err := display.NewCanvas(config.Width, config.Height)
	if err != nil {
		return "", err
	}

	var stats renderer.RenderStats
	if opts.sequential {
		stats, err = r.RenderSequential(canvas)
	} else {
		stats, err = r.Render(canvas)
	}
	if err != nil {
		return "", err
	}
	logger.Printf("Traced %d pixels in %d rows (slowest row %v, average luminance %.3f)\n",
		stats.TotalPixels, stats.Rows, stats.SlowestRow, stats.AverageLuminance)

	filename := outputPath(opts, time.Now())
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	if err := canvas.SavePNG(filename); err != nil {
		return "", err
	}
	return filename, nil
}
