package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Surface is a display that accepts one color per pixel
type Surface interface {
	Plot(x, y int, c core.Color)
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// NopLogger discards all output
type NopLogger struct{}

func (NopLogger) Printf(string, ...interface{}) {}

// Renderer computes frames for a scene and draws them onto a surface
type Renderer struct {
	config RenderConfig
	rows   *RowRenderer
	logger core.Logger
}

// NewRenderer validates the configuration and prepares a renderer for scene
func NewRenderer(scene Scene, config RenderConfig, logger core.Logger) (*Renderer, error) {
	if scene == nil {
		return nil, errors.New("renderer: scene is nil")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NopLogger{}
	}

	raytracer := NewRaytracer(scene, config.Trace)
	camera := NewCamera(config.Viewport, config.Width, config.Height)

	return &Renderer{
		config: config,
		rows:   NewRowRenderer(raytracer, camera, config.Width),
		logger: logger,
	}, nil
}

// ComputeFrame traces every row on the worker pool. Rows complete in any
// order; each lands in its own slot of the returned frame.
func (r *Renderer) ComputeFrame() (*Frame, RenderStats, error) {
	start := time.Now()
	frame := NewFrame(r.config.Width, r.config.Height)

	pool := NewWorkerPool(r.rows, r.config.NumWorkers, r.config.Height)
	stats := RenderStats{
		TotalPixels: r.config.Width * r.config.Height,
		Workers:     pool.GetNumWorkers(),
	}

	r.logger.Printf("Rendering %dx%d (using %d workers)...\n", r.config.Width, r.config.Height, stats.Workers)

	pool.Start()
	for y := 0; y < r.config.Height; y++ {
		pool.SubmitTask(RowTask{Row: y, TaskID: y, Frame: frame})
	}

	for i := 0; i < r.config.Height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			pool.Stop()
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		stats.addRow(result.Duration)
	}
	pool.Stop()

	stats.ComputeTime = time.Since(start)
	return frame, stats, nil
}

// ComputeFrameSequential traces every row on the calling goroutine
func (r *Renderer) ComputeFrameSequential() (*Frame, RenderStats) {
	start := time.Now()
	frame := NewFrame(r.config.Width, r.config.Height)
	stats := RenderStats{
		TotalPixels: r.config.Width * r.config.Height,
		Workers:     1,
	}

	r.logger.Printf("Rendering %dx%d sequentially...\n", r.config.Width, r.config.Height)

	for y := 0; y < r.config.Height; y++ {
		rowStart := time.Now()
		frame.Rows[y] = r.rows.RenderRow(y)
		stats.addRow(time.Since(rowStart))
	}

	stats.ComputeTime = time.Since(start)
	return frame, stats
}

// Render computes the full frame in parallel and only then draws it
func (r *Renderer) Render(surface Surface) (RenderStats, error) {
	if surface == nil {
		return RenderStats{}, errors.New("renderer: surface is nil")
	}

	frame, stats, err := r.ComputeFrame()
	if err != nil {
		return RenderStats{}, err
	}
	stats.AverageLuminance = frame.AverageLuminance()
	stats.DrawTime = Draw(surface, frame)

	r.logger.Printf("Render completed in %v (compute %v, draw %v)\n",
		stats.ComputeTime+stats.DrawTime, stats.ComputeTime, stats.DrawTime)
	return stats, nil
}

// RenderSequential is Render without the worker pool. Output is pixel-identical.
func (r *Renderer) RenderSequential(surface Surface) (RenderStats, error) {
	if surface == nil {
		return RenderStats{}, errors.New("renderer: surface is nil")
	}

	frame, stats := r.ComputeFrameSequential()
	stats.AverageLuminance = frame.AverageLuminance()
	stats.DrawTime = Draw(surface, frame)

	r.logger.Printf("Render completed in %v (compute %v, draw %v)\n",
		stats.ComputeTime+stats.DrawTime, stats.ComputeTime, stats.DrawTime)
	return stats, nil
}

// Draw plots every pixel of frame exactly once, row by row, left to right
func Draw(surface Surface, frame *Frame) time.Duration {
	start := time.Now()
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			surface.Plot(x, y, frame.Rows[y][x])
		}
	}
	return time.Since(start)
}

// Render paints scene onto surface at width x height using workers row
// workers and the default tracing constants
func Render(surface Surface, width, height int, scene Scene, workers int) error {
	config := DefaultRenderConfig(width, height)
	config.NumWorkers = workers

	r, err := NewRenderer(scene, config, nil)
	if err != nil {
		return err
	}
	_, err = r.Render(surface)
	return err
}
