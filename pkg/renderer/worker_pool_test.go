package renderer

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestWorkerPool_FillsRequestedRows(t *testing.T) {
	scene := createTestScene(t, 0)
	config := DefaultRenderConfig(12, 10)
	rows := NewRowRenderer(NewRaytracer(scene, config.Trace), NewCamera(config.Viewport, 12, 10), 12)
	frame := NewFrame(12, 10)

	pool := NewWorkerPool(rows, 3, 10)
	pool.Start()

	// Submit in reverse to make sure placement follows the row number
	submitted := []int{9, 7, 4, 0}
	for i, y := range submitted {
		pool.SubmitTask(RowTask{Row: y, TaskID: i, Frame: frame})
	}

	seen := make(map[int]bool)
	for range submitted {
		result, ok := pool.GetResult()
		if !ok {
			t.Fatal("Result queue closed early")
		}
		if submitted[result.TaskID] != result.Row {
			t.Errorf("Task %d reported row %d, expected %d", result.TaskID, result.Row, submitted[result.TaskID])
		}
		seen[result.Row] = true
	}
	pool.Stop()

	for y := 0; y < 10; y++ {
		if seen[y] != (frame.Rows[y] != nil) {
			t.Errorf("Row %d: seen=%v but filled=%v", y, seen[y], frame.Rows[y] != nil)
		}
	}
	for _, y := range submitted {
		expected := rows.RenderRow(y)
		for x, c := range frame.Rows[y] {
			if c != expected[x] {
				t.Fatalf("Row %d pixel %d: expected %v, got %v", y, x, expected[x], c)
			}
		}
	}

	if _, ok := pool.GetResult(); ok {
		t.Error("Expected closed result queue after Stop")
	}
}

func TestWorkerPool_DefaultWorkerCount(t *testing.T) {
	pool := NewWorkerPool(nil, 0, 1)
	if pool.GetNumWorkers() != DefaultNumWorkers {
		t.Errorf("Expected %d workers, got %d", DefaultNumWorkers, pool.GetNumWorkers())
	}
}

func TestRowRenderer_RowLength(t *testing.T) {
	config := DefaultRenderConfig(7, 3)
	rows := NewRowRenderer(NewRaytracer(MockScene{}, config.Trace), NewCamera(config.Viewport, 7, 3), 7)

	row := rows.RenderRow(1)
	if len(row) != 7 {
		t.Fatalf("Expected 7 pixels, got %d", len(row))
	}
	for x, c := range row {
		if c != core.White {
			t.Errorf("Pixel %d of empty scene should be background, got %v", x, c)
		}
	}
}
