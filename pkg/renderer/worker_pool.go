package renderer

import (
	"sync"
	"time"
)

// RowTask represents a row rendering task for the worker pool
type RowTask struct {
	Row    int
	TaskID int    // Submission order, for logging and tests
	Frame  *Frame // Shared frame whose Rows[Row] slot the task fills
}

// RowResult contains the result from rendering a row
type RowResult struct {
	TaskID   int
	Row      int
	Duration time.Duration
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	rows        *RowRenderer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks bounds the queues so that submitting a whole frame never blocks.
func NewWorkerPool(rows *RowRenderer, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultNumWorkers
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, maxTasks),
		resultQueue: make(chan RowResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			rows:        rows,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		start := time.Now()

		// Each task owns exactly one row slot, so writes never overlap
		task.Frame.Rows[task.Row] = w.rows.RenderRow(task.Row)

		w.resultQueue <- RowResult{
			TaskID:   task.TaskID,
			Row:      task.Row,
			Duration: time.Since(start),
		}
	}
}
