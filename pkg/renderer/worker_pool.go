package renderer

import (
	"context"
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Ctx    context.Context // Render context; a done context skips the tile
	Tile   *Tile
	Buffer *SampleBuffer // Shared buffer; each task writes only its tile's bounds
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TileID   int
	WorkerID int
	Stats    TileStats
	Elapsed  time.Duration
	Skipped  bool // Set when the render was cancelled before the tile finished
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	wg          sync.WaitGroup
}

// Worker renders tiles pulled from the shared task queue
type Worker struct {
	ID          int
	camera      scene.Camera
	integrator  integrator.Integrator
	taskQueue   <-chan TileTask
	resultQueue chan<- TileResult
}

// NewWorkerPool creates a pool of numWorkers workers sharing one integrator.
// queueSize bounds the number of pending tasks and results.
func NewWorkerPool(camera scene.Camera, integ integrator.Integrator, numWorkers, queueSize int) *WorkerPool {
	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, queueSize),
		resultQueue: make(chan TileResult, queueSize),
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			camera:      camera,
			integrator:  integ,
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

// Stop waits for queued tasks to finish and shuts the workers down
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.workers)
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	// Every task posts a result, skipped or not, so the collector's count holds
	for task := range w.taskQueue {
		start := time.Now()
		stats, done := w.renderTile(task.Ctx, task.Tile, task.Buffer)
		w.resultQueue <- TileResult{
			TileID:   task.Tile.ID,
			WorkerID: w.ID,
			Stats:    stats,
			Elapsed:  time.Since(start),
			Skipped:  !done,
		}
	}
}

// renderTile casts one camera ray per sample inside the tile bounds. ctx is
// checked before each row; done is false when the tile was abandoned.
func (w *Worker) renderTile(ctx context.Context, tile *Tile, buffer *SampleBuffer) (stats TileStats, done bool) {
	bounds := tile.Bounds
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if ctx.Err() != nil {
			return stats, false
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := SampleRay(w.camera, x, y, buffer.Width, buffer.Height)
			color, hit := w.integrator.CastRay(ray, 0)
			buffer.Set(x, y, Sample{Color: color, Hit: hit})

			stats.Samples++
			if hit {
				stats.Hits++
			}
		}
	}
	return stats, true
}
