package renderer

import (
	"image"
	"runtime"
	"sync"
	"time"
)

// rowTask represents one scanline to shade
type rowTask struct {
	Y   int
	Img *image.RGBA // Shared output image; rows are disjoint
}

// rowResult contains the result from shading a scanline
type rowResult struct {
	Y    int
	Hits int
}

// workerPool fans scanline tasks out across a fixed set of goroutines.
// Workers only read the shared scene and camera and write disjoint rows, so
// no synchronization beyond the channels is needed.
type workerPool struct {
	taskQueue   chan rowTask
	resultQueue chan rowResult
	numWorkers  int
	renderer    *Renderer
	wg          sync.WaitGroup
}

// newWorkerPool creates a worker pool with the specified number of workers
func newWorkerPool(r *Renderer, numWorkers int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &workerPool{
		taskQueue:   make(chan rowTask, r.height),
		resultQueue: make(chan rowResult, r.height),
		numWorkers:  numWorkers,
		renderer:    r,
	}
}

// start begins all workers
func (wp *workerPool) start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// stop closes the task queue and waits for workers to drain it
func (wp *workerPool) stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// run is the main worker loop
func (wp *workerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		hits := wp.renderer.renderRow(task.Img, task.Y)
		wp.resultQueue <- rowResult{Y: task.Y, Hits: hits}
	}
}

// RenderFrameParallel renders a single frame with scanline rows dispatched
// across the worker pool. The resulting image is identical to RenderFrame's.
func (r *Renderer) RenderFrameParallel() (*image.RGBA, FrameStats) {
	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))

	pool := newWorkerPool(r, r.workers)
	pool.start()

	for y := 0; y < r.height; y++ {
		pool.taskQueue <- rowTask{Y: y, Img: img}
	}

	hits := 0
	for i := 0; i < r.height; i++ {
		result := <-pool.resultQueue
		hits += result.Hits
	}
	pool.stop()

	return img, r.frameStats(hits, time.Since(startTime))
}
