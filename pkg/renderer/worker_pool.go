package renderer

import (
	"fmt"
	"runtime"
)

// task is a unit of strip work together with the channel its outcome is
// reported on. Join points decide what to do with the outcome; the fractal
// producer discards it.
type task struct {
	run    func() error
	result chan<- error
}

// WorkerPool is a fixed-size pool of long-lived workers. The workers are
// never drained: their goroutines simply end with the process, so a pool
// does not block shutdown.
type WorkerPool struct {
	tasks      chan task
	numWorkers int
}

// NewWorkerPool creates a pool with the given number of workers and starts
// them. A non-positive count means one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	p := &WorkerPool{
		tasks:      make(chan task),
		numWorkers: numWorkers,
	}
	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}
	return p
}

// NumWorkers returns the number of workers in the pool
func (p *WorkerPool) NumWorkers() int {
	return p.numWorkers
}

// Submit queues a unit of work; its outcome is sent on result
func (p *WorkerPool) Submit(run func() error, result chan<- error) {
	p.tasks <- task{run: run, result: result}
}

// worker is the main worker loop
func (p *WorkerPool) worker() {
	for t := range p.tasks {
		t.result <- runTask(t.run)
	}
}

// runTask converts a panicking task into an error outcome so a failure
// stays local to its strip
func runTask(run func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("renderer: task panicked: %v", r)
		}
	}()
	return run()
}
