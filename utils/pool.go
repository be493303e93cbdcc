package utils

import (
	"context"
	"sync"
	"time"
)

// WorkerPool bounds how many scrape jobs run at once and staggers their
// starts, so several browser sessions never spawn in the same instant.
type WorkerPool struct {
	semaphore chan struct{}
	interval  time.Duration
	wg        sync.WaitGroup
	mu        sync.Mutex
	lastStart time.Time
}

// NewWorkerPool creates a pool running at most maxWorkers jobs concurrently,
// with at least interval between two job starts.
func NewWorkerPool(maxWorkers int, interval time.Duration) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{
		semaphore: make(chan struct{}, maxWorkers),
		interval:  interval,
	}
}

// Submit enqueues a job, blocking until a worker slot frees up. It returns
// false without running the job when the context is cancelled first.
func (wp *WorkerPool) Submit(ctx context.Context, job func()) bool {
	select {
	case wp.semaphore <- struct{}{}:
	case <-ctx.Done():
		return false
	}

	wp.wg.Add(1)
	go func() {
		defer wp.wg.Done()
		defer func() { <-wp.semaphore }()

		wp.staggerStart()
		job()
	}()
	return true
}

// Wait blocks until all submitted jobs have completed.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

func (wp *WorkerPool) staggerStart() {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	elapsed := time.Since(wp.lastStart)
	if !wp.lastStart.IsZero() && elapsed < wp.interval {
		time.Sleep(wp.interval - elapsed)
	}
	wp.lastStart = time.Now()
}
