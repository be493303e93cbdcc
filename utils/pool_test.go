package utils

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPoolRunsEverything(t *testing.T) {
	pool := NewWorkerPool(4, 0)
	var ran int64

	ctx := context.Background()
	for i := 0; i < 20; i++ {
		if ok := pool.Submit(ctx, func() {
			atomic.AddInt64(&ran, 1)
		}); !ok {
			t.Fatal("Submit should accept jobs while the context is live")
		}
	}
	pool.Wait()

	if ran != 20 {
		t.Errorf("jobs ran: got %d, want 20", ran)
	}
}

func TestWorkerPoolBoundsConcurrency(t *testing.T) {
	pool := NewWorkerPool(2, 0)
	var active, peak int64

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		pool.Submit(ctx, func() {
			n := atomic.AddInt64(&active, 1)
			for {
				p := atomic.LoadInt64(&peak)
				if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt64(&active, -1)
		})
	}
	pool.Wait()

	if peak > 2 {
		t.Errorf("peak concurrency: got %d, want at most 2", peak)
	}
}

func TestWorkerPoolStaggersStarts(t *testing.T) {
	interval := 50 * time.Millisecond
	pool := NewWorkerPool(1, interval)

	var timestamps []time.Time
	gate := make(chan struct{}, 1)
	gate <- struct{}{}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		pool.Submit(ctx, func() {
			<-gate
			timestamps = append(timestamps, time.Now())
			gate <- struct{}{}
		})
	}
	pool.Wait()

	for i := 1; i < len(timestamps); i++ {
		if gap := timestamps[i].Sub(timestamps[i-1]); gap < interval {
			t.Errorf("gap between job %d and %d: %v < minimum %v", i-1, i, gap, interval)
		}
	}
}

func TestWorkerPoolCancelledSubmit(t *testing.T) {
	pool := NewWorkerPool(1, 0)

	release := make(chan struct{})
	pool.Submit(context.Background(), func() { <-release })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if ok := pool.Submit(ctx, func() {
		t.Error("job should not run after cancellation")
	}); ok {
		t.Error("Submit should report refusal on a cancelled context")
	}

	close(release)
	pool.Wait()
}
