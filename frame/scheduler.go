package frame

import (
	"context"
	"sync"
	"time"
)

// Scheduler is a one-shot frame scheduler: RequestFrame asks for fn to be
// invoked once, before the next repaint. A request is never repeated; callers
// that want another frame must request again. The returned function cancels
// the request if it has not fired yet.
type Scheduler interface {
	RequestFrame(fn func(now time.Time)) (cancel func())
}

type request struct {
	id uint64
	fn func(now time.Time)
}

// requestQueue holds the callbacks waiting for the next frame.
type requestQueue struct {
	mu       sync.Mutex
	nextID   uint64
	requests []request
}

func (q *requestQueue) RequestFrame(fn func(now time.Time)) func() {
	q.mu.Lock()
	q.nextID++
	id := q.nextID
	q.requests = append(q.requests, request{id: id, fn: fn})
	q.mu.Unlock()

	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		for i, r := range q.requests {
			if r.id == id {
				q.requests = append(q.requests[:i], q.requests[i+1:]...)
				return
			}
		}
	}
}

// fire invokes every callback pending at call time. Callbacks requested while
// firing wait for the next frame.
func (q *requestQueue) fire(now time.Time) int {
	q.mu.Lock()
	pending := q.requests
	q.requests = nil
	q.mu.Unlock()

	for _, r := range pending {
		r.fn(now)
	}
	return len(pending)
}

func (q *requestQueue) pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.requests)
}

// TickerScheduler fires pending frame requests at a fixed interval from a
// single goroutine, so callbacks never overlap.
type TickerScheduler struct {
	requestQueue
	interval time.Duration
}

// NewTickerScheduler creates a scheduler that fires every interval once Run
// is called.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	return &TickerScheduler{interval: interval}
}

// Run fires pending requests on every tick until the context is cancelled.
func (s *TickerScheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.fire(now)
		}
	}
}

// Pending reports how many requests are waiting for the next tick.
func (s *TickerScheduler) Pending() int {
	return s.pending()
}

// StepScheduler is a Scheduler driven by hand. Each call to Step plays the
// role of one display refresh.
type StepScheduler struct {
	requestQueue
}

// NewStepScheduler creates an idle StepScheduler.
func NewStepScheduler() *StepScheduler {
	return &StepScheduler{}
}

// Step fires every request pending at call time and returns how many fired.
func (s *StepScheduler) Step(now time.Time) int {
	return s.fire(now)
}

// Pending reports how many requests are waiting for the next Step.
func (s *StepScheduler) Pending() int {
	return s.pending()
}
