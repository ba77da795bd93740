// Package debounce coalesces bursts of work per key. Scheduling a task for a
// key replaces any task for that key that has not fired yet; tasks that
// already started are never interrupted.
package debounce

import (
	"context"
	"sync"
	"time"
)

// Scheduler runs the last task scheduled for each key once the key has been
// idle for the configured delay.
type Scheduler struct {
	delay time.Duration

	mu      sync.Mutex
	pending map[string]*task
	running int
	// idle holds the channels of Wait calls, closed when running drops to zero
	idle []chan struct{}
}

type task struct {
	timer *time.Timer
	fn    func()
}

// New creates a scheduler with the given idle window
func New(delay time.Duration) *Scheduler {
	return &Scheduler{
		delay:   delay,
		pending: make(map[string]*task),
	}
}

// Schedule cancels the pending task for key, if any, and schedules fn in its
// place. Both happen under one lock, so no other Schedule for the key can
// observe the gap.
func (s *Scheduler) Schedule(key string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.pending[key]; ok {
		prev.timer.Stop()
	}

	t := &task{fn: fn}
	t.timer = time.AfterFunc(s.delay, func() { s.fire(key, t) })
	s.pending[key] = t
}

// fire runs t unless it was replaced or flushed while its timer was firing
func (s *Scheduler) fire(key string, t *task) {
	s.mu.Lock()
	if s.pending[key] != t {
		s.mu.Unlock()
		return
	}
	delete(s.pending, key)
	s.running++
	s.mu.Unlock()

	defer s.done()
	t.fn()
}

// done marks one started task as returned and releases waiters once none is left
func (s *Scheduler) done() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running--
	if s.running > 0 {
		return
	}
	for _, ch := range s.idle {
		close(ch)
	}
	s.idle = nil
}

// Cancel drops the pending task for key and reports whether one existed
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.pending[key]
	if !ok {
		return false
	}
	t.timer.Stop()
	delete(s.pending, key)
	return true
}

// Pending returns the number of tasks waiting for their idle window
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Flush starts every pending task immediately and waits until all started
// tasks have returned or ctx is done.
func (s *Scheduler) Flush(ctx context.Context) error {
	s.mu.Lock()
	tasks := make([]*task, 0, len(s.pending))
	for key, t := range s.pending {
		t.timer.Stop()
		delete(s.pending, key)
		tasks = append(tasks, t)
	}
	s.running += len(tasks)
	s.mu.Unlock()

	for _, t := range tasks {
		go func() {
			defer s.done()
			t.fn()
		}()
	}

	return s.Wait(ctx)
}

// Wait blocks until no task is running or ctx is done.
// A task whose timer fires while Wait is blocked delays it until that task
// returns as well.
func (s *Scheduler) Wait(ctx context.Context) error {
	s.mu.Lock()
	if s.running == 0 {
		s.mu.Unlock()
		return nil
	}
	idle := make(chan struct{})
	s.idle = append(s.idle, idle)
	s.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
