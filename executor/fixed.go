package executor

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Fixed is an Executor backed by a bounded number of concurrently running
// goroutines. It replaces the teacher library's hand-rolled
// available/all/buf channel juggling (pool/fixed.go) with a
// golang.org/x/sync/semaphore.Weighted admission gate, sized to capacity.
//
// Execute still returns immediately: when the pool is at capacity, the
// submitted function is queued on an internal goroutine that blocks on the
// semaphore rather than blocking the caller, preserving the Executor
// contract ("must not block the caller on task completion").
type Fixed struct {
	sem   *semaphore.Weighted
	slots *dynamicSlotPool
}

// NewFixed constructs a Fixed executor with the given capacity (must be > 0).
func NewFixed(capacity uint) *Fixed {
	if capacity == 0 {
		panic("executor: NewFixed requires capacity > 0")
	}
	return &Fixed{
		sem:   semaphore.NewWeighted(int64(capacity)),
		slots: newDynamicSlotPool(),
	}
}

// Execute submits fn for execution. If fewer than capacity goroutines are
// currently running, fn starts immediately on a new one; otherwise a
// lightweight dispatcher goroutine is spawned to wait for a free slot,
// keeping Execute itself non-blocking.
func (f *Fixed) Execute(fn func()) {
	s := f.slots.get()
	go func() {
		defer f.slots.put(s)
		if err := f.sem.Acquire(context.Background(), 1); err != nil {
			return
		}
		defer f.sem.Release(1)
		defer func() { recover() }() //nolint:errcheck // Execute offers no channel to report a panic through.
		fn()
		s.done <- struct{}{}
	}()
}
