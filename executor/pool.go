// Package executor provides concrete Executor implementations usable with
// package futures: a dynamic (unbounded) thread pool, a fixed-capacity
// thread pool, and a single-goroutine serial executor. None of these types
// import package futures; they satisfy its Executor interface
// (Execute(func())) structurally, so they can be adopted without a
// dependency cycle.
package executor

// slotPool recycles small per-submission bookkeeping values to cut
// allocations on the hot Execute path. Get returns a usable value,
// constructing one via newSlot if the pool is empty; Put returns it for
// reuse. Implementations must be safe for concurrent use.
type slotPool interface {
	get() *slot
	put(*slot)
}

// slot is the per-submission bookkeeping value recycled by the pools.
// done receives one value from Execute once the submitted function returns
// without panicking; reset drains it before the slot is reused. Nothing in
// this package reads it.
type slot struct {
	done chan struct{}
}

func newSlot() *slot { return &slot{done: make(chan struct{}, 1)} }

func (s *slot) reset() {
	select {
	case <-s.done:
	default:
	}
}
