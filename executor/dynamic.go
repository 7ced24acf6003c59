package executor

import "sync"

// dynamicSlotPool is a wrapper around sync.Pool, mirroring the teacher
// library's dynamic worker pool: capacity grows and shrinks with demand,
// and the garbage collector is free to reclaim idle slots under memory
// pressure.
type dynamicSlotPool struct {
	pool sync.Pool
}

func newDynamicSlotPool() *dynamicSlotPool {
	return &dynamicSlotPool{pool: sync.Pool{New: func() interface{} { return newSlot() }}}
}

func (p *dynamicSlotPool) get() *slot {
	s := p.pool.Get().(*slot)
	s.reset()
	return s
}

func (p *dynamicSlotPool) put(s *slot) { p.pool.Put(s) }

// Dynamic is an Executor that runs every submitted function on its own
// goroutine. There is no admission limit: Execute never blocks the caller,
// and concurrency grows with the number of in-flight submissions.
type Dynamic struct {
	slots *dynamicSlotPool
}

// NewDynamic constructs a Dynamic executor.
func NewDynamic() *Dynamic {
	return &Dynamic{slots: newDynamicSlotPool()}
}

// Execute runs fn on a new goroutine. It never blocks and never panics for
// a well-formed fn; a panic inside fn is recovered so one failing
// submission cannot take down unrelated work sharing the process.
func (d *Dynamic) Execute(fn func()) {
	s := d.slots.get()
	go func() {
		defer d.slots.put(s)
		defer func() { recover() }() //nolint:errcheck // Execute offers no channel to report a panic through.
		fn()
		s.done <- struct{}{}
	}()
}
