package futures

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// status values for state.status. They are monotonic: unset -> (value |
// exception), never backward (invariant 1 in the data model).
const (
	statusUnset int32 = iota
	statusValue
	statusException
)

// continuationEntry is one registered (executor, callable) pair, stored
// until the antecedent becomes ready, at which point it is submitted to
// exec with the antecedent's value and error.
type continuationEntry[T any] struct {
	exec Executor
	fn   func(T, error)
}

// deferredTask carries the thunk and optional executor for a lazily
// launched state. thunk receives a StopToken (the zero value if the state
// is not stoppable). If executor is nil, launch runs the thunk on a fresh
// goroutine rather than the triggering caller's goroutine, so a timed wait
// racing the launch (WaitFor/WaitUntil) still has a real timeout to race
// against instead of blocking for the task's full duration.
type deferredTask[T any] struct {
	thunk    func(StopToken) (T, error)
	executor Executor
}

// state is the operation state: the shared block a Future, Promise, or
// PackagedTask all point into. The four option axes from the design
// (continuable, stoppable, shared, deferred) are runtime-conditional fields
// rather than compile-time template parameters, per the design notes'
// "tagged union / runtime bitset" guidance for languages without
// C++-style non-type template parameters — Go generics parameterize only
// the value type T.
type state[T any] struct {
	mu      sync.Mutex
	readyCh chan struct{} // closed exactly once, when status leaves unset
	status  atomic.Int32

	result   result[T]
	consumed bool // non-shared Get has moved the value out

	shared      bool
	continuable bool

	continuations []continuationEntry[T]

	stopSource *StopSource // nil unless the state is stoppable

	deferred   *deferredTask[T]
	launchOnce sync.Once

	rec *recorder
}

type stateOptions struct {
	shared      bool
	continuable bool
	stoppable   bool
	metrics     *recorder
}

func newState[T any](opts stateOptions) *state[T] {
	s := &state[T]{
		readyCh:     make(chan struct{}),
		shared:      opts.shared,
		continuable: opts.continuable,
		rec:         opts.metrics,
	}
	if s.rec == nil {
		s.rec = newRecorder(nil)
	}
	if opts.stoppable {
		ss := NewStopSource()
		s.stopSource = &ss
	}
	return s
}

// setValue stores v and transitions the state to ready, unless it has
// already left unset, in which case it returns ErrPromiseAlreadySatisfied.
func (s *state[T]) setValue(v T) error {
	return s.complete(v, nil)
}

// setException stores err (which must not be nil) and transitions the
// state to ready, unless it has already left unset.
func (s *state[T]) setException(err error) error {
	if err == nil {
		panic(Namespace + ": setException called with a nil error")
	}
	var zero T
	return s.complete(zero, err)
}

// complete implements the readiness transition algorithm (§4.3): under the
// lock, reject a second completion, store the result, flip status, snapshot
// and clear the continuation list; outside the lock, close readyCh to wake
// waiters and submit each continuation to its executor. Submitting outside
// the lock means executor back-pressure can never deadlock a producer
// holding the state lock.
func (s *state[T]) complete(v T, err error) error {
	s.mu.Lock()
	if s.status.Load() != statusUnset {
		s.mu.Unlock()
		return ErrPromiseAlreadySatisfied
	}

	s.result = result[T]{value: v, err: err}
	if err != nil {
		s.status.Store(statusException)
	} else {
		s.status.Store(statusValue)
	}

	var snapshot []continuationEntry[T]
	if s.continuable {
		snapshot = s.continuations
		s.continuations = nil
	}
	s.mu.Unlock()

	close(s.readyCh)
	s.rec.continuations.Record(float64(len(snapshot)))

	for _, c := range snapshot {
		c := c
		c.exec.Execute(func() { c.fn(v, err) })
	}
	return nil
}

// isReady is a non-blocking probe. It never triggers a deferred launch.
func (s *state[T]) isReady() bool {
	return s.status.Load() != statusUnset
}

// wait blocks until the state is ready, triggering the deferred launch (if
// any) first.
func (s *state[T]) wait() {
	s.launch()
	s.rec.waiters.Add(1)
	defer s.rec.waiters.Add(-1)
	start := time.Now()
	<-s.readyCh
	s.rec.waitDuration.Record(time.Since(start).Seconds())
}

// waitFor blocks until the state is ready or d elapses, whichever comes
// first, triggering the deferred launch (if any) first. It returns
// ErrTimeout on timeout without consuming readiness — a subsequent wait
// still observes the eventual result.
func (s *state[T]) waitFor(d time.Duration) error {
	return s.waitUntil(time.Now().Add(d))
}

// waitUntil is waitFor expressed as an absolute deadline.
func (s *state[T]) waitUntil(deadline time.Time) error {
	s.launch()
	if s.isReady() {
		return nil
	}
	s.rec.waiters.Add(1)
	defer s.rec.waiters.Add(-1)
	start := time.Now()
	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()
	select {
	case <-s.readyCh:
		s.rec.waitDuration.Record(time.Since(start).Seconds())
		return nil
	case <-timer.C:
		return ErrTimeout
	}
}

// getValue requires the state to already be ready. For a shared state it
// returns a copy of the value (and the stored error); for a non-shared
// state it moves the value out on the first call, zeroing the slot, and
// returns ErrNoState on any subsequent call.
func (s *state[T]) getValue() (T, error) {
	if s.shared {
		return s.result.value, s.result.err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consumed {
		var zero T
		return zero, ErrNoState
	}
	s.consumed = true
	v, err := s.result.value, s.result.err
	var zero T
	s.result.value = zero
	return v, err
}

// attachContinuation registers fn to run on exec once the state is ready,
// or submits it immediately if the state is already ready. It triggers the
// deferred launch (if any) first, since attaching a continuation counts as
// demand under invariant 4.
func (s *state[T]) attachContinuation(exec Executor, fn func(T, error)) error {
	if !s.continuable {
		return ErrInvalidContinuation
	}
	s.launch()

	s.mu.Lock()
	if s.status.Load() == statusUnset {
		s.continuations = append(s.continuations, continuationEntry[T]{exec: exec, fn: fn})
		s.mu.Unlock()
		return nil
	}
	v, err := s.result.value, s.result.err
	s.mu.Unlock()

	exec.Execute(func() { fn(v, err) })
	return nil
}

// requestStop delegates to the stop source, if any. A no-op on a
// non-stoppable state, or on one that is already ready (§4.2).
func (s *state[T]) requestStop() bool {
	if s.stopSource == nil || s.isReady() {
		return false
	}
	return s.stopSource.RequestStop()
}

func (s *state[T]) stopToken() StopToken {
	if s.stopSource == nil {
		return StopToken{}
	}
	return s.stopSource.Token()
}

// launch triggers a deferred state's task exactly once (invariant 4). It is
// a no-op on a non-deferred state.
func (s *state[T]) launch() {
	if s.deferred == nil {
		return
	}
	s.launchOnce.Do(func() {
		d := s.deferred
		s.rec.deferred.Add(1)
		run := func() {
			defer s.recoverPanic()
			v, err := d.thunk(s.stopToken())
			s.complete(v, err)
		}
		if d.executor != nil {
			d.executor.Execute(run)
			return
		}
		go run()
	})
}

// recoverPanic converts a panic escaping a task or deferred thunk into an
// exception on this state, mirroring the teacher library's
// panic-becomes-error worker.go discipline.
func (s *state[T]) recoverPanic() {
	if r := recover(); r != nil {
		var zero T
		_ = s.complete(zero, fmt.Errorf("%s: task panicked: %v", Namespace, r))
	}
}
