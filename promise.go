package futures

import "runtime"

// Promise is the producer side of an operation state: a caller constructs
// one, hands the Future it retrieves to a consumer, and later calls
// SetValue or SetException exactly once.
//
// Concurrent SetValue/SetException calls are serialized by the state's
// lock: exactly one succeeds and every other returns
// ErrPromiseAlreadySatisfied, but which call "wins" when they race is
// undefined.
type Promise[T any] struct {
	s         *state[T]
	retrieved bool
}

// NewPromise creates a new, unsatisfied Promise. opts configures the
// continuation and stop-token support of the state it owns; WithShared and
// WithExecutor are meaningless for a Promise (there is no task to run)
// and are ignored.
func NewPromise[T any](opts ...Option) Promise[T] {
	cfg := buildConfig(opts)
	s := newState[T](stateOptions{
		continuable: cfg.continuable,
		stoppable:   cfg.stoppable,
		metrics:     cfg.metrics,
	})
	p := Promise[T]{s: s}
	runtime.SetFinalizer(p.s, finalizeState[T])
	return p
}

// Future returns the Future associated with this Promise. It may be
// called exactly once; a second call returns ErrFutureAlreadyRetrieved.
func (p *Promise[T]) Future() (Future[T], error) {
	if p.s == nil {
		return Future[T]{}, ErrPromiseUninitialized
	}
	if p.retrieved {
		return Future[T]{}, ErrFutureAlreadyRetrieved
	}
	p.retrieved = true
	return newFuture(p.s), nil
}

// SetValue satisfies the Promise with v. A second call, or a call after
// SetException, returns ErrPromiseAlreadySatisfied.
func (p *Promise[T]) SetValue(v T) error {
	if p.s == nil {
		return ErrPromiseUninitialized
	}
	err := p.s.setValue(v)
	if err == nil {
		runtime.SetFinalizer(p.s, nil)
	}
	return err
}

// SetException satisfies the Promise with err, which must not be nil.
func (p *Promise[T]) SetException(err error) error {
	if p.s == nil {
		return ErrPromiseUninitialized
	}
	setErr := p.s.setException(err)
	if setErr == nil {
		runtime.SetFinalizer(p.s, nil)
	}
	return setErr
}

// finalizeState is a best-effort substitute for the deterministic
// destructor that breaks a never-satisfied promise in the original
// implementation: Go has no deterministic destruction, so instead, if the
// garbage collector determines a state was never completed and nothing
// else references it, the finalizer completes it with ErrBrokenPromise.
// A Future retrieved from the Promise points at that same state, so the
// finalizer cannot run while such a Future is still reachable, and it
// never unblocks a goroutine waiting on one. This only ever runs for
// Promise's own state, never for the
// state behind Async/Deferred, whose task is guaranteed to settle the
// state itself or have its panic captured by recoverPanic.
func finalizeState[T any](s *state[T]) {
	if s.isReady() {
		return
	}
	_ = s.complete(*new(T), ErrBrokenPromise)
}
