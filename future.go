package futures

import "time"

// Future is a handle to the result of an asynchronous operation. The zero
// Future is not valid; only one returned by Async, Deferred, Promise.Future,
// PackagedTask.Future, a ready-future factory, or Then is.
//
// A non-shared Future may be waited on and read from multiple times, but
// Get may only be called once — it moves the value out of the underlying
// state. Call Share to obtain a SharedFuture that allows repeated Get calls
// from multiple goroutines.
type Future[T any] struct {
	s *state[T]
}

func newFuture[T any](s *state[T]) Future[T] {
	return Future[T]{s: s}
}

// Valid reports whether the Future refers to a shared state whose value
// has not been moved out. A Future becomes invalid after Get (non-shared).
// Share does not invalidate the receiver: it keeps referring to the same,
// now shared, state.
func (f Future[T]) Valid() bool {
	if f.s == nil {
		return false
	}
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return !f.s.consumed
}

// IsReady reports whether the result is already available, without
// blocking and without triggering a deferred launch.
func (f Future[T]) IsReady() bool {
	f.mustValid()
	return f.s.isReady()
}

// Wait blocks until the result is available, launching the deferred task
// first if the Future was produced by Deferred.
func (f Future[T]) Wait() {
	f.mustValid()
	f.s.wait()
}

// WaitFor blocks until the result is available or d elapses, whichever
// comes first. It returns ErrTimeout on timeout.
func (f Future[T]) WaitFor(d time.Duration) error {
	f.mustValid()
	return f.s.waitFor(d)
}

// WaitUntil blocks until the result is available or the deadline passes,
// whichever comes first. It returns ErrTimeout on timeout.
func (f Future[T]) WaitUntil(deadline time.Time) error {
	f.mustValid()
	return f.s.waitUntil(deadline)
}

// Get blocks until the result is available and returns it, moving the
// value out of the state. After Get returns, the Future is no longer
// valid — calling Get again returns ErrNoState, matching the
// single-retrieval contract of a non-shared future.
func (f Future[T]) Get() (T, error) {
	f.mustValid()
	f.s.wait()
	v, err := f.s.getValue()
	return v, err
}

// RequestStop requests cooperative cancellation of the underlying task. It
// is a no-op, returning false, if the Future was not created with stop
// support (see WithStop) or if the result is already available.
func (f Future[T]) RequestStop() bool {
	f.mustValid()
	return f.s.requestStop()
}

// Share converts this Future into a SharedFuture, allowing Get to be
// called repeatedly from multiple goroutines. Sharing counts as demand, so
// a Deferred task is launched. The receiver is not cleared: it still
// refers to the same state, which is now shared, so Get through it also
// returns a copy.
func (f Future[T]) Share() SharedFuture[T] {
	f.mustValid()
	f.s.launch()
	f.s.shared = true
	return SharedFuture[T]{s: f.s}
}

// Then registers a continuation to run on exec once this Future is ready,
// returning a new Future for the continuation's result. The antecedent
// Future must have been created with continuation support (see
// WithContinuations); otherwise Then returns a Future that immediately
// resolves to ErrInvalidContinuation.
func (f Future[T]) Then(exec Executor, fn func(T, error) (T, error)) Future[T] {
	return thenImpl(f.s, exec, fn)
}

func (f Future[T]) mustValid() {
	if f.s == nil {
		panic(Namespace + ": use of an invalid Future")
	}
}

// SharedFuture is a Future that may be read from multiple times and from
// multiple goroutines, analogous to shared_future.
type SharedFuture[T any] struct {
	s *state[T]
}

func (f SharedFuture[T]) Valid() bool { return f.s != nil }

func (f SharedFuture[T]) IsReady() bool {
	f.mustValid()
	return f.s.isReady()
}

func (f SharedFuture[T]) Wait() {
	f.mustValid()
	f.s.wait()
}

func (f SharedFuture[T]) WaitFor(d time.Duration) error {
	f.mustValid()
	return f.s.waitFor(d)
}

func (f SharedFuture[T]) WaitUntil(deadline time.Time) error {
	f.mustValid()
	return f.s.waitUntil(deadline)
}

// Get blocks until the result is available and returns a copy of it. Unlike
// the non-shared Future.Get, it may be called any number of times.
func (f SharedFuture[T]) Get() (T, error) {
	f.mustValid()
	f.s.wait()
	return f.s.getValue()
}

func (f SharedFuture[T]) RequestStop() bool {
	f.mustValid()
	return f.s.requestStop()
}

// Then registers a continuation to run on exec once this SharedFuture is
// ready. Multiple continuations may be attached to the same SharedFuture.
func (f SharedFuture[T]) Then(exec Executor, fn func(T, error) (T, error)) Future[T] {
	return thenImpl(f.s, exec, fn)
}

func (f SharedFuture[T]) mustValid() {
	if f.s == nil {
		panic(Namespace + ": use of an invalid SharedFuture")
	}
}
