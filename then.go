package futures

// thenImpl backs both Future.Then and SharedFuture.Then: it creates a new
// state for the continuation's result, attaches fn to the antecedent state
// s, and completes the new state from whatever fn returns (or from its
// panic, via recoverPanic). The antecedent must be continuable; otherwise
// the returned Future resolves immediately to ErrInvalidContinuation.
func thenImpl[T any](s *state[T], exec Executor, fn func(T, error) (T, error)) Future[T] {
	next := newState[T](stateOptions{continuable: true})

	if !s.continuable {
		_ = next.complete(*new(T), ErrInvalidContinuation)
		return newFuture(next)
	}

	err := s.attachContinuation(exec, func(v T, err error) {
		defer next.recoverPanic()
		rv, rerr := fn(v, err)
		_ = next.complete(rv, rerr)
	})
	if err != nil {
		_ = next.complete(*new(T), err)
	}
	return newFuture(next)
}

// ThenValue registers a continuation that maps a ready value of type T to
// a new value of type R, on exec. Any error already carried by f is passed
// through to fn unchanged as its second argument; fn decides whether to
// recover from it or propagate a (possibly different) error.
func ThenValue[T, R any](f Future[T], exec Executor, fn func(T, error) (R, error)) Future[R] {
	next := newState[R](stateOptions{continuable: true})

	if !f.s.continuable {
		_ = next.complete(*new(R), ErrInvalidContinuation)
		return newFuture(next)
	}

	err := f.s.attachContinuation(exec, func(v T, err error) {
		defer next.recoverPanic()
		rv, rerr := fn(v, err)
		_ = next.complete(rv, rerr)
	})
	if err != nil {
		_ = next.complete(*new(R), err)
	}
	return newFuture(next)
}

// ThenErr registers a continuation that only observes the antecedent's
// error (ignoring its value on success), producing a new value of type R.
// This is the Go analog of the C++ source's unwrapped single-argument
// then overload used when the antecedent's value type is irrelevant to
// the continuation.
func ThenErr[T, R any](f Future[T], exec Executor, fn func(error) (R, error)) Future[R] {
	return ThenValue[T, R](f, exec, func(_ T, err error) (R, error) {
		return fn(err)
	})
}
