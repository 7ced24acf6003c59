package futures

// MakeReadyFuture returns a Future that is already resolved with v. It is
// the Go analog of make_ready_future, useful for feeding a known value
// into code that otherwise deals in Future[T] (e.g. a WhenAll argument
// list, or a test fixture).
func MakeReadyFuture[T any](v T, opts ...Option) Future[T] {
	cfg := buildConfig(opts)
	s := newState[T](stateOptions{
		continuable: cfg.continuable,
		shared:      cfg.shared,
		metrics:     cfg.metrics,
	})
	_ = s.setValue(v)
	return newFuture(s)
}

// MakeReadyVoidFuture returns a Future[struct{}] that is already resolved,
// the Go analog of a ready void future.
func MakeReadyVoidFuture(opts ...Option) Future[struct{}] {
	return MakeReadyFuture(struct{}{}, opts...)
}

// MakeExceptionalFuture returns a Future that is already resolved with
// err, the Go analog of make_exceptional_future.
func MakeExceptionalFuture[T any](err error, opts ...Option) Future[T] {
	cfg := buildConfig(opts)
	s := newState[T](stateOptions{
		continuable: cfg.continuable,
		shared:      cfg.shared,
		metrics:     cfg.metrics,
	})
	_ = s.setException(err)
	return newFuture(s)
}
