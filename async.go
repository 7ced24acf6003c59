package futures

// Async launches fn on the configured executor (Inline by default; see
// WithExecutor) and returns a Future for its result immediately. fn may be
// any of the shapes newTaskFunc accepts: with or without a leading
// StopToken parameter, and returning (R, error), R alone, or error alone.
//
// Passing WithStop equips the Future with RequestStop support and passes
// a live StopToken to fn; fn must accept one of the StopToken-taking
// shapes in that case, or Async panics — a stop-enabled task that ignores
// its token can never be told to stop.
func Async[R any](fn interface{}, opts ...Option) Future[R] {
	cfg := buildConfig(opts)
	task, tookToken, err := newTaskFunc[R](fn)
	if err != nil {
		panic(err)
	}
	if cfg.stoppable && !tookToken {
		panic(Namespace + ": WithStop requires a task accepting a StopToken")
	}

	s := newState[R](stateOptions{
		continuable: cfg.continuable,
		stoppable:   cfg.stoppable,
		shared:      cfg.shared,
		metrics:     cfg.metrics,
	})

	exec := cfg.executor
	if exec == nil {
		exec = Inline
	}

	exec.Execute(func() {
		defer s.recoverPanic()
		v, err := task(s.stopToken())
		_ = s.complete(v, err)
	})

	return newFuture(s)
}

// Deferred builds a Future whose task does not run until something
// demands it: the first call to Wait, WaitFor, WaitUntil, Get, Share, or
// Then (or attaching a continuation). fn has the same accepted shapes as
// Async's.
//
// WithExecutor, if given, is where the deferred task eventually runs; if
// omitted, it runs on a fresh goroutine at launch time rather than
// synchronously on the goroutine that triggered the launch, so a
// WaitFor/WaitUntil racing the launch still has a real deadline to race
// against instead of blocking for the task's entire duration.
func Deferred[R any](fn interface{}, opts ...Option) Future[R] {
	cfg := buildConfig(opts)
	task, tookToken, err := newTaskFunc[R](fn)
	if err != nil {
		panic(err)
	}
	if cfg.stoppable && !tookToken {
		panic(Namespace + ": WithStop requires a task accepting a StopToken")
	}

	s := newState[R](stateOptions{
		continuable: cfg.continuable,
		stoppable:   cfg.stoppable,
		shared:      cfg.shared,
		metrics:     cfg.metrics,
	})
	s.deferred = &deferredTask[R]{thunk: task, executor: cfg.executor}
	if cfg.executor == Inline {
		// Inline is the zero-value default; treat it as "no executor
		// bound" so launch always uses a fresh goroutine instead of
		// running the task synchronously inside Wait/Get.
		s.deferred.executor = nil
	}

	return newFuture(s)
}
