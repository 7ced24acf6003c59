package futures

// PackagedTask wraps a callable together with the promise it will satisfy,
// the Go analog of packaged_task: it lets a caller separate "wrap a
// callable so it reports through a future" from "decide when and where it
// actually runs."
//
// A PackagedTask carries a *state[R] like everything else in this package;
// there is no move-only enforcement at the type level (Go has no
// non-copyable types), but copying a PackagedTask after Future has been
// called shares the same single-retrieval state as copying a Promise
// would, so callers should treat it as move-only by convention, matching
// the teacher library's documentation-level (not compiler-enforced)
// guidance around its own single-owner handles.
type PackagedTask[R any] struct {
	task      taskFunc[R]
	s         *state[R]
	retrieved bool
}

// NewPackagedTask wraps fn (any of the shapes newTaskFunc accepts) in a
// PackagedTask. The task does not run until Run is called explicitly.
func NewPackagedTask[R any](fn interface{}, opts ...Option) (PackagedTask[R], error) {
	cfg := buildConfig(opts)
	task, tookToken, err := newTaskFunc[R](fn)
	if err != nil {
		return PackagedTask[R]{}, err
	}
	if cfg.stoppable && !tookToken {
		return PackagedTask[R]{}, ErrInvalidContinuation
	}
	s := newState[R](stateOptions{
		continuable: cfg.continuable,
		stoppable:   cfg.stoppable,
		shared:      cfg.shared,
		metrics:     cfg.metrics,
	})
	return PackagedTask[R]{task: task, s: s}, nil
}

// Future returns the Future associated with this task. It may be called
// exactly once per underlying state; a second call returns
// ErrFutureAlreadyRetrieved until Reset runs again.
func (p *PackagedTask[R]) Future() (Future[R], error) {
	if p.s == nil {
		return Future[R]{}, ErrPackagedTaskUninitialized
	}
	if p.retrieved {
		return Future[R]{}, ErrFutureAlreadyRetrieved
	}
	p.retrieved = true
	return newFuture(p.s), nil
}

// Run invokes the wrapped callable synchronously on the calling goroutine
// and stores its result in the associated state. It does not itself
// recover a panic escaping the callable into an error the way Async does —
// matching packaged_task's own "propagates the exception" behavior; wrap
// Run in a recovering caller, or drive it through Async, if that is
// undesired.
func (p *PackagedTask[R]) Run() error {
	if p.s == nil {
		return ErrPackagedTaskUninitialized
	}
	v, err := p.task(p.s.stopToken())
	return p.s.complete(v, err)
}

// Reset rearms the PackagedTask with a fresh state, so it can be run (and
// its Future retrieved) again, wrapping the same callable.
func (p *PackagedTask[R]) Reset() {
	if p.s == nil {
		return
	}
	p.s = newState[R](stateOptions{
		continuable: p.s.continuable,
		stoppable:   p.s.stopSource != nil,
		shared:      p.s.shared,
		metrics:     p.s.rec,
	})
	p.retrieved = false
}
