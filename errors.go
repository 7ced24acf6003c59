package futures

import "errors"

// Namespace prefixes every sentinel error so they read unambiguously in
// logs and error chains that span multiple libraries.
const Namespace = "futures"

// Sentinel errors, matching the taxonomy of error states a future, promise,
// or packaged task can surface synchronously (as opposed to an exception
// captured inside a completed operation state, which is whatever error the
// task itself returned or panicked with).
var (
	// ErrBrokenPromise is stored into a Promise's operation state by a
	// finalizer when the state is garbage-collected without SetValue or
	// SetException ever having been called (see NewPromise). PackagedTask,
	// Async, and Deferred states never receive it.
	ErrBrokenPromise = errors.New(Namespace + ": broken promise")

	// ErrFutureAlreadyRetrieved is returned by Promise.Future when called
	// more than once on the same promise.
	ErrFutureAlreadyRetrieved = errors.New(Namespace + ": future already retrieved")

	// ErrPromiseAlreadySatisfied is returned by SetValue/SetException when
	// the operation state has already left the unset status.
	ErrPromiseAlreadySatisfied = errors.New(Namespace + ": promise already satisfied")

	// ErrNoState is returned by an operation (other than Valid or a
	// destructor-equivalent) on a handle that owns no operation state,
	// because it was never initialized, was moved from, or was already
	// consumed by a prior Get.
	ErrNoState = errors.New(Namespace + ": no associated state")

	// ErrPromiseUninitialized is the Promise-specific variant of ErrNoState.
	ErrPromiseUninitialized = errors.New(Namespace + ": promise has no associated state")

	// ErrPackagedTaskUninitialized is the PackagedTask-specific variant of
	// ErrNoState.
	ErrPackagedTaskUninitialized = errors.New(Namespace + ": packaged task has no associated state")

	// ErrFutureUninitialized is the Future-specific variant of ErrNoState.
	ErrFutureUninitialized = errors.New(Namespace + ": future has no associated state")

	// ErrFutureDeferred is returned by an operation that is invalid on a
	// deferred future before its task has launched.
	ErrFutureDeferred = errors.New(Namespace + ": future is deferred and has not launched")

	// ErrTimeout is returned by WaitFor/WaitUntil when the deadline elapses
	// before the operation state becomes ready.
	ErrTimeout = errors.New(Namespace + ": wait timed out")

	// ErrInvalidContinuation reports a value passed to Async, Deferred,
	// NewPackagedTask, or a continuation attachment that does not match one
	// of the supported callable shapes (Async and Deferred panic with it;
	// the others return it).
	ErrInvalidContinuation = errors.New(Namespace + ": invalid task or continuation signature")
)
