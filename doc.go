// Package futures provides futures: handles to asynchronous computations
// scheduled on executors, with continuations, stoppable tasks, lazy
// (deferred) evaluation, structured composition, and shared ownership of
// results.
//
// Launching
//   - Async(fn, opts...): runs fn now, on the executor given by
//     WithExecutor (Inline by default).
//   - Deferred(fn, opts...): builds a future whose task is not submitted to
//     any executor until the future is first waited on, read, shared, or
//     attached to as a continuation.
//
// fn may take no arguments, or a StopToken as its only argument, and may
// return (R, error), R, or error alone; see Option and WithStop.
//
// Continuations
//   - Future.Then / SharedFuture.Then attach a continuation that keeps the
//     same result type.
//   - ThenValue attaches a continuation that maps to a different result
//     type; ThenErr attaches one that only inspects the antecedent's error.
//
// Composition
//   - WhenAll / WhenAll2 / WhenAll3 / WhenAll4 wait for every input.
//   - WhenAny / WhenAny2 / WhenAny3 wait for the first input.
//
// Cancellation is cooperative: a StopSource's token must be polled by the
// running task. The runtime never preempts a task.
//
// The package performs no I/O of its own; Executor is the only boundary
// with the outside world, and callers provide it.
package futures
