package futures

// Executor accepts a nullary callable and arranges for it to be invoked.
// Execute must not block the caller on the callable's completion, and must
// not panic for a well-formed fn. Implementations are free to run fn on a
// thread pool, inline on the calling goroutine, or on a single dedicated
// goroutine (Inline below; package executor for the pools and the serial
// executor).
//
// The only equality check this package makes is Deferred comparing its
// executor against Inline; otherwise an Executor is only ever called
// through this interface, so any type with an Execute(func()) method
// satisfies it, including the concrete types in package executor.
type Executor interface {
	Execute(fn func())
}

// ExecutorFunc adapts a plain "submit a task and return" function — the
// shape exposed by most runtimes that already have their own scheduling
// loop — into an Executor, without requiring a wrapper struct at every call
// site.
type ExecutorFunc func(fn func())

// Execute calls f(fn).
func (f ExecutorFunc) Execute(fn func()) { f(fn) }

type inlineExecutor struct{}

func (inlineExecutor) Execute(fn func()) { fn() }

// Inline is the executor that runs every submitted callable synchronously,
// on the submitting goroutine. It is the default executor for Async when
// none is supplied, and the executor continuations run on when nothing
// else was requested.
var Inline Executor = inlineExecutor{}
