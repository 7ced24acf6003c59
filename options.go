package futures

import "github.com/ygrebnov/futures/metrics"

// config collects the construction-time options for Async, Deferred, and
// NewPromise. It follows the teacher library's functional-options builder:
// a private config struct, zero-value defaults, and an Option func(*config)
// applied in order.
type config struct {
	executor    Executor
	continuable bool
	stoppable   bool
	shared      bool
	metrics     *recorder
}

// Option configures a Future-producing call. Options are applied in the
// order given; later options override earlier ones when they conflict.
type Option func(*config)

func defaultConfig() config {
	return config{executor: Inline}
}

func buildConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithExecutor runs the task (for Async/Deferred) on exec instead of the
// default Inline executor.
func WithExecutor(exec Executor) Option {
	return func(c *config) { c.executor = exec }
}

// WithContinuations allows Then to be called on the resulting Future. Any
// Future not constructed with WithContinuations rejects Then with
// ErrInvalidContinuation, matching the non-continuable state described in
// the design's option axes.
func WithContinuations() Option {
	return func(c *config) { c.continuable = true }
}

// WithStop equips the state with a StopSource: the task function must
// accept a StopToken, and Future.RequestStop/StopToken.StopRequested
// become meaningful.
func WithStop() Option {
	return func(c *config) { c.stoppable = true }
}

// WithShared marks the resulting Future as shared from construction,
// like calling Future.Share immediately, but avoiding the intermediate
// non-shared handle. Unlike Share, it does not launch a Deferred task.
func WithShared() Option {
	return func(c *config) { c.shared = true }
}

// WithMetrics attaches a metrics.Provider that the state reports waiter
// counts, continuation fan-out, deferred launches, and wait durations to.
// Omitting this option leaves instrumentation on metrics.NoopProvider.
func WithMetrics(p metrics.Provider) Option {
	return func(c *config) { c.metrics = newRecorder(p) }
}
