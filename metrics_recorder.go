package futures

import "github.com/ygrebnov/futures/metrics"

// recorder wraps a metrics.Provider with the handful of instruments an
// operation state updates. It is always non-nil on a constructed state
// (defaulting to metrics.NoopProvider), so call sites never need a nil
// check.
type recorder struct {
	waiters       metrics.UpDownCounter
	continuations metrics.Histogram
	deferred      metrics.Counter
	waitDuration  metrics.Histogram
}

func newRecorder(p metrics.Provider) *recorder {
	if p == nil {
		p = metrics.NewNoopProvider()
	}
	return &recorder{
		waiters: p.UpDownCounter(
			"futures_waiters",
			metrics.WithDescription("number of goroutines currently blocked in Wait/WaitFor/WaitUntil/Get"),
			metrics.WithUnit("1"),
		),
		continuations: p.Histogram(
			"futures_continuations_drained",
			metrics.WithDescription("continuations submitted per readiness transition"),
			metrics.WithUnit("1"),
		),
		deferred: p.Counter(
			"futures_deferred_launches",
			metrics.WithDescription("deferred tasks launched"),
			metrics.WithUnit("1"),
		),
		waitDuration: p.Histogram(
			"futures_wait_duration_seconds",
			metrics.WithDescription("time spent blocked in a waiting call before the state became ready"),
			metrics.WithUnit("seconds"),
		),
	}
}
