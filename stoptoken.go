package futures

import (
	"context"
	"sync"
)

// StopSource is the writer half of a cooperative cancellation pair. It is a
// small value type backed by shared state, so it is cheap to copy and every
// copy observes the same request.
//
// Internally it wraps a context.CancelFunc, following the teacher library's
// pervasive use of context.Context for cancellation (dispatcher, workers,
// and every task signature take one); StopToken exposes that same context
// so callers can select on Done() directly, alongside the StopRequested
// polling API specified for the core.
type StopSource struct {
	s *stopState
}

type stopState struct {
	ctx          context.Context
	cancel       context.CancelFunc
	transitioned chan struct{}
	once         sync.Once
	triggered    bool
}

// NewStopSource constructs a StopSource with no stop requested yet.
func NewStopSource() StopSource {
	ctx, cancel := context.WithCancel(context.Background())
	return StopSource{s: &stopState{ctx: ctx, cancel: cancel, transitioned: make(chan struct{})}}
}

// RequestStop transitions the shared flag to "stop requested". It is
// idempotent and safe for concurrent use; it reports whether this call was
// the one that performed the transition.
func (s StopSource) RequestStop() bool {
	if s.s == nil {
		return false
	}
	won := false
	s.s.once.Do(func() {
		won = true
		s.s.triggered = true
		s.s.cancel()
		close(s.s.transitioned)
	})
	return won
}

// StopRequested reports whether RequestStop has been called.
func (s StopSource) StopRequested() bool {
	if s.s == nil {
		return false
	}
	select {
	case <-s.s.transitioned:
		return true
	default:
		return false
	}
}

// Token returns the reader handle associated with this source.
func (s StopSource) Token() StopToken {
	if s.s == nil {
		return StopToken{}
	}
	return StopToken{s: s.s}
}

// StopToken is the reader half of a cooperative cancellation pair: a
// copyable value type that observes, but cannot trigger, a stop request.
type StopToken struct {
	s *stopState
}

// StopRequested reports whether the associated StopSource's RequestStop has
// been called. A zero-value StopToken (no associated source) never reports
// a stop request.
func (t StopToken) StopRequested() bool {
	if t.s == nil {
		return false
	}
	select {
	case <-t.s.transitioned:
		return true
	default:
		return false
	}
}

// Done returns a channel that closes once a stop has been requested,
// suitable for use directly in a select statement. It returns nil for a
// zero-value StopToken, which blocks forever in a select, matching the
// behavior of a nil context.Context.Done().
func (t StopToken) Done() <-chan struct{} {
	if t.s == nil {
		return nil
	}
	return t.s.ctx.Done()
}
