package futures

import "sync"

// winnerLatch is the when_any coordination primitive: the first completing
// antecedent calls record, which runs exactly once; every later call is a
// silent no-op. This is the same "first signal wins, forward once, drop
// the rest" shape as the teacher library's errorForwarder (error_forwarder.go),
// adapted here from a channel-driven consumer loop to a sync.Once latch
// since when_any has no backpressure to manage — there is nothing to drain
// after the winner is chosen.
type winnerLatch struct {
	once sync.Once
}

func (w *winnerLatch) record(fn func()) {
	w.once.Do(fn)
}

// AnyResult is the outcome of WhenAny: which input future completed first,
// and its value or error.
type AnyResult[T any] struct {
	Index int
	Value T
	Err   error
}

// WhenAny returns a Future that resolves as soon as any one of fs
// completes, carrying that future's index and result. It attaches a
// continuation to each input, so every fs[i] must have been constructed
// with WithContinuations.
func WhenAny[T any](fs ...Future[T]) Future[AnyResult[T]] {
	p := NewPromise[AnyResult[T]](WithContinuations())
	fut, _ := p.Future()
	if len(fs) == 0 {
		_ = p.SetException(ErrInvalidContinuation)
		return fut
	}

	latch := &winnerLatch{}
	for i, f := range fs {
		i, f := i, f
		_ = f.s.attachContinuation(Inline, func(v T, err error) {
			latch.record(func() {
				_ = p.SetValue(AnyResult[T]{Index: i, Value: v, Err: err})
			})
		})
	}
	return fut
}

// Any2 is the result of WhenAny2: Index names which of First/Second
// completed first; only that field is populated, the other holds its
// type's zero value.
type Any2[A, B any] struct {
	Index  int
	First  A
	Second B
	Err    error
}

// WhenAny2 resolves as soon as either a or b completes.
func WhenAny2[A, B any](a Future[A], b Future[B]) Future[Any2[A, B]] {
	p := NewPromise[Any2[A, B]](WithContinuations())
	fut, _ := p.Future()
	latch := &winnerLatch{}

	_ = a.s.attachContinuation(Inline, func(v A, err error) {
		latch.record(func() { _ = p.SetValue(Any2[A, B]{Index: 0, First: v, Err: err}) })
	})
	_ = b.s.attachContinuation(Inline, func(v B, err error) {
		latch.record(func() { _ = p.SetValue(Any2[A, B]{Index: 1, Second: v, Err: err}) })
	})
	return fut
}

// Any3 is the result of WhenAny3; see Any2 for the field-population rule.
type Any3[A, B, C any] struct {
	Index  int
	First  A
	Second B
	Third  C
	Err    error
}

// WhenAny3 resolves as soon as any of a, b, c completes.
func WhenAny3[A, B, C any](a Future[A], b Future[B], c Future[C]) Future[Any3[A, B, C]] {
	p := NewPromise[Any3[A, B, C]](WithContinuations())
	fut, _ := p.Future()
	latch := &winnerLatch{}

	_ = a.s.attachContinuation(Inline, func(v A, err error) {
		latch.record(func() { _ = p.SetValue(Any3[A, B, C]{Index: 0, First: v, Err: err}) })
	})
	_ = b.s.attachContinuation(Inline, func(v B, err error) {
		latch.record(func() { _ = p.SetValue(Any3[A, B, C]{Index: 1, Second: v, Err: err}) })
	})
	_ = c.s.attachContinuation(Inline, func(v C, err error) {
		latch.record(func() { _ = p.SetValue(Any3[A, B, C]{Index: 2, Third: v, Err: err}) })
	})
	return fut
}
