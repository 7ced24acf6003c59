package futures

import "sync"

// AllResult is the outcome of the homogeneous WhenAll: every input
// future's value and error, in input order.
type AllResult[T any] struct {
	Values []T
	Errs   []error
}

// WhenAll returns a Future that resolves once every future in fs has
// completed, collecting their values and errors by index. Each fs[i] must
// have been constructed with WithContinuations.
func WhenAll[T any](fs ...Future[T]) Future[AllResult[T]] {
	p := NewPromise[AllResult[T]](WithContinuations())
	fut, _ := p.Future()

	n := len(fs)
	if n == 0 {
		_ = p.SetValue(AllResult[T]{})
		return fut
	}

	res := AllResult[T]{Values: make([]T, n), Errs: make([]error, n)}
	var mu sync.Mutex
	remaining := n

	for i, f := range fs {
		i, f := i, f
		err := f.s.attachContinuation(Inline, func(v T, err error) {
			mu.Lock()
			res.Values[i] = v
			res.Errs[i] = err
			remaining--
			done := remaining == 0
			mu.Unlock()
			if done {
				_ = p.SetValue(res)
			}
		})
		if err != nil {
			mu.Lock()
			res.Errs[i] = err
			remaining--
			done := remaining == 0
			mu.Unlock()
			if done {
				_ = p.SetValue(res)
			}
		}
	}
	return fut
}

// Pair2 is the outcome of WhenAll2: both antecedents' values and errors,
// unwrapped into a fixed-arity struct instead of a slice. Go generics have
// no variadic type parameters, so the heterogeneous when_all overloads of
// the C++ source (a variadic tuple of futures) become one hand-written
// struct per arity here, matching the design's WhenAll2/3/4 plan.
type Pair2[A, B any] struct {
	First      A
	FirstErr   error
	Second     B
	SecondErr  error
}

// WhenAll2 resolves once both a and b have completed.
func WhenAll2[A, B any](a Future[A], b Future[B]) Future[Pair2[A, B]] {
	p := NewPromise[Pair2[A, B]](WithContinuations())
	fut, _ := p.Future()

	var mu sync.Mutex
	var res Pair2[A, B]
	remaining := 2

	finish := func() {
		remaining--
		if remaining == 0 {
			_ = p.SetValue(res)
		}
	}

	_ = a.s.attachContinuation(Inline, func(v A, err error) {
		mu.Lock()
		res.First, res.FirstErr = v, err
		finish()
		mu.Unlock()
	})
	_ = b.s.attachContinuation(Inline, func(v B, err error) {
		mu.Lock()
		res.Second, res.SecondErr = v, err
		finish()
		mu.Unlock()
	})
	return fut
}

// Triple3 is the outcome of WhenAll3.
type Triple3[A, B, C any] struct {
	First      A
	FirstErr   error
	Second     B
	SecondErr  error
	Third      C
	ThirdErr   error
}

// WhenAll3 resolves once a, b, and c have all completed.
func WhenAll3[A, B, C any](a Future[A], b Future[B], c Future[C]) Future[Triple3[A, B, C]] {
	p := NewPromise[Triple3[A, B, C]](WithContinuations())
	fut, _ := p.Future()

	var mu sync.Mutex
	var res Triple3[A, B, C]
	remaining := 3

	finish := func() {
		remaining--
		if remaining == 0 {
			_ = p.SetValue(res)
		}
	}

	_ = a.s.attachContinuation(Inline, func(v A, err error) {
		mu.Lock()
		res.First, res.FirstErr = v, err
		finish()
		mu.Unlock()
	})
	_ = b.s.attachContinuation(Inline, func(v B, err error) {
		mu.Lock()
		res.Second, res.SecondErr = v, err
		finish()
		mu.Unlock()
	})
	_ = c.s.attachContinuation(Inline, func(v C, err error) {
		mu.Lock()
		res.Third, res.ThirdErr = v, err
		finish()
		mu.Unlock()
	})
	return fut
}

// Quad4 is the outcome of WhenAll4.
type Quad4[A, B, C, D any] struct {
	First      A
	FirstErr   error
	Second     B
	SecondErr  error
	Third      C
	ThirdErr   error
	Fourth     D
	FourthErr  error
}

// WhenAll4 resolves once a, b, c, and d have all completed.
func WhenAll4[A, B, C, D any](a Future[A], b Future[B], c Future[C], d Future[D]) Future[Quad4[A, B, C, D]] {
	p := NewPromise[Quad4[A, B, C, D]](WithContinuations())
	fut, _ := p.Future()

	var mu sync.Mutex
	var res Quad4[A, B, C, D]
	remaining := 4

	finish := func() {
		remaining--
		if remaining == 0 {
			_ = p.SetValue(res)
		}
	}

	_ = a.s.attachContinuation(Inline, func(v A, err error) {
		mu.Lock()
		res.First, res.FirstErr = v, err
		finish()
		mu.Unlock()
	})
	_ = b.s.attachContinuation(Inline, func(v B, err error) {
		mu.Lock()
		res.Second, res.SecondErr = v, err
		finish()
		mu.Unlock()
	})
	_ = c.s.attachContinuation(Inline, func(v C, err error) {
		mu.Lock()
		res.Third, res.ThirdErr = v, err
		finish()
		mu.Unlock()
	})
	_ = d.s.attachContinuation(Inline, func(v D, err error) {
		mu.Lock()
		res.Fourth, res.FourthErr = v, err
		finish()
		mu.Unlock()
	})
	return fut
}
