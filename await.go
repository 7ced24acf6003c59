package futures

import "reflect"

// WaitAll blocks until every future in fs has completed, returning their
// values and errors by index, without building a WhenAll aggregate state.
// Unlike WhenAll, fs need not be continuable — WaitAll blocks the calling
// goroutine directly instead of registering continuations.
func WaitAll[T any](fs ...Future[T]) ([]T, []error) {
	values := make([]T, len(fs))
	errs := make([]error, len(fs))
	for i, f := range fs {
		values[i], errs[i] = f.Get()
	}
	return values, errs
}

// WaitAny blocks until at least one future in fs has completed and returns
// its index, value, and error. Unlike WhenAny, fs need not be continuable:
// WaitAny launches any deferred input and blocks directly on a dynamic
// fan-in of their readiness channels via reflect.Select — Go's select
// statement has no variadic form, so a runtime-sized wait set has no
// static alternative.
func WaitAny[T any](fs ...Future[T]) AnyResult[T] {
	if len(fs) == 0 {
		panic(Namespace + ": WaitAny requires at least one future")
	}

	for _, f := range fs {
		f.s.launch()
	}
	for i, f := range fs {
		if f.s.isReady() {
			v, err := f.s.getValue()
			return AnyResult[T]{Index: i, Value: v, Err: err}
		}
	}

	cases := make([]reflect.SelectCase, len(fs))
	for i, f := range fs {
		cases[i] = reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(f.s.readyCh)}
	}
	chosen, _, _ := reflect.Select(cases)
	v, err := fs[chosen].s.getValue()
	return AnyResult[T]{Index: chosen, Value: v, Err: err}
}
