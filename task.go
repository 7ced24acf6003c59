package futures

// taskFunc is the normalized shape every task callable is reduced to:
// given a StopToken (the zero value when the operation is not stoppable),
// produce a value or an error.
type taskFunc[R any] func(StopToken) (R, error)

// newTaskFunc adapts any of the six callable shapes Async and Deferred
// accept into the single taskFunc[R] representation, mirroring the
// teacher library's newTask type switch in task.go. Go has no function
// overloading, so the shapes a C++ call site would select between at
// compile time are instead distinguished here by a runtime type switch
// over the empty interface.
// newTaskFunc returns the normalized task along with whether fn's shape
// takes a StopToken; a caller requesting WithStop but supplying a shape
// that ignores the token would never be able to cancel it, so Async and
// Deferred check this flag and reject that combination outright.
func newTaskFunc[R any](fn interface{}) (task taskFunc[R], tookToken bool, err error) {
	switch typed := fn.(type) {
	case func(StopToken) (R, error):
		return typed, true, nil

	case func(StopToken) R:
		return func(tok StopToken) (R, error) {
			return typed(tok), nil
		}, true, nil

	case func(StopToken) error:
		return func(tok StopToken) (R, error) {
			err := typed(tok)
			return *new(R), err
		}, true, nil

	case func() (R, error):
		return func(StopToken) (R, error) {
			return typed()
		}, false, nil

	case func() R:
		return func(StopToken) (R, error) {
			return typed(), nil
		}, false, nil

	case func() error:
		return func(StopToken) (R, error) {
			err := typed()
			return *new(R), err
		}, false, nil

	default:
		return nil, false, ErrInvalidContinuation
	}
}
