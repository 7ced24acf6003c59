package futures_test

import (
	"fmt"

	"github.com/ygrebnov/futures"
)

func ExampleAsync() {
	f := futures.Async[int](func() (int, error) { return 21, nil })
	v, err := f.Get()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v * 2)
	// Output: 42
}

func ExampleFuture_Then() {
	f := futures.Async[int](func() (int, error) { return 3, nil }, futures.WithContinuations())
	doubled := f.Then(futures.Inline, func(v int, err error) (int, error) {
		return v * 2, err
	})
	v, _ := doubled.Get()
	fmt.Println(v)
	// Output: 6
}

func ExampleWhenAll() {
	a := futures.Async[int](func() (int, error) { return 1, nil }, futures.WithContinuations())
	b := futures.Async[int](func() (int, error) { return 2, nil }, futures.WithContinuations())

	res, _ := futures.WhenAll(a, b).Get()
	sum := 0
	for _, v := range res.Values {
		sum += v
	}
	fmt.Println(sum)
	// Output: 3
}

func ExampleStopSource() {
	src := futures.NewStopSource()
	tok := src.Token()

	fmt.Println(tok.StopRequested())
	src.RequestStop()
	fmt.Println(tok.StopRequested())
	// Output:
	// false
	// true
}
