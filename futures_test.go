package futures_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/futures"
	"github.com/ygrebnov/futures/executor"
)

func TestAsync_EagerValue(t *testing.T) {
	f := futures.Async[int](func() (int, error) { return 42, nil })
	v, err := f.Get()
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestAsync_PropagatesError(t *testing.T) {
	sentinel := errors.New("boom")
	f := futures.Async[int](func() (int, error) { return 0, sentinel })
	_, err := f.Get()
	require.ErrorIs(t, err, sentinel)
}

func TestAsync_PanicBecomesError(t *testing.T) {
	f := futures.Async[int](func() int { panic("kaboom") })
	_, err := f.Get()
	require.Error(t, err)
}

func TestAsync_OnFixedExecutor(t *testing.T) {
	exec := executor.NewFixed(2)
	f := futures.Async[string](func() (string, error) { return "done", nil }, futures.WithExecutor(exec))
	v, err := f.Get()
	require.NoError(t, err)
	require.Equal(t, "done", v)
}

func TestDeferred_DoesNotRunUntilDemanded(t *testing.T) {
	ran := make(chan struct{}, 1)
	f := futures.Deferred[int](func() (int, error) {
		ran <- struct{}{}
		return 7, nil
	})

	select {
	case <-ran:
		t.Fatalf("deferred task ran before it was demanded")
	case <-time.After(20 * time.Millisecond):
	}

	v, err := f.Get()
	require.NoError(t, err)
	require.Equal(t, 7, v)

	select {
	case <-ran:
	default:
		t.Fatalf("deferred task never ran")
	}
}

func TestDeferred_WaitForTimesOutWithoutBlockingForever(t *testing.T) {
	release := make(chan struct{})
	f := futures.Deferred[int](func() (int, error) {
		<-release
		return 1, nil
	})

	require.ErrorIs(t, f.WaitFor(10*time.Millisecond), futures.ErrTimeout)
	close(release)

	v, err := f.Get()
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestStopToken_CooperativeCancellation(t *testing.T) {
	started := make(chan struct{})
	f := futures.Async[int](func(tok futures.StopToken) (int, error) {
		close(started)
		<-tok.Done()
		return 0, errors.New("stopped")
	}, futures.WithStop(), futures.WithExecutor(executor.NewDynamic()))

	<-started
	require.True(t, f.RequestStop(), "expected RequestStop to report true on first call")
	require.False(t, f.RequestStop(), "expected second RequestStop to report false")

	_, err := f.Get()
	require.Error(t, err, "expected task to observe the stop request and return an error")
}

func TestThen_ChainsOnReadiness(t *testing.T) {
	f := futures.Async[int](func() (int, error) { return 10, nil }, futures.WithContinuations())

	mapped := futures.ThenValue(f, futures.Inline, func(v int, err error) (string, error) {
		if err != nil {
			return "", err
		}
		return "value-is-ten", nil
	})
	mv, err := mapped.Get()
	require.NoError(t, err)
	require.Equal(t, "value-is-ten", mv)

	doubled := f.Then(futures.Inline, func(v int, err error) (int, error) {
		return v * 2, nil
	})
	v, err := doubled.Get()
	require.NoError(t, err)
	require.Equal(t, 20, v)
}

func TestThen_WithoutContinuationSupportFails(t *testing.T) {
	f := futures.Async[int](func() (int, error) { return 1, nil })
	next := f.Then(futures.Inline, func(v int, err error) (int, error) { return v, err })
	_, err := next.Get()
	require.ErrorIs(t, err, futures.ErrInvalidContinuation)
}

func TestWhenAll_CollectsAllResults(t *testing.T) {
	a := futures.Async[int](func() (int, error) { return 1, nil }, futures.WithContinuations())
	b := futures.Async[int](func() (int, error) { return 2, nil }, futures.WithContinuations())
	c := futures.Async[int](func() (int, error) { return 3, nil }, futures.WithContinuations())

	res, err := futures.WhenAll(a, b, c).Get()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, res.Values)
}

func TestWhenAll2_UnwrapsHeterogeneousPair(t *testing.T) {
	a := futures.Async[int](func() (int, error) { return 1, nil }, futures.WithContinuations())
	b := futures.Async[string](func() (string, error) { return "x", nil }, futures.WithContinuations())

	pair, err := futures.WhenAll2(a, b).Get()
	require.NoError(t, err)
	require.Equal(t, 1, pair.First)
	require.Equal(t, "x", pair.Second)
}

func TestWhenAny_ResolvesOnFirstCompletion(t *testing.T) {
	slow := futures.Deferred[int](func() (int, error) {
		time.Sleep(50 * time.Millisecond)
		return 1, nil
	}, futures.WithContinuations(), futures.WithExecutor(executor.NewDynamic()))
	fast := futures.Async[int](func() (int, error) { return 2, nil }, futures.WithContinuations())

	res, err := futures.WhenAny(slow, fast).Get()
	require.NoError(t, err)
	require.Equal(t, 1, res.Index)
	require.Equal(t, 2, res.Value)
}

func TestWaitAll_NoContinuationSupportRequired(t *testing.T) {
	a := futures.Async[int](func() (int, error) { return 1, nil })
	b := futures.Async[int](func() (int, error) { return 2, nil })

	values, errs := futures.WaitAll(a, b)
	require.Equal(t, []int{1, 2}, values)
	require.Equal(t, []error{nil, nil}, errs)
}

func TestWaitAny_ResolvesOnFirstCompletion(t *testing.T) {
	slow := futures.Deferred[int](func() (int, error) {
		time.Sleep(50 * time.Millisecond)
		return 1, nil
	}, futures.WithExecutor(executor.NewDynamic()))
	fast := futures.Async[int](func() (int, error) { return 2, nil })

	res := futures.WaitAny(slow, fast)
	require.Equal(t, 1, res.Index)
	require.Equal(t, 2, res.Value)
}

func TestSharedFuture_AllowsMultipleGets(t *testing.T) {
	f := futures.Async[int](func() (int, error) { return 99, nil })
	shared := f.Share()

	for i := 0; i < 3; i++ {
		v, err := shared.Get()
		require.NoError(t, err)
		require.Equal(t, 99, v)
	}
}

func TestPromise_SecondSatisfactionIsRejected(t *testing.T) {
	p := futures.NewPromise[int]()
	require.NoError(t, p.SetValue(1))
	require.ErrorIs(t, p.SetValue(2), futures.ErrPromiseAlreadySatisfied)
}

func TestPackagedTask_RunThenReset(t *testing.T) {
	pt, err := futures.NewPackagedTask[int](func() (int, error) { return 5, nil })
	require.NoError(t, err)

	f, err := pt.Future()
	require.NoError(t, err)
	require.NoError(t, pt.Run())
	v, err := f.Get()
	require.NoError(t, err)
	require.Equal(t, 5, v)

	pt.Reset()
	f2, err := pt.Future()
	require.NoError(t, err)
	require.NoError(t, pt.Run())
	v2, err := f2.Get()
	require.NoError(t, err)
	require.Equal(t, 5, v2)
}

func TestPromise_FutureRetrievedOnce(t *testing.T) {
	p := futures.NewPromise[int]()
	_, err := p.Future()
	require.NoError(t, err)
	_, err = p.Future()
	require.ErrorIs(t, err, futures.ErrFutureAlreadyRetrieved)
}

func TestMakeReadyFuture(t *testing.T) {
	f := futures.MakeReadyFuture(5)
	require.True(t, f.IsReady())
	v, err := f.Get()
	require.NoError(t, err)
	require.Equal(t, 5, v)
}

func TestMakeExceptionalFuture(t *testing.T) {
	sentinel := errors.New("bad")
	f := futures.MakeExceptionalFuture[int](sentinel)
	_, err := f.Get()
	require.ErrorIs(t, err, sentinel)
}
