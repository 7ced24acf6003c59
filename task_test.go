package futures

import (
	"errors"
	"testing"
)

func TestNewTaskFunc_AllShapes(t *testing.T) {
	tok := StopToken{}

	t.Run("func(StopToken) (R, error)", func(t *testing.T) {
		fn, tookToken, err := newTaskFunc[int](func(StopToken) (int, error) { return 7, nil })
		if err != nil {
			t.Fatalf("newTaskFunc: %v", err)
		}
		if !tookToken {
			t.Fatalf("expected tookToken = true")
		}
		v, err := fn(tok)
		if v != 7 || err != nil {
			t.Fatalf("got (%v, %v), want (7, nil)", v, err)
		}
	})

	t.Run("func(StopToken) R", func(t *testing.T) {
		fn, tookToken, err := newTaskFunc[int](func(StopToken) int { return 9 })
		if err != nil {
			t.Fatalf("newTaskFunc: %v", err)
		}
		if !tookToken {
			t.Fatalf("expected tookToken = true")
		}
		v, err := fn(tok)
		if v != 9 || err != nil {
			t.Fatalf("got (%v, %v), want (9, nil)", v, err)
		}
	})

	t.Run("func(StopToken) error", func(t *testing.T) {
		sentinel := errors.New("boom")
		fn, tookToken, err := newTaskFunc[int](func(StopToken) error { return sentinel })
		if err != nil {
			t.Fatalf("newTaskFunc: %v", err)
		}
		if !tookToken {
			t.Fatalf("expected tookToken = true")
		}
		v, err := fn(tok)
		if v != 0 || !errors.Is(err, sentinel) {
			t.Fatalf("got (%v, %v), want (0, %v)", v, err, sentinel)
		}
	})

	t.Run("func() (R, error)", func(t *testing.T) {
		fn, tookToken, err := newTaskFunc[string](func() (string, error) { return "ok", nil })
		if err != nil {
			t.Fatalf("newTaskFunc: %v", err)
		}
		if tookToken {
			t.Fatalf("expected tookToken = false")
		}
		v, err := fn(tok)
		if v != "ok" || err != nil {
			t.Fatalf("got (%v, %v), want (ok, nil)", v, err)
		}
	})

	t.Run("func() R", func(t *testing.T) {
		fn, _, err := newTaskFunc[string](func() string { return "plain" })
		if err != nil {
			t.Fatalf("newTaskFunc: %v", err)
		}
		v, err := fn(tok)
		if v != "plain" || err != nil {
			t.Fatalf("got (%v, %v), want (plain, nil)", v, err)
		}
	})

	t.Run("func() error", func(t *testing.T) {
		sentinel := errors.New("sad")
		fn, _, err := newTaskFunc[string](func() error { return sentinel })
		if err != nil {
			t.Fatalf("newTaskFunc: %v", err)
		}
		v, err := fn(tok)
		if v != "" || !errors.Is(err, sentinel) {
			t.Fatalf("got (%v, %v), want (\"\", %v)", v, err, sentinel)
		}
	})

	t.Run("invalid shape", func(t *testing.T) {
		_, _, err := newTaskFunc[int](42)
		if !errors.Is(err, ErrInvalidContinuation) {
			t.Fatalf("got %v, want ErrInvalidContinuation", err)
		}
	})
}
