package futures

import "testing"

func TestBuildConfig_Defaults(t *testing.T) {
	cfg := buildConfig(nil)
	if cfg.executor != Inline {
		t.Fatalf("default executor = %v, want Inline", cfg.executor)
	}
	if cfg.continuable || cfg.stoppable || cfg.shared {
		t.Fatalf("expected all option axes false by default, got %+v", cfg)
	}
}

func TestBuildConfig_AppliesOptionsInOrder(t *testing.T) {
	fixed := &fixedExecutor{}
	cfg := buildConfig([]Option{
		WithExecutor(fixed),
		WithContinuations(),
		WithStop(),
		WithShared(),
	})
	if cfg.executor != Executor(fixed) {
		t.Fatalf("executor not applied")
	}
	if !cfg.continuable || !cfg.stoppable || !cfg.shared {
		t.Fatalf("expected all option axes true, got %+v", cfg)
	}
}

type fixedExecutor struct{ n int }

func (f *fixedExecutor) Execute(fn func()) { f.n++; fn() }
