package scene

import (
	"context"
	"errors"
	"testing"
)

func loadedState(t *testing.T) *State {
	t.Helper()
	st := New(200)
	if err := st.Load(context.Background(), &fakeLoader{table: threeRows()}, nil); err != nil {
		t.Fatal(err)
	}
	return st
}

func TestRunFrameLimit(t *testing.T) {
	st := loadedState(t)
	var numbers []int
	surface := SurfaceFunc(func(f Frame) error {
		numbers = append(numbers, f.Number)
		return nil
	})

	if err := Run(context.Background(), st, surface, WithFPS(1000), WithFrameLimit(5)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(numbers) != 5 {
		t.Fatalf("presented %d frames, want 5", len(numbers))
	}
	for i, n := range numbers {
		if n != i+1 {
			t.Errorf("frame %d number = %d, want %d", i, n, i+1)
		}
	}
}

func TestRunContextCancel(t *testing.T) {
	st := loadedState(t)
	ctx, cancel := context.WithCancel(context.Background())
	presented := 0
	surface := SurfaceFunc(func(Frame) error {
		presented++
		if presented == 3 {
			cancel()
		}
		return nil
	})

	err := Run(ctx, st, surface, WithFPS(1000))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if presented != 3 {
		t.Errorf("presented %d frames, want 3", presented)
	}
}

func TestRunCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := Run(ctx, New(100), SurfaceFunc(func(Frame) error { called = true; return nil }))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
	if called {
		t.Error("surface presented after cancellation")
	}
}

func TestRunSurfaceError(t *testing.T) {
	boom := errors.New("boom")
	err := Run(context.Background(), loadedState(t), SurfaceFunc(func(Frame) error { return boom }), WithFPS(1000))
	if !errors.Is(err, boom) {
		t.Errorf("Run error = %v, want wrapped boom", err)
	}
}

func TestRunUnloadedState(t *testing.T) {
	empty := 0
	err := Run(context.Background(), New(100), SurfaceFunc(func(f Frame) error {
		if f.Empty() {
			empty++
		}
		return nil
	}), WithFPS(1000), WithFrameLimit(3))
	if err != nil {
		t.Fatal(err)
	}
	if empty != 3 {
		t.Errorf("empty frames = %d, want 3", empty)
	}
}
