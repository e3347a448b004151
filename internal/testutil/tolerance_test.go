package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float32{1}, []float32{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireHelpersPass(t *testing.T) {
	RequireNear(t, "scalar", 1.0, 1.0+1e-9, 1e-8)
	RequireLanesNear(t, "lanes", [4]float32{1, 2, 3, 4}, [4]float32{1, 2, 3, 4}, 0)
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-12}, 1e-9)
	RequireFinite(t, []float64{0, -1, 1e300})
}

func TestRequireNearRejectsNaN(t *testing.T) {
	ft := &fakeTB{TB: t}
	func() {
		defer func() { _ = recover() }()
		RequireNear(ft, "nan", math.NaN(), 0, 1)
	}()
	if !ft.failed {
		t.Fatal("RequireNear accepted NaN")
	}
}

// fakeTB records Fatalf without stopping the enclosing test.
type fakeTB struct {
	testing.TB
	failed bool
}

func (f *fakeTB) Helper() {}

func (f *fakeTB) Fatalf(string, ...any) {
	f.failed = true
	panic("fatal")
}

func TestTermMagnitude(t *testing.T) {
	a := [4]float32{1e10, 1, -1e10, 1}
	b := [4]float32{1, 1, 1, 1}
	if got := TermMagnitude(a, b, 4); got != 2e10+2 {
		t.Fatalf("TermMagnitude = %v, want 2e10+2", got)
	}
	if got := TermMagnitude(a, b, 3); got != 2e10+1 {
		t.Fatalf("TermMagnitude(3) = %v, want 2e10+1", got)
	}
	if got := MulAddMagnitude(-2.0, 3.0, -1.0); got != 7 {
		t.Fatalf("MulAddMagnitude = %v, want 7", got)
	}
}
