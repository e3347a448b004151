// Package testutil holds tolerance assertions shared by the package tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// Float is the set of lane types the helpers accept.
type Float interface {
	~float32 | ~float64
}

// RequireNear fails t if |got-want| exceeds eps.
func RequireNear[T Float](t testing.TB, name string, got, want T, eps float64) {
	t.Helper()
	diff := math.Abs(float64(got) - float64(want))
	if !(diff <= eps) {
		t.Fatalf("%s: got %v, want %v (diff %v > eps %v)", name, got, want, diff, eps)
	}
}

// RequireLanesNear fails t if any lane pair of got and want exceeds eps.
func RequireLanesNear[T Float](t testing.TB, name string, got, want [4]T, eps float64) {
	t.Helper()
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if !(diff <= eps) {
			t.Fatalf("%s lane %d: got %v, want %v (diff %v > eps %v)", name, i, got, want, diff, eps)
		}
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[T Float](t testing.TB, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if !(diff <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[T Float](t testing.TB, data []T) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T Float](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// Relative tolerances for results that a backend may compute with reordered or
// fused terms (Dot, Dot3, MulAdd). Scale them by TermMagnitude or
// MulAddMagnitude of the operands.
const (
	ReductionTol64 = 1e-15
	ReductionTol32 = 1e-6
)

// TermMagnitude returns the sum of |a[i]*b[i]| over the first n lanes.
func TermMagnitude[T Float](a, b [4]T, n int) float64 {
	var s float64
	for i := 0; i < n; i++ {
		s += math.Abs(float64(a[i]) * float64(b[i]))
	}
	return s
}

// MulAddMagnitude returns |a*b| + |c|.
func MulAddMagnitude[T Float](a, b, c T) float64 {
	return math.Abs(float64(a)*float64(b)) + math.Abs(float64(c))
}
