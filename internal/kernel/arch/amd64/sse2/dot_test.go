//go:build amd64 && !purego

package sse2

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rtm/internal/kernel/arch/generic"
	"github.com/cwbudde/algo-rtm/internal/testutil"
)

func TestDotMatchesGeneric(t *testing.T) {
	cases := [][2][4]float64{
		{{1, 2, 3, 4}, {5, 6, 7, 8}},
		{{-2.65, 2.996113, 0.68123521, -5.9182}, {0.25, -1.5, 3.75, 0.125}},
		{{0, 0, 0, 0}, {1, 1, 1, 1}},
		{{1e10, 1, -1e10, 1}, {1, 1, 1, 1}},
	}

	for i, c := range cases {
		tol := testutil.ReductionTol64 * testutil.TermMagnitude(c[0], c[1], 4)
		testutil.RequireNear(t, "Dot64", Dot64(c[0], c[1]), generic.Dot64(c[0], c[1]), tol)

		a32, b32 := testutil.To32(c[0]), testutil.To32(c[1])
		tol32 := testutil.ReductionTol32 * testutil.TermMagnitude(a32, b32, 4)
		if got, want := Dot32(a32, b32), generic.Dot32(a32, b32); math.Abs(float64(got-want)) > tol32 {
			t.Fatalf("case %d: Dot32 = %v, want %v (tol %g)", i, got, want, tol32)
		}
	}
}

func TestDotPairsHalvesFirst(t *testing.T) {
	// x and z cancel before y and w are added, so nothing is absorbed.
	a := [4]float32{1e10, 1, -1e10, 1}
	b := [4]float32{1, 1, 1, 1}
	if got := Dot32(a, b); got != 2 {
		t.Fatalf("Dot32 = %v, want 2", got)
	}
	if got := Dot64([4]float64{1e17, 1, -1e17, 1}, [4]float64{1, 1, 1, 1}); got != 2 {
		t.Fatalf("Dot64 = %v, want 2", got)
	}
}

func TestDotNaNPropagates(t *testing.T) {
	nan := math.NaN()
	if !math.IsNaN(Dot64([4]float64{nan, 0, 0, 0}, [4]float64{1, 1, 1, 1})) {
		t.Fatal("expected NaN to propagate through Dot64")
	}
}
