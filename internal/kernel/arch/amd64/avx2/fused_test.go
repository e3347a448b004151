//go:build amd64 && !purego

package avx2

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rtm/internal/kernel/arch/generic"
	"github.com/cwbudde/algo-rtm/internal/testutil"
)

func TestFusedMatchesGeneric(t *testing.T) {
	a := [4]float64{-2.65, 2.996113, 0.68123521, -5.9182}
	b := [4]float64{0.5, -0.25, 4, 1.5}
	c := [4]float64{1, 2, 3, 4}

	testutil.RequireNear(t, "Dot64", Dot64(a, b), generic.Dot64(a, b), testutil.ReductionTol64*testutil.TermMagnitude(a, b, 4))
	testutil.RequireNear(t, "Dot364", Dot364(a, b), generic.Dot364(a, b), testutil.ReductionTol64*testutil.TermMagnitude(a, b, 3))

	got := MulAdd64(a, b, c)
	want := generic.MulAdd64(a, b, c)
	for i := range got {
		testutil.RequireNear(t, "MulAdd64", got[i], want[i], testutil.ReductionTol64*testutil.MulAddMagnitude(a[i], b[i], c[i]))
	}
}

func TestFused32MatchesGeneric(t *testing.T) {
	s := testutil.NewSampler(11)
	for i := 0; i < 1000; i++ {
		a, b, c := testutil.To32(s.Lanes(-8, 8)), testutil.To32(s.Lanes(-8, 8)), testutil.To32(s.Lanes(-8, 8))

		tol := testutil.ReductionTol32 * testutil.TermMagnitude(a, b, 4)
		testutil.RequireNear(t, "Dot32", Dot32(a, b), generic.Dot32(a, b), tol)
		tol3 := testutil.ReductionTol32 * testutil.TermMagnitude(a, b, 3)
		testutil.RequireNear(t, "Dot332", Dot332(a, b), generic.Dot332(a, b), tol3)

		got := MulAdd32(a, b, c)
		want := generic.MulAdd32(a, b, c)
		for j := range got {
			tol := testutil.ReductionTol32 * testutil.MulAddMagnitude(a[j], b[j], c[j])
			testutil.RequireNear(t, "MulAdd32", got[j], want[j], tol)

			// The float64 product is exact, so this is the result rounded once.
			exact := math.FMA(float64(a[j]), float64(b[j]), float64(c[j]))
			testutil.RequireNear(t, "MulAdd32 vs float64", float64(got[j]), exact, tol)
		}
	}
}

func TestFMAIsSingleRounding(t *testing.T) {
	// 1+2^-30 squared minus (1+2^-29) leaves 2^-60, which a split multiply-add loses.
	x := 1 + math.Ldexp(1, -30)
	got := MulAdd64([4]float64{x}, [4]float64{x}, [4]float64{-(1 + math.Ldexp(1, -29))})
	if got[0] != math.Ldexp(1, -60) {
		t.Fatalf("MulAdd64 lane 0 = %v, want 2^-60", got[0])
	}
}
