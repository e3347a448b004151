//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-rtm/internal/cpu"
	"github.com/cwbudde/algo-rtm/internal/kernel/arch/generic"
	"github.com/cwbudde/algo-rtm/internal/kernel/registry"
)

// init registers the AVX2+FMA kernels with the kernel registry.
//
// A float64 vector fills one 256-bit register. Reductions and MulAdd use fused
// multiply-add, and the float32 forms round twice through float64. Results
// therefore differ from the generic backend by an amount bounded relative to
// the magnitudes of the terms, not by a fixed number of ulps.
// Available on Intel Haswell (2013+) and AMD Excavator (2015+).
//
// Priority: 20 (high - preferred over SSE2 and generic when available)
func init() {
	e := generic.Entry()
	e.Name = "avx2"
	e.SIMDLevel = cpu.SIMDAVX2
	e.Priority = 20

	e.MulAdd64 = MulAdd64
	e.Dot64 = Dot64
	e.Dot364 = Dot364
	e.MulAdd32 = MulAdd32
	e.Dot32 = Dot32
	e.Dot332 = Dot332

	registry.Global.Register(e)
}
