//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-rtm/internal/cpu"
	"github.com/cwbudde/algo-rtm/internal/kernel/arch/generic"
	"github.com/cwbudde/algo-rtm/internal/kernel/registry"
)

// init registers the NEON kernels with the kernel registry.
//
// NEON (ARM Advanced SIMD) provides 128-bit registers and is mandatory on
// ARMv8, so it's available on all arm64 CPUs. A float64 vector spans two
// registers (xy, zw) and Dot64 fuses each pair with FMLA. Dot32 adds pairwise
// without fusing. MulAdd32 rounds twice (see fma32).
//
// Priority: 15 (medium-high - ARM's equivalent to AVX/AVX2)
func init() {
	e := generic.Entry()
	e.Name = "neon"
	e.SIMDLevel = cpu.SIMDNEON
	e.Priority = 15

	e.MulAdd64 = MulAdd64
	e.Dot64 = Dot64
	e.MulAdd32 = MulAdd32
	e.Dot32 = Dot32

	registry.Global.Register(e)
}
