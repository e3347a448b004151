package generic

import (
	"github.com/cwbudde/algo-rtm/internal/cpu"
	"github.com/cwbudde/algo-rtm/internal/kernel/registry"
)

// init registers the generic (pure Go) implementations with the kernel registry.
//
// Generic implementations serve as the baseline fallback when no SIMD kernels
// are available or when ForceGeneric is enabled.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	registry.Global.Register(Entry())
}

// Entry returns the fully populated generic entry. SIMD backends reuse its
// element-wise operations, which are exact per lane on every target.
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Add64:    Add64,
		Sub64:    Sub64,
		Mul64:    Mul64,
		Div64:    Div64,
		Min64:    Min64,
		Max64:    Max64,
		Abs64:    Abs64,
		Scale64:  Scale64,
		MulAdd64: MulAdd64,
		Dot64:    Dot64,
		Dot364:   Dot364,

		Add32:    Add32,
		Sub32:    Sub32,
		Mul32:    Mul32,
		Div32:    Div32,
		Min32:    Min32,
		Max32:    Max32,
		Abs32:    Abs32,
		Scale32:  Scale32,
		MulAdd32: MulAdd32,
		Dot32:    Dot32,
		Dot332:   Dot332,
	}
}
