//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-rtm/internal/cpu"
	"github.com/cwbudde/algo-rtm/internal/kernel/arch/generic"
	"github.com/cwbudde/algo-rtm/internal/kernel/registry"
)

// init registers the SSE2 kernels with the kernel registry.
//
// SSE2 provides 128-bit registers and is part of the x86-64 baseline, so it's
// available on all amd64 CPUs. A float64 vector spans two registers (xy, zw)
// and a float32 vector fits one. Dot adds the xz and yw products first, so it
// can round differently from the generic left-to-right sum when terms cancel.
//
// Priority: 10 (medium - preferred over generic, but lower than AVX2)
func init() {
	e := generic.Entry()
	e.Name = "sse2"
	e.SIMDLevel = cpu.SIMDSSE2
	e.Priority = 10

	e.Dot64 = Dot64
	e.Dot32 = Dot32

	registry.Global.Register(e)
}
