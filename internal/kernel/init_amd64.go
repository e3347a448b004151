//go:build amd64 && !purego

package kernel

// This file imports amd64-specific implementation packages to trigger
// their init() functions, which register implementations with the global registry.

import (
	_ "github.com/cwbudde/algo-rtm/internal/kernel/arch/amd64/avx2" // register AVX2 backend
	_ "github.com/cwbudde/algo-rtm/internal/kernel/arch/amd64/sse2" // register SSE2 backend
	_ "github.com/cwbudde/algo-rtm/internal/kernel/arch/generic"    // register generic backend
)
