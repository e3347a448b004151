//go:build arm64 && !purego

package kernel

// This file imports arm64-specific implementation packages to trigger
// their init() functions, which register implementations with the global registry.

import (
	_ "github.com/cwbudde/algo-rtm/internal/kernel/arch/arm64/neon" // register NEON backend
	_ "github.com/cwbudde/algo-rtm/internal/kernel/arch/generic"    // register generic backend
)
