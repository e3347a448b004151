// Package registry provides the implementation registry for the 4-lane math kernels.
//
// The registry-based dispatch system allows multiple implementation variants
// (generic, SSE2, AVX2, NEON) to coexist. The best implementation for the
// current CPU is selected at runtime.
//
// Architecture-specific implementations register themselves via init() functions,
// and the kernel package uses the registry to select the best implementation
// based on detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-rtm/internal/cpu"
)

// Lanes64 is one 4-lane float64 operand in x, y, z, w order.
type Lanes64 = [4]float64

// Lanes32 is one 4-lane float32 operand in x, y, z, w order.
type Lanes32 = [4]float32

// OpEntry represents a registered implementation variant.
//
// Each entry carries typed function pointers for every 4-lane operation. A
// backend must populate all of them; Validate reports the first missing one.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation (e.g., "avx2", "neon").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations exist.
	// Higher priority implementations are preferred. Suggested priorities:
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - NEON: 15
	//   - AVX2: 20
	Priority int

	// Element-wise float64 operations.
	Add64   func(a, b Lanes64) Lanes64
	Sub64   func(a, b Lanes64) Lanes64
	Mul64   func(a, b Lanes64) Lanes64
	Div64   func(a, b Lanes64) Lanes64
	Min64   func(a, b Lanes64) Lanes64
	Max64   func(a, b Lanes64) Lanes64
	Abs64   func(a Lanes64) Lanes64
	Scale64 func(a Lanes64, s float64) Lanes64

	// MulAdd64 computes a*b + c per lane.
	MulAdd64 func(a, b, c Lanes64) Lanes64

	// Dot64 is the 4-lane dot product; Dot364 ignores w.
	Dot64  func(a, b Lanes64) float64
	Dot364 func(a, b Lanes64) float64

	// Element-wise float32 operations.
	Add32   func(a, b Lanes32) Lanes32
	Sub32   func(a, b Lanes32) Lanes32
	Mul32   func(a, b Lanes32) Lanes32
	Div32   func(a, b Lanes32) Lanes32
	Min32   func(a, b Lanes32) Lanes32
	Max32   func(a, b Lanes32) Lanes32
	Abs32   func(a Lanes32) Lanes32
	Scale32 func(a Lanes32, s float32) Lanes32

	MulAdd32 func(a, b, c Lanes32) Lanes32

	Dot32  func(a, b Lanes32) float32
	Dot332 func(a, b Lanes32) float32
}

// Validate returns the name of the first unpopulated operation, or "" when
// the entry is complete.
func (e *OpEntry) Validate() string {
	checks := []struct {
		name string
		ok   bool
	}{
		{"Add64", e.Add64 != nil},
		{"Sub64", e.Sub64 != nil},
		{"Mul64", e.Mul64 != nil},
		{"Div64", e.Div64 != nil},
		{"Min64", e.Min64 != nil},
		{"Max64", e.Max64 != nil},
		{"Abs64", e.Abs64 != nil},
		{"Scale64", e.Scale64 != nil},
		{"MulAdd64", e.MulAdd64 != nil},
		{"Dot64", e.Dot64 != nil},
		{"Dot364", e.Dot364 != nil},
		{"Add32", e.Add32 != nil},
		{"Sub32", e.Sub32 != nil},
		{"Mul32", e.Mul32 != nil},
		{"Div32", e.Div32 != nil},
		{"Min32", e.Min32 != nil},
		{"Max32", e.Max32 != nil},
		{"Abs32", e.Abs32 != nil},
		{"Scale32", e.Scale32 != nil},
		{"MulAdd32", e.MulAdd32 != nil},
		{"Dot32", e.Dot32 != nil},
		{"Dot332", e.Dot332 != nil},
	}
	for _, c := range checks {
		if !c.ok {
			return c.name
		}
	}
	return ""
}

// OpRegistry manages the registration and lookup of implementation variants.
//
// Implementations register themselves via init() functions. At runtime, Lookup()
// selects the highest-priority implementation compatible with the current CPU.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by all kernel dispatch.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
//
// This function is typically called from init() functions in architecture-specific
// implementation packages. It is safe to call concurrently, but all registrations
// should complete before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best implementation variant for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU, or nil if no
// compatible implementation was registered.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// LookupName returns the entry registered under name, or nil.
func (r *OpRegistry) LookupName(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}
	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Insertion sort; the registry holds a handful of entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
