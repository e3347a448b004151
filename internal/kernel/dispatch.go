package kernel

import (
	"fmt"
	"sync/atomic"

	"github.com/cwbudde/algo-rtm/internal/cpu"
	"github.com/cwbudde/algo-rtm/internal/kernel/registry"
)

var active atomic.Pointer[registry.OpEntry]

func current() *registry.OpEntry {
	if e := active.Load(); e != nil {
		return e
	}
	active.CompareAndSwap(nil, selectEntry())
	return active.Load()
}

func selectEntry() *registry.OpEntry {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernel: no implementation registered (missing generic fallback?)")
	}
	if missing := entry.Validate(); missing != "" {
		panic("kernel: " + entry.Name + " implementation missing " + missing)
	}
	return entry
}

// Active returns the name of the backend in use, resolving it if needed.
func Active() string {
	return current().Name
}

// Use pins the backend registered under name, bypassing feature detection.
// It is meant for tests and benchmarks that compare backends.
func Use(name string) error {
	entry := registry.Global.LookupName(name)
	if entry == nil {
		return fmt.Errorf("kernel: unknown backend %q", name)
	}
	if missing := entry.Validate(); missing != "" {
		return fmt.Errorf("kernel: backend %q missing %s", name, missing)
	}
	active.Store(entry)
	return nil
}

// Reset drops the resolved backend so the next call re-runs selection
// against the current (possibly forced) CPU features.
func Reset() {
	active.Store(nil)
}

// Backends lists the names of all registered backends.
func Backends() []string {
	entries := registry.Global.ListEntries()
	names := make([]string, len(entries))
	for i := range entries {
		names[i] = entries[i].Name
	}
	return names
}
