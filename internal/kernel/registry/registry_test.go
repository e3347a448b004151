package registry

import (
	"testing"

	"github.com/cwbudde/algo-rtm/internal/cpu"
)

func TestRegistryLookupPrefersHigherPriority(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})

	entry := reg.Lookup(cpu.Features{HasSSE2: true, HasAVX2: true, HasFMA: true})
	if entry == nil || entry.Name != "avx2" {
		t.Fatalf("expected avx2, got %#v", entry)
	}

	entry = reg.Lookup(cpu.Features{HasSSE2: true, HasAVX2: true})
	if entry == nil || entry.Name != "sse2" {
		t.Fatalf("expected sse2 when FMA is missing, got %#v", entry)
	}

	entry = reg.Lookup(cpu.Features{})
	if entry == nil || entry.Name != "generic" {
		t.Fatalf("expected generic, got %#v", entry)
	}
}

func TestRegistryLookupForceGeneric(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "neon", SIMDLevel: cpu.SIMDNEON, Priority: 15})

	entry := reg.Lookup(cpu.Features{HasNEON: true, ForceGeneric: true})
	if entry == nil || entry.Name != "generic" {
		t.Fatalf("expected generic with ForceGeneric, got %#v", entry)
	}
}

func TestRegistryLookupEmpty(t *testing.T) {
	reg := &OpRegistry{}
	if entry := reg.Lookup(cpu.Features{}); entry != nil {
		t.Fatalf("expected nil from empty registry, got %#v", entry)
	}
}

func TestRegistryLookupName(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone})

	if reg.LookupName("generic") == nil {
		t.Fatal("LookupName(generic) returned nil")
	}
	if reg.LookupName("missing") != nil {
		t.Fatal("LookupName(missing) should be nil")
	}

	reg.Reset()
	if len(reg.ListEntries()) != 0 {
		t.Fatal("Reset did not clear entries")
	}
}

func TestValidateReportsMissingOperation(t *testing.T) {
	e := OpEntry{Name: "partial"}
	if got := e.Validate(); got != "Add64" {
		t.Fatalf("Validate() = %q, want Add64", got)
	}
}
