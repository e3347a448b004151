// Package kernel dispatches 4-lane vector arithmetic to the best registered backend.
//
// Backends live under arch/ and register themselves with registry.Global from
// init() functions; the init_*.go files in this package import the ones valid
// for the target architecture. The first call to any operation resolves the
// highest-priority backend supported by the detected CPU features.
//
// Build with the purego tag to register only the generic backend.
//
// Element-wise operations are bit-identical across backends. Dot, Dot3 and
// MulAdd may not be: SIMD backends reorder or fuse the terms, so two backends
// agree only within a bound relative to the sum of the term magnitudes
// (1e-15 of sum |a[i]*b[i]| for float64, 1e-6 for float32). When terms cancel
// the absolute difference can exceed the result itself.
package kernel
