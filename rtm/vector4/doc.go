// Package vector4 provides 4-lane vectors in 64-bit ([Vec64]) and 32-bit
// ([Vec32]) precision.
//
// A vector is an array of exactly four consecutive lanes in x, y, z, w order,
// so a []Vec64 has the same memory layout as a []float64 four times as long.
// Vectors are values: every method has a value receiver and returns a new
// vector, and none mutates its operands.
//
// Arithmetic is dispatched to the best kernel backend for the running CPU
// (generic, SSE2, AVX2+FMA or NEON). Element-wise results are identical on every
// backend. Dot, Dot3 and MulAdd may differ where a backend fuses or reorders
// terms; the difference is bounded relative to the sum of |a[i]*b[i]|, not to
// the result.
//
// Nothing in this package reports numeric failures. Division by zero and
// normalization of a zero-length vector produce ±Inf or NaN lanes, which
// propagate through later operations.
package vector4
