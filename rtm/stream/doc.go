// Package stream applies vector and quaternion operations to whole slices,
// such as the joint buffers of an animation pose.
//
// All functions write into a caller-provided dst and allocate nothing. dst may
// be the same slice as any input; partially overlapping slices give undefined
// results. Slices must have equal length; a mismatch panics with
// "stream: slice length mismatch".
//
// The 64-bit element-wise kernels view []vector4.Vec64 as a flat []float64
// and run the block routines of algo-vecmath over it.
package stream
