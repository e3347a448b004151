package scalar

import "github.com/meko-christian/algo-approx"

// SqrtFast approximates Sqrt(x) with roughly 1e-4 relative error.
// It is intended for non-negative finite input.
func SqrtFast[T Float](x T) T {
	return T(approx.FastSqrt(float64(x)))
}

// SqrtReciprocalFast approximates 1 / Sqrt(x).
func SqrtReciprocalFast[T Float](x T) T {
	return 1 / SqrtFast(x)
}
