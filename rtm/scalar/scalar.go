package scalar

import "math"

// Float is the set of lane types supported by the package.
type Float interface {
	~float32 | ~float64
}

// DefaultThreshold is the absolute tolerance used by the near-equality helpers.
const DefaultThreshold = 1e-5

// Sqrt returns the square root of x. Negative input yields NaN.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// SqrtReciprocal returns 1 / Sqrt(x). Zero input yields +Inf.
func SqrtReciprocal[T Float](x T) T {
	return 1 / Sqrt(x)
}

// Reciprocal returns 1 / x.
func Reciprocal[T Float](x T) T {
	return 1 / x
}

// Acos returns the arc cosine of x in radians. Input outside [-1, 1] yields NaN.
func Acos[T Float](x T) T {
	return T(math.Acos(float64(x)))
}

// Atan2 returns the arc tangent of y/x using the signs of both to pick the quadrant.
func Atan2[T Float](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

// Sin returns the sine of angle (radians).
func Sin[T Float](angle T) T {
	return T(math.Sin(float64(angle)))
}

// Cos returns the cosine of angle (radians).
func Cos[T Float](angle T) T {
	return T(math.Cos(float64(angle)))
}

// SinCos returns the sine and cosine of angle (radians).
func SinCos[T Float](angle T) (sin, cos T) {
	s, c := math.Sincos(float64(angle))
	return T(s), T(c)
}

// Abs returns |x|.
func Abs[T Float](x T) T {
	return T(math.Abs(float64(x)))
}

// Min returns the smaller of a and b. If either is NaN, a is returned.
func Min[T Float](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b. If either is NaN, a is returned.
func Max[T Float](a, b T) T {
	if a < b {
		return b
	}
	return a
}

// Clamp limits x to the inclusive range [lo, hi].
func Clamp[T Float](x, lo, hi T) T {
	return Min(Max(x, lo), hi)
}

// Lerp returns a + (b-a)*alpha. Alpha is not clamped.
func Lerp[T Float](a, b, alpha T) T {
	return a + (b-a)*alpha
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite[T Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// NearEqual reports whether |a-b| < threshold.
func NearEqual[T Float](a, b, threshold T) bool {
	return Abs(a-b) < threshold
}

// DegToRad converts degrees to radians.
func DegToRad[T Float](deg T) T {
	return deg * T(math.Pi/180)
}

// RadToDeg converts radians to degrees.
func RadToDeg[T Float](rad T) T {
	return rad * T(180/math.Pi)
}
