//go:build arm64 && !purego

package neon

import "math"

// MulAdd64 returns fma(a, b, c) per lane.
func MulAdd64(a, b, c [4]float64) [4]float64 {
	return [4]float64{
		math.FMA(a[0], b[0], c[0]),
		math.FMA(a[1], b[1], c[1]),
		math.FMA(a[2], b[2], c[2]),
		math.FMA(a[3], b[3], c[3]),
	}
}

// Dot64 multiplies the xy half, fuses the zw half onto it, then adds the
// two lanes pairwise (FADDP).
func Dot64(a, b [4]float64) float64 {
	xz := math.FMA(a[2], b[2], a[0]*b[0])
	yw := math.FMA(a[3], b[3], a[1]*b[1])
	return xz + yw
}

// MulAdd32 returns fma(a, b, c) per lane.
func MulAdd32(a, b, c [4]float32) [4]float32 {
	return [4]float32{
		fma32(a[0], b[0], c[0]),
		fma32(a[1], b[1], c[1]),
		fma32(a[2], b[2], c[2]),
		fma32(a[3], b[3], c[3]),
	}
}

// Dot32 follows the FMUL, FADDP, FADDP sequence over one register.
func Dot32(a, b [4]float32) float32 {
	xy := float32(a[0]*b[0]) + float32(a[1]*b[1])
	zw := float32(a[2]*b[2]) + float32(a[3]*b[3])
	return xy + zw
}

// fma32 computes a*b + c in float64 and narrows the result, so it rounds twice.
// It can differ from a single-rounding float32 FMLA in the last bit.
func fma32(a, b, c float32) float32 {
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}
