//go:build amd64 && !purego

package avx2

import "math"

// These kernels are written in Go against math.FMA, which the compiler lowers
// to VFMADD231SD on GOAMD64=v3 and emulates in software below that.
// TODO: replace Dot64/Dot32 with VDPPS/VHADDPD asm kernels and benchmark against this version.

// MulAdd64 returns fma(a, b, c) per lane.
func MulAdd64(a, b, c [4]float64) [4]float64 {
	return [4]float64{
		math.FMA(a[0], b[0], c[0]),
		math.FMA(a[1], b[1], c[1]),
		math.FMA(a[2], b[2], c[2]),
		math.FMA(a[3], b[3], c[3]),
	}
}

// Dot64 accumulates x, y, z, w with a chain of fused multiply-adds.
func Dot64(a, b [4]float64) float64 {
	s := a[0] * b[0]
	s = math.FMA(a[1], b[1], s)
	s = math.FMA(a[2], b[2], s)
	return math.FMA(a[3], b[3], s)
}

// Dot364 is Dot64 without the w lane.
func Dot364(a, b [4]float64) float64 {
	s := a[0] * b[0]
	s = math.FMA(a[1], b[1], s)
	return math.FMA(a[2], b[2], s)
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

// Dot32 accumulates x, y, z, w with a chain of fused multiply-adds.
func Dot32(a, b [4]float32) float32 {
	s := a[0] * b[0]
	s = fma32(a[1], b[1], s)
	s = fma32(a[2], b[2], s)
	return fma32(a[3], b[3], s)
}

// Dot332 is Dot32 without the w lane.
func Dot332(a, b [4]float32) float32 {
	s := a[0] * b[0]
	s = fma32(a[1], b[1], s)
	return fma32(a[2], b[2], s)
}

// fma32 computes a*b + c in float64 and narrows the result, so it rounds twice:
// once for the float64 FMA and once for the narrowing. It is not a
// single-rounding float32 VFMADD.
func fma32(a, b, c float32) float32 {
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}
