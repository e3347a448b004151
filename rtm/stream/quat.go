package stream

import "github.com/cwbudde/algo-rtm/rtm/quat"

// MulQuats64 computes dst[i] = a[i].Mul(b[i]), e.g. local rotations
// composed with their parents.
func MulQuats64(dst, a, b []quat.Quat64) {
	checkLen(len(dst), len(a), len(b))
	for i := range a {
		dst[i] = a[i].Mul(b[i])
	}
}

// NormalizeQuats64 computes dst[i] = src[i].Normalize().
func NormalizeQuats64(dst, src []quat.Quat64) {
	checkLen(len(dst), len(src))
	for i := range src {
		dst[i] = src[i].Normalize()
	}
}

// LerpQuats64 computes dst[i] = a[i].Lerp(b[i], alpha).
func LerpQuats64(dst, a, b []quat.Quat64, alpha float64) {
	checkLen(len(dst), len(a), len(b))
	for i := range a {
		dst[i] = a[i].Lerp(b[i], alpha)
	}
}

// EnsurePositiveW64 computes dst[i] = src[i].EnsurePositiveW().
func EnsurePositiveW64(dst, src []quat.Quat64) {
	checkLen(len(dst), len(src))
	for i := range src {
		dst[i] = src[i].EnsurePositiveW()
	}
}

// MulQuats32 computes dst[i] = a[i].Mul(b[i]).
func MulQuats32(dst, a, b []quat.Quat32) {
	checkLen(len(dst), len(a), len(b))
	for i := range a {
		dst[i] = a[i].Mul(b[i])
	}
}

// NormalizeQuats32 computes dst[i] = src[i].Normalize().
func NormalizeQuats32(dst, src []quat.Quat32) {
	checkLen(len(dst), len(src))
	for i := range src {
		dst[i] = src[i].Normalize()
	}
}

// LerpQuats32 computes dst[i] = a[i].Lerp(b[i], alpha).
func LerpQuats32(dst, a, b []quat.Quat32, alpha float32) {
	checkLen(len(dst), len(a), len(b))
	for i := range a {
		dst[i] = a[i].Lerp(b[i], alpha)
	}
}

// EnsurePositiveW32 computes dst[i] = src[i].EnsurePositiveW().
func EnsurePositiveW32(dst, src []quat.Quat32) {
	checkLen(len(dst), len(src))
	for i := range src {
		dst[i] = src[i].EnsurePositiveW()
	}
}
