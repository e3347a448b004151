package stream

import (
	"github.com/cwbudde/algo-rtm/rtm/quat"
	"github.com/cwbudde/algo-rtm/rtm/vector4"
)

// Add32 computes dst[i] = a[i] + b[i].
func Add32(dst, a, b []vector4.Vec32) {
	checkLen(len(dst), len(a), len(b))
	for i := range a {
		dst[i] = a[i].Add(b[i])
	}
}

// AddInPlace32 computes dst[i] += src[i].
func AddInPlace32(dst, src []vector4.Vec32) {
	Add32(dst, dst, src)
}

// Mul32 computes the component-wise product dst[i] = a[i] * b[i].
func Mul32(dst, a, b []vector4.Vec32) {
	checkLen(len(dst), len(a), len(b))
	for i := range a {
		dst[i] = a[i].Mul(b[i])
	}
}

// MulInPlace32 computes dst[i] *= src[i] component-wise.
func MulInPlace32(dst, src []vector4.Vec32) {
	Mul32(dst, dst, src)
}

// Scale32 computes dst[i] = src[i] * s.
func Scale32(dst, src []vector4.Vec32, s float32) {
	checkLen(len(dst), len(src))
	for i := range src {
		dst[i] = src[i].Scale(s)
	}
}

// Rotate32 computes dst[i] = q.Rotate(src[i]).
func Rotate32(dst []vector4.Vec32, q quat.Quat32, src []vector4.Vec32) {
	checkLen(len(dst), len(src))
	for i := range src {
		dst[i] = q.Rotate(src[i])
	}
}

// Lerp32 computes dst[i] = a[i].Lerp(b[i], alpha).
func Lerp32(dst, a, b []vector4.Vec32, alpha float32) {
	checkLen(len(dst), len(a), len(b))
	for i := range a {
		dst[i] = a[i].Lerp(b[i], alpha)
	}
}
