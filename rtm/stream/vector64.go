package stream

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rtm/rtm/quat"
	"github.com/cwbudde/algo-rtm/rtm/vector4"
)

// Add64 computes dst[i] = a[i] + b[i].
func Add64(dst, a, b []vector4.Vec64) {
	checkLen(len(dst), len(a), len(b))

	if sameStart64(dst, b) {
		vecmath.AddBlockInPlace(flat64(dst), flat64(a))
		return
	}
	copy(dst, a)
	vecmath.AddBlockInPlace(flat64(dst), flat64(b))
}

// AddInPlace64 computes dst[i] += src[i].
func AddInPlace64(dst, src []vector4.Vec64) {
	checkLen(len(dst), len(src))
	vecmath.AddBlockInPlace(flat64(dst), flat64(src))
}

// Mul64 computes the component-wise product dst[i] = a[i] * b[i].
func Mul64(dst, a, b []vector4.Vec64) {
	checkLen(len(dst), len(a), len(b))
	vecmath.MulBlock(flat64(dst), flat64(a), flat64(b))
}

// MulInPlace64 computes dst[i] *= src[i] component-wise.
func MulInPlace64(dst, src []vector4.Vec64) {
	checkLen(len(dst), len(src))
	vecmath.MulBlockInPlace(flat64(dst), flat64(src))
}

// Scale64 computes dst[i] = src[i] * s.
func Scale64(dst, src []vector4.Vec64, s float64) {
	checkLen(len(dst), len(src))
	vecmath.ScaleBlock(flat64(dst), flat64(src), s)
}

// Rotate64 computes dst[i] = q.Rotate(src[i]).
func Rotate64(dst []vector4.Vec64, q quat.Quat64, src []vector4.Vec64) {
	checkLen(len(dst), len(src))
	for i := range src {
		dst[i] = q.Rotate(src[i])
	}
}

// Lerp64 computes dst[i] = a[i].Lerp(b[i], alpha).
func Lerp64(dst, a, b []vector4.Vec64, alpha float64) {
	checkLen(len(dst), len(a), len(b))
	for i := range a {
		dst[i] = a[i].Lerp(b[i], alpha)
	}
}
