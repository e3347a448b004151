package vector4

import (
	"github.com/cwbudde/algo-rtm/internal/kernel"
	"github.com/cwbudde/algo-rtm/rtm/scalar"
)

// Vec64 is a 4-lane float64 vector in x, y, z, w order.
type Vec64 [4]float64

// Set64 returns the vector (x, y, z, w).
func Set64(x, y, z, w float64) Vec64 {
	return Vec64{x, y, z, w}
}

// Splat64 returns a vector with s in every lane.
func Splat64(s float64) Vec64 {
	return Vec64{s, s, s, s}
}

// Zero64 returns the zero vector.
func Zero64() Vec64 {
	return Vec64{}
}

// UnalignedLoad64 reads four consecutive lanes from src.
// It panics with an index error if len(src) < 4.
func UnalignedLoad64(src []float64) Vec64 {
	_ = src[3]
	return Vec64{src[0], src[1], src[2], src[3]}
}

// X returns the x lane.
func (v Vec64) X() float64 { return v[0] }

// Y returns the y lane.
func (v Vec64) Y() float64 { return v[1] }

// Z returns the z lane.
func (v Vec64) Z() float64 { return v[2] }

// W returns the w lane.
func (v Vec64) W() float64 { return v[3] }

// Lane returns lane i (0 = x, 3 = w). It panics if i is out of range.
func (v Vec64) Lane(i int) float64 { return v[i] }

// To32 narrows every lane to float32.
func (v Vec64) To32() Vec32 {
	return Vec32{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

// UnalignedWrite stores the four lanes into dst[0:4].
// It panics with an index error if len(dst) < 4.
func (v Vec64) UnalignedWrite(dst []float64) {
	_ = dst[3]
	dst[0], dst[1], dst[2], dst[3] = v[0], v[1], v[2], v[3]
}

// Add returns v + o.
func (v Vec64) Add(o Vec64) Vec64 { return kernel.Add64(v, o) }

// Sub returns v - o.
func (v Vec64) Sub(o Vec64) Vec64 { return kernel.Sub64(v, o) }

// Mul returns the component-wise product v * o.
func (v Vec64) Mul(o Vec64) Vec64 { return kernel.Mul64(v, o) }

// Scale returns v * s.
func (v Vec64) Scale(s float64) Vec64 { return kernel.Scale64(v, s) }

// Div returns the component-wise quotient v / o.
func (v Vec64) Div(o Vec64) Vec64 { return kernel.Div64(v, o) }

// MulAdd returns v*b + c.
func (v Vec64) MulAdd(b, c Vec64) Vec64 { return kernel.MulAdd64(v, b, c) }

// Min returns the component-wise minimum.
func (v Vec64) Min(o Vec64) Vec64 { return kernel.Min64(v, o) }

// Max returns the component-wise maximum.
func (v Vec64) Max(o Vec64) Vec64 { return kernel.Max64(v, o) }

// Abs returns |v| per lane.
func (v Vec64) Abs() Vec64 { return kernel.Abs64(v) }

// Neg returns -v.
func (v Vec64) Neg() Vec64 {
	return Vec64{-v[0], -v[1], -v[2], -v[3]}
}

// Dot returns the 4-lane dot product.
func (v Vec64) Dot(o Vec64) float64 { return kernel.Dot64(v, o) }

// Dot3 returns the dot product of the x, y, z lanes.
func (v Vec64) Dot3(o Vec64) float64 { return kernel.Dot364(v, o) }

// Cross3 returns the cross product of the x, y, z lanes with w = 0.
func (v Vec64) Cross3(o Vec64) Vec64 {
	return Vec64{
		float64(v[1]*o[2]) - float64(v[2]*o[1]),
		float64(v[2]*o[0]) - float64(v[0]*o[2]),
		float64(v[0]*o[1]) - float64(v[1]*o[0]),
		0,
	}
}

// LengthSquared returns the 4-lane squared length.
func (v Vec64) LengthSquared() float64 { return v.Dot(v) }

// Length returns the 4-lane length.
func (v Vec64) Length() float64 { return scalar.Sqrt(v.LengthSquared()) }

// LengthReciprocal returns 1 / Length. A zero vector yields +Inf.
func (v Vec64) LengthReciprocal() float64 { return 1 / v.Length() }

// LengthSquared3 returns the squared length of the x, y, z lanes.
func (v Vec64) LengthSquared3() float64 { return v.Dot3(v) }

// Length3 returns the length of the x, y, z lanes.
func (v Vec64) Length3() float64 { return scalar.Sqrt(v.LengthSquared3()) }

// Normalize3 scales v so its x, y, z lanes have unit length.
// A zero vector yields NaN lanes.
func (v Vec64) Normalize3() Vec64 {
	return v.Scale(1 / v.Length3())
}

// NormalizeFast3 is Normalize3 with an approximate reciprocal square root.
func (v Vec64) NormalizeFast3() Vec64 {
	return v.Scale(scalar.SqrtReciprocalFast(v.LengthSquared3()))
}

// Lerp returns v + (end-v)*alpha. Alpha is not clamped.
func (v Vec64) Lerp(end Vec64, alpha float64) Vec64 {
	return v.Add(end.Sub(v).Scale(alpha))
}

// NearEqual reports per lane whether |v-o| < threshold.
func (v Vec64) NearEqual(o Vec64, threshold float64) [4]bool {
	return [4]bool{
		scalar.NearEqual(v[0], o[0], threshold),
		scalar.NearEqual(v[1], o[1], threshold),
		scalar.NearEqual(v[2], o[2], threshold),
		scalar.NearEqual(v[3], o[3], threshold),
	}
}

// AllNearEqual reports whether every lane satisfies NearEqual.
func (v Vec64) AllNearEqual(o Vec64, threshold float64) bool {
	d := v.Sub(o).Abs()
	return d[0] < threshold && d[1] < threshold && d[2] < threshold && d[3] < threshold
}

// AllNearEqual3 is AllNearEqual restricted to the x, y, z lanes.
func (v Vec64) AllNearEqual3(o Vec64, threshold float64) bool {
	d := v.Sub(o).Abs()
	return d[0] < threshold && d[1] < threshold && d[2] < threshold
}

// IsFinite reports whether every lane is finite.
func (v Vec64) IsFinite() bool {
	return scalar.IsFinite(v[0]) && scalar.IsFinite(v[1]) && scalar.IsFinite(v[2]) && scalar.IsFinite(v[3])
}

// Equal reports exact lane equality. NaN lanes never compare equal.
func (v Vec64) Equal(o Vec64) bool {
	return v == o
}
