package vector4

import (
	"github.com/cwbudde/algo-rtm/internal/kernel"
	"github.com/cwbudde/algo-rtm/rtm/scalar"
)

// Vec32 is a 4-lane float32 vector in x, y, z, w order.
type Vec32 [4]float32

// Set32 returns the vector (x, y, z, w).
func Set32(x, y, z, w float32) Vec32 {
	return Vec32{x, y, z, w}
}

// Splat32 returns a vector with s in every lane.
func Splat32(s float32) Vec32 {
	return Vec32{s, s, s, s}
}

// Zero32 returns the zero vector.
func Zero32() Vec32 {
	return Vec32{}
}

// UnalignedLoad32 reads four consecutive lanes from src.
// It panics with an index error if len(src) < 4.
func UnalignedLoad32(src []float32) Vec32 {
	_ = src[3]
	return Vec32{src[0], src[1], src[2], src[3]}
}

// X returns the x lane.
func (v Vec32) X() float32 { return v[0] }

// Y returns the y lane.
func (v Vec32) Y() float32 { return v[1] }

// Z returns the z lane.
func (v Vec32) Z() float32 { return v[2] }

// W returns the w lane.
func (v Vec32) W() float32 { return v[3] }

// Lane returns lane i (0 = x, 3 = w). It panics if i is out of range.
func (v Vec32) Lane(i int) float32 { return v[i] }

// To64 widens every lane to float64. The conversion is exact.
func (v Vec32) To64() Vec64 {
	return Vec64{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}
}

// UnalignedWrite stores the four lanes into dst[0:4].
// It panics with an index error if len(dst) < 4.
func (v Vec32) UnalignedWrite(dst []float32) {
	_ = dst[3]
	dst[0], dst[1], dst[2], dst[3] = v[0], v[1], v[2], v[3]
}

// Add returns v + o.
func (v Vec32) Add(o Vec32) Vec32 { return kernel.Add32(v, o) }

// Sub returns v - o.
func (v Vec32) Sub(o Vec32) Vec32 { return kernel.Sub32(v, o) }

// Mul returns the component-wise product v * o.
func (v Vec32) Mul(o Vec32) Vec32 { return kernel.Mul32(v, o) }

// Scale returns v * s.
func (v Vec32) Scale(s float32) Vec32 { return kernel.Scale32(v, s) }

// Div returns the component-wise quotient v / o.
func (v Vec32) Div(o Vec32) Vec32 { return kernel.Div32(v, o) }

// MulAdd returns v*b + c.
func (v Vec32) MulAdd(b, c Vec32) Vec32 { return kernel.MulAdd32(v, b, c) }

// Min returns the component-wise minimum.
func (v Vec32) Min(o Vec32) Vec32 { return kernel.Min32(v, o) }

// Max returns the component-wise maximum.
func (v Vec32) Max(o Vec32) Vec32 { return kernel.Max32(v, o) }

// Abs returns |v| per lane.
func (v Vec32) Abs() Vec32 { return kernel.Abs32(v) }

// Neg returns -v.
func (v Vec32) Neg() Vec32 {
	return Vec32{-v[0], -v[1], -v[2], -v[3]}
}

// Dot returns the 4-lane dot product.
func (v Vec32) Dot(o Vec32) float32 { return kernel.Dot32(v, o) }

// Dot3 returns the dot product of the x, y, z lanes.
func (v Vec32) Dot3(o Vec32) float32 { return kernel.Dot332(v, o) }

// Cross3 returns the cross product of the x, y, z lanes with w = 0.
func (v Vec32) Cross3(o Vec32) Vec32 {
	return Vec32{
		float32(v[1]*o[2]) - float32(v[2]*o[1]),
		float32(v[2]*o[0]) - float32(v[0]*o[2]),
		float32(v[0]*o[1]) - float32(v[1]*o[0]),
		0,
	}
}

// LengthSquared returns the 4-lane squared length.
func (v Vec32) LengthSquared() float32 { return v.Dot(v) }

// Length returns the 4-lane length.
func (v Vec32) Length() float32 { return scalar.Sqrt(v.LengthSquared()) }

// LengthReciprocal returns 1 / Length. A zero vector yields +Inf.
func (v Vec32) LengthReciprocal() float32 { return 1 / v.Length() }

// LengthSquared3 returns the squared length of the x, y, z lanes.
func (v Vec32) LengthSquared3() float32 { return v.Dot3(v) }

// Length3 returns the length of the x, y, z lanes.
func (v Vec32) Length3() float32 { return scalar.Sqrt(v.LengthSquared3()) }

// Normalize3 scales v so its x, y, z lanes have unit length.
// A zero vector yields NaN lanes.
func (v Vec32) Normalize3() Vec32 {
	return v.Scale(1 / v.Length3())
}

// NormalizeFast3 is Normalize3 with an approximate reciprocal square root.
func (v Vec32) NormalizeFast3() Vec32 {
	return v.Scale(scalar.SqrtReciprocalFast(v.LengthSquared3()))
}

// Lerp returns v + (end-v)*alpha. Alpha is not clamped.
func (v Vec32) Lerp(end Vec32, alpha float32) Vec32 {
	return v.Add(end.Sub(v).Scale(alpha))
}

// NearEqual reports per lane whether |v-o| < threshold.
func (v Vec32) NearEqual(o Vec32, threshold float32) [4]bool {
	return [4]bool{
		scalar.NearEqual(v[0], o[0], threshold),
		scalar.NearEqual(v[1], o[1], threshold),
		scalar.NearEqual(v[2], o[2], threshold),
		scalar.NearEqual(v[3], o[3], threshold),
	}
}

// AllNearEqual reports whether every lane satisfies NearEqual.
func (v Vec32) AllNearEqual(o Vec32, threshold float32) bool {
	d := v.Sub(o).Abs()
	return d[0] < threshold && d[1] < threshold && d[2] < threshold && d[3] < threshold
}

// AllNearEqual3 is AllNearEqual restricted to the x, y, z lanes.
func (v Vec32) AllNearEqual3(o Vec32, threshold float32) bool {
	d := v.Sub(o).Abs()
	return d[0] < threshold && d[1] < threshold && d[2] < threshold
}

// IsFinite reports whether every lane is finite.
func (v Vec32) IsFinite() bool {
	return scalar.IsFinite(v[0]) && scalar.IsFinite(v[1]) && scalar.IsFinite(v[2]) && scalar.IsFinite(v[3])
}

// Equal reports exact lane equality. NaN lanes never compare equal.
func (v Vec32) Equal(o Vec32) bool {
	return v == o
}
