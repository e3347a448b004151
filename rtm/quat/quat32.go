package quat

import (
	"github.com/cwbudde/algo-rtm/rtm/scalar"
	"github.com/cwbudde/algo-rtm/rtm/vector4"
)

// Quat32 is a float32 quaternion in x, y, z, w order.
type Quat32 [4]float32

// Set32 returns the quaternion (x, y, z, w).
func Set32(x, y, z, w float32) Quat32 {
	return Quat32{x, y, z, w}
}

// Identity32 returns the identity rotation.
func Identity32() Quat32 {
	return Quat32{0, 0, 0, 1}
}

// UnalignedLoad32 reads four consecutive lanes from src.
// It panics with an index error if len(src) < 4.
func UnalignedLoad32(src []float32) Quat32 {
	return Quat32(vector4.UnalignedLoad32(src))
}

// FromVector32 reinterprets the lanes of v as a quaternion.
func FromVector32(v vector4.Vec32) Quat32 {
	return Quat32(v)
}

// ToVector reinterprets the lanes of q as a vector.
func (q Quat32) ToVector() vector4.Vec32 {
	return vector4.Vec32(q)
}

// X returns the x lane.
func (q Quat32) X() float32 { return q[0] }

// Y returns the y lane.
func (q Quat32) Y() float32 { return q[1] }

// Z returns the z lane.
func (q Quat32) Z() float32 { return q[2] }

// W returns the real part.
func (q Quat32) W() float32 { return q[3] }

// To64 widens every lane to float64. The conversion is exact.
func (q Quat32) To64() Quat64 {
	return Quat64(q.ToVector().To64())
}

// UnalignedWrite stores the four lanes into dst[0:4].
func (q Quat32) UnalignedWrite(dst []float32) {
	q.ToVector().UnalignedWrite(dst)
}

// Conjugate negates the imaginary part.
func (q Quat32) Conjugate() Quat32 {
	return Quat32{-q[0], -q[1], -q[2], q[3]}
}

// Mul returns the rotation q followed by rhs.
func (q Quat32) Mul(rhs Quat32) Quat32 {
	lx, ly, lz, lw := q[0], q[1], q[2], q[3]
	rx, ry, rz, rw := rhs[0], rhs[1], rhs[2], rhs[3]

	// Every product is rounded before it is summed so the compiler cannot
	// contract terms into fused multiply-adds.
	x := float32(float32(float32(rw*lx)+float32(rx*lw))+float32(ry*lz)) - float32(rz*ly)
	y := float32(float32(float32(rw*ly)-float32(rx*lz))+float32(ry*lw)) + float32(rz*lx)
	z := float32(float32(float32(rw*lz)+float32(rx*ly))-float32(ry*lx)) + float32(rz*lw)
	w := float32(float32(float32(rw*lw)-float32(rx*lx))-float32(ry*ly)) - float32(rz*lz)

	return Quat32{x, y, z, w}
}

// Rotate applies q to the x, y, z lanes of v. The w lane of v is ignored and
// the result's w lane is the real part of the product, zero up to rounding.
func (q Quat32) Rotate(v vector4.Vec32) vector4.Vec32 {
	p := Quat32{v[0], v[1], v[2], 0}
	return q.Conjugate().Mul(p).Mul(q).ToVector()
}

// Dot returns the 4-lane dot product of q and rhs.
func (q Quat32) Dot(rhs Quat32) float32 {
	return q.ToVector().Dot(rhs.ToVector())
}

// LengthSquared returns the squared norm.
func (q Quat32) LengthSquared() float32 {
	return q.ToVector().LengthSquared()
}

// Length returns the norm.
func (q Quat32) Length() float32 {
	return scalar.Sqrt(q.LengthSquared())
}

// LengthReciprocal returns 1 / Length. A zero quaternion yields +Inf.
func (q Quat32) LengthReciprocal() float32 {
	return 1 / q.Length()
}

// Normalize divides every lane by Length. A zero quaternion yields NaN lanes.
func (q Quat32) Normalize() Quat32 {
	v := q.ToVector()
	return FromVector32(v.Div(vector4.Splat32(q.Length())))
}

// NormalizeFast is Normalize with an approximate reciprocal square root.
func (q Quat32) NormalizeFast() Quat32 {
	return FromVector32(q.ToVector().Scale(scalar.SqrtReciprocalFast(q.LengthSquared())))
}

// Lerp interpolates linearly from q to end along the shortest path and
// normalizes the result. Alpha is not clamped.
func (q Quat32) Lerp(end Quat32, alpha float32) Quat32 {
	start := q.ToVector()
	stop := end.ToVector()

	bias := float32(1)
	if start.Dot(stop) < 0 {
		bias = -1
	}

	value := start.Add(stop.Scale(bias).Sub(start).Scale(alpha))
	return FromVector32(value).Normalize()
}

// Slerp interpolates along the great arc from q to end, taking the shortest
// path. Nearly parallel inputs fall back to Lerp.
func (q Quat32) Slerp(end Quat32, alpha float32) Quat32 {
	start := q.ToVector()
	stop := end.ToVector()

	cosTheta := start.Dot(stop)
	if cosTheta < 0 {
		stop = stop.Neg()
		cosTheta = -cosTheta
	}
	if cosTheta > 1-slerpEpsilon {
		return q.Lerp(end, alpha)
	}

	theta := scalar.Acos(cosTheta)
	sinTheta := scalar.Sin(theta)
	a := scalar.Sin((1-alpha)*theta) / sinTheta
	b := scalar.Sin(alpha*theta) / sinTheta

	return FromVector32(start.Scale(a).Add(stop.Scale(b)))
}

// Neg negates every lane. The result encodes the same rotation.
func (q Quat32) Neg() Quat32 {
	return FromVector32(q.ToVector().Scale(-1))
}

// EnsurePositiveW returns q or -q, whichever has w >= 0.
func (q Quat32) EnsurePositiveW() Quat32 {
	if q[3] >= 0 {
		return q
	}
	return q.Neg()
}

// Inverse returns the multiplicative inverse, Conjugate / LengthSquared.
// For unit quaternions it equals Conjugate up to rounding.
func (q Quat32) Inverse() Quat32 {
	return FromVector32(q.Conjugate().ToVector().Scale(1 / q.LengthSquared()))
}

// FromPositiveW32 rebuilds a unit quaternion from its x, y, z lanes, assuming a
// non-negative real part. The w lane of v is ignored.
func FromPositiveW32(v vector4.Vec32) Quat32 {
	x, y, z := v[0], v[1], v[2]
	wSquared := float32(float32(float32(1-float32(x*x))-float32(y*y)) - float32(z*z))
	return Quat32{x, y, z, scalar.Sqrt(scalar.Abs(wSquared))}
}

// ToAxisAngle returns the rotation axis and angle in radians. When the
// rotation is too small to define an axis, the axis is (1, 0, 0).
func (q Quat32) ToAxisAngle() (axis vector4.Vec32, angle float32) {
	return q.Axis(), q.Angle()
}

// Axis returns the unit rotation axis, or (1, 0, 0) near identity.
func (q Quat32) Axis() vector4.Vec32 {
	w := q[3]
	scaleSq := scalar.Max(1-float32(w*w), 0)
	if scaleSq < axisEpsilon*axisEpsilon {
		return vector4.Set32(1, 0, 0, 0)
	}

	return vector4.Set32(q[0], q[1], q[2], 0).Div(vector4.Splat32(scalar.Sqrt(scaleSq)))
}

// Angle returns the rotation angle in radians, in [0, 2π].
func (q Quat32) Angle() float32 {
	return scalar.Acos(q[3]) * 2
}

// AngleBetween returns the angle in radians of the shortest rotation taking
// q to rhs. Both inputs are expected to be unit quaternions.
func (q Quat32) AngleBetween(rhs Quat32) float32 {
	d := scalar.Min(scalar.Abs(q.Dot(rhs)), 1)
	return scalar.Acos(d) * 2
}

// FromAxisAngle32 returns the rotation of angle radians about axis. The axis
// is expected to be normalized and is used as given.
func FromAxisAngle32(axis vector4.Vec32, angle float32) Quat32 {
	s, c := scalar.SinCos(0.5 * angle)
	return Quat32{s * axis[0], s * axis[1], s * axis[2], c}
}

// FromEuler32 builds a rotation from Euler angles in radians: pitch about
// the Y axis, yaw about the Z axis and roll about the X axis.
func FromEuler32(pitch, yaw, roll float32) Quat32 {
	sp, cp := scalar.SinCos(pitch * 0.5)
	sy, cy := scalar.SinCos(yaw * 0.5)
	sr, cr := scalar.SinCos(roll * 0.5)

	return Quat32{
		float32(float32(cr*sp)*sy) - float32(float32(sr*cp)*cy),
		float32(float32(-cr*sp)*cy) - float32(float32(sr*cp)*sy),
		float32(float32(cr*cp)*sy) - float32(float32(sr*sp)*cy),
		float32(float32(cr*cp)*cy) + float32(float32(sr*sp)*sy),
	}
}

// IsFinite reports whether every lane is finite.
func (q Quat32) IsFinite() bool {
	return q.ToVector().IsFinite()
}

// IsNormalized reports whether |LengthSquared - 1| < threshold.
// scalar.DefaultThreshold is the customary threshold.
func (q Quat32) IsNormalized(threshold float32) bool {
	return scalar.Abs(q.LengthSquared()-1) < threshold
}

// NearEqual reports whether every lane of q is within threshold of rhs.
// It compares lanes, so q and -q are not near-equal.
func (q Quat32) NearEqual(rhs Quat32, threshold float32) bool {
	return q.ToVector().AllNearEqual(rhs.ToVector(), threshold)
}

// NearIdentity reports whether q rotates by less than thresholdAngle radians.
// q and -q are treated alike.
func (q Quat32) NearIdentity(thresholdAngle float32) bool {
	positiveWAngle := scalar.Acos(scalar.Abs(q[3])) * 2
	return positiveWAngle < thresholdAngle
}
