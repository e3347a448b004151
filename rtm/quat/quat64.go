package quat

import (
	"github.com/cwbudde/algo-rtm/rtm/scalar"
	"github.com/cwbudde/algo-rtm/rtm/vector4"
)

// DefaultNearIdentityAngle is the rotation angle, in radians, below which
// NearIdentity reports true when callers have no better threshold.
const DefaultNearIdentityAngle = 0.00284714461

const (
	// axisEpsilon is the minimum sin(angle/2) for which an axis is recoverable.
	axisEpsilon = 1.0e-8

	// slerpEpsilon bounds 1 - cos(theta) below which Slerp degrades to Lerp.
	slerpEpsilon = 1.0e-6
)

// Quat64 is a float64 quaternion in x, y, z, w order.
type Quat64 [4]float64

// Set64 returns the quaternion (x, y, z, w).
func Set64(x, y, z, w float64) Quat64 {
	return Quat64{x, y, z, w}
}

// Identity64 returns the identity rotation.
func Identity64() Quat64 {
	return Quat64{0, 0, 0, 1}
}

// UnalignedLoad64 reads four consecutive lanes from src.
// It panics with an index error if len(src) < 4.
func UnalignedLoad64(src []float64) Quat64 {
	return Quat64(vector4.UnalignedLoad64(src))
}

// FromVector64 reinterprets the lanes of v as a quaternion.
func FromVector64(v vector4.Vec64) Quat64 {
	return Quat64(v)
}

// ToVector reinterprets the lanes of q as a vector.
func (q Quat64) ToVector() vector4.Vec64 {
	return vector4.Vec64(q)
}

// X returns the x lane.
func (q Quat64) X() float64 { return q[0] }

// Y returns the y lane.
func (q Quat64) Y() float64 { return q[1] }

// Z returns the z lane.
func (q Quat64) Z() float64 { return q[2] }

// W returns the real part.
func (q Quat64) W() float64 { return q[3] }

// To32 narrows every lane to float32.
func (q Quat64) To32() Quat32 {
	return Quat32(q.ToVector().To32())
}

// UnalignedWrite stores the four lanes into dst[0:4].
func (q Quat64) UnalignedWrite(dst []float64) {
	q.ToVector().UnalignedWrite(dst)
}

// Conjugate negates the imaginary part.
func (q Quat64) Conjugate() Quat64 {
	return Quat64{-q[0], -q[1], -q[2], q[3]}
}

// Mul returns the rotation q followed by rhs.
func (q Quat64) Mul(rhs Quat64) Quat64 {
	lx, ly, lz, lw := q[0], q[1], q[2], q[3]
	rx, ry, rz, rw := rhs[0], rhs[1], rhs[2], rhs[3]

	// Every product is rounded before it is summed so the compiler cannot
	// contract terms into fused multiply-adds.
	x := float64(float64(float64(rw*lx)+float64(rx*lw))+float64(ry*lz)) - float64(rz*ly)
	y := float64(float64(float64(rw*ly)-float64(rx*lz))+float64(ry*lw)) + float64(rz*lx)
	z := float64(float64(float64(rw*lz)+float64(rx*ly))-float64(ry*lx)) + float64(rz*lw)
	w := float64(float64(float64(rw*lw)-float64(rx*lx))-float64(ry*ly)) - float64(rz*lz)

	return Quat64{x, y, z, w}
}

// Rotate applies q to the x, y, z lanes of v. The w lane of v is ignored and
// the result's w lane is the real part of the product, zero up to rounding.
func (q Quat64) Rotate(v vector4.Vec64) vector4.Vec64 {
	p := Quat64{v[0], v[1], v[2], 0}
	return q.Conjugate().Mul(p).Mul(q).ToVector()
}

// Dot returns the 4-lane dot product of q and rhs.
func (q Quat64) Dot(rhs Quat64) float64 {
	return q.ToVector().Dot(rhs.ToVector())
}

// LengthSquared returns the squared norm.
func (q Quat64) LengthSquared() float64 {
	return q.ToVector().LengthSquared()
}

// Length returns the norm.
func (q Quat64) Length() float64 {
	return scalar.Sqrt(q.LengthSquared())
}

// LengthReciprocal returns 1 / Length. A zero quaternion yields +Inf.
func (q Quat64) LengthReciprocal() float64 {
	return 1 / q.Length()
}

// Normalize divides every lane by Length. A zero quaternion yields NaN lanes.
func (q Quat64) Normalize() Quat64 {
	v := q.ToVector()
	return FromVector64(v.Div(vector4.Splat64(q.Length())))
}

// NormalizeFast is Normalize with an approximate reciprocal square root.
func (q Quat64) NormalizeFast() Quat64 {
	return FromVector64(q.ToVector().Scale(scalar.SqrtReciprocalFast(q.LengthSquared())))
}

// Lerp interpolates linearly from q to end along the shortest path and
// normalizes the result. Alpha is not clamped.
func (q Quat64) Lerp(end Quat64, alpha float64) Quat64 {
	start := q.ToVector()
	stop := end.ToVector()

	bias := float64(1)
	if start.Dot(stop) < 0 {
		bias = -1
	}

	value := start.Add(stop.Scale(bias).Sub(start).Scale(alpha))
	return FromVector64(value).Normalize()
}

// Slerp interpolates along the great arc from q to end, taking the shortest
// path. Nearly parallel inputs fall back to Lerp.
func (q Quat64) Slerp(end Quat64, alpha float64) Quat64 {
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

	return FromVector64(start.Scale(a).Add(stop.Scale(b)))
}

// Neg negates every lane. The result encodes the same rotation.
func (q Quat64) Neg() Quat64 {
	return FromVector64(q.ToVector().Scale(-1))
}

// EnsurePositiveW returns q or -q, whichever has w >= 0.
func (q Quat64) EnsurePositiveW() Quat64 {
	if q[3] >= 0 {
		return q
	}
	return q.Neg()
}

// Inverse returns the multiplicative inverse, Conjugate / LengthSquared.
// For unit quaternions it equals Conjugate up to rounding.
func (q Quat64) Inverse() Quat64 {
	return FromVector64(q.Conjugate().ToVector().Scale(1 / q.LengthSquared()))
}

// FromPositiveW64 rebuilds a unit quaternion from its x, y, z lanes, assuming a
// non-negative real part. The w lane of v is ignored.
func FromPositiveW64(v vector4.Vec64) Quat64 {
	x, y, z := v[0], v[1], v[2]
	wSquared := float64(float64(float64(1-float64(x*x))-float64(y*y)) - float64(z*z))
	return Quat64{x, y, z, scalar.Sqrt(scalar.Abs(wSquared))}
}

// ToAxisAngle returns the rotation axis and angle in radians. When the
// rotation is too small to define an axis, the axis is (1, 0, 0).
func (q Quat64) ToAxisAngle() (axis vector4.Vec64, angle float64) {
	return q.Axis(), q.Angle()
}

// Axis returns the unit rotation axis, or (1, 0, 0) near identity.
func (q Quat64) Axis() vector4.Vec64 {
	w := q[3]
	scaleSq := scalar.Max(1-float64(w*w), 0)
	if scaleSq < axisEpsilon*axisEpsilon {
		return vector4.Set64(1, 0, 0, 0)
	}

	return vector4.Set64(q[0], q[1], q[2], 0).Div(vector4.Splat64(scalar.Sqrt(scaleSq)))
}

// Angle returns the rotation angle in radians, in [0, 2π].
func (q Quat64) Angle() float64 {
	return scalar.Acos(q[3]) * 2
}

// AngleBetween returns the angle in radians of the shortest rotation taking
// q to rhs. Both inputs are expected to be unit quaternions.
func (q Quat64) AngleBetween(rhs Quat64) float64 {
	d := scalar.Min(scalar.Abs(q.Dot(rhs)), 1)
	return scalar.Acos(d) * 2
}

// FromAxisAngle64 returns the rotation of angle radians about axis. The axis
// is expected to be normalized and is used as given.
func FromAxisAngle64(axis vector4.Vec64, angle float64) Quat64 {
	s, c := scalar.SinCos(0.5 * angle)
	return Quat64{s * axis[0], s * axis[1], s * axis[2], c}
}

// FromEuler64 builds a rotation from Euler angles in radians: pitch about
// the Y axis, yaw about the Z axis and roll about the X axis.
func FromEuler64(pitch, yaw, roll float64) Quat64 {
	sp, cp := scalar.SinCos(pitch * 0.5)
	sy, cy := scalar.SinCos(yaw * 0.5)
	sr, cr := scalar.SinCos(roll * 0.5)

	return Quat64{
		float64(float64(cr*sp)*sy) - float64(float64(sr*cp)*cy),
		float64(float64(-cr*sp)*cy) - float64(float64(sr*cp)*sy),
		float64(float64(cr*cp)*sy) - float64(float64(sr*sp)*cy),
		float64(float64(cr*cp)*cy) + float64(float64(sr*sp)*sy),
	}
}

// IsFinite reports whether every lane is finite.
func (q Quat64) IsFinite() bool {
	return q.ToVector().IsFinite()
}

// IsNormalized reports whether |LengthSquared - 1| < threshold.
// scalar.DefaultThreshold is the customary threshold.
func (q Quat64) IsNormalized(threshold float64) bool {
	return scalar.Abs(q.LengthSquared()-1) < threshold
}

// NearEqual reports whether every lane of q is within threshold of rhs.
// It compares lanes, so q and -q are not near-equal.
func (q Quat64) NearEqual(rhs Quat64, threshold float64) bool {
	return q.ToVector().AllNearEqual(rhs.ToVector(), threshold)
}

// NearIdentity reports whether q rotates by less than thresholdAngle radians.
// q and -q are treated alike.
func (q Quat64) NearIdentity(thresholdAngle float64) bool {
	positiveWAngle := scalar.Acos(scalar.Abs(q[3])) * 2
	return positiveWAngle < thresholdAngle
}
