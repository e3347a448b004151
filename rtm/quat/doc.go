// Package quat provides rotation quaternions in 64-bit ([Quat64]) and 32-bit
// ([Quat32]) precision.
//
// A quaternion is stored as four lanes in x, y, z, w order, w being the real
// part. The identity rotation is (0, 0, 0, 1).
//
// Multiplication composes rotations left to right:
//
//	localToWorld := localToObject.Mul(objectToWorld)
//
// Mul is evaluated in scalar code with a fixed term order, so its result is
// bit-identical on every CPU. Operations that go through vector4 (Normalize,
// Lerp, Dot) follow the vector kernel backend.
//
// No operation validates its input. Normalizing a zero quaternion yields NaN
// lanes, and Acos of |w| > 1 yields a NaN angle.
package quat
