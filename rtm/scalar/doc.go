// Package scalar provides the elementary math used by the vector4 and quat packages.
//
// Every function is generic over float32 and float64 and follows IEEE-754:
// out-of-domain input (for example Acos outside [-1, 1]) yields NaN rather
// than an error, and division by zero yields ±Inf. Callers that must stay
// finite clamp their inputs, as quat.Quat64.Axis does before taking a square root.
//
// Single-precision results are computed in float64 and rounded once, so they
// are correctly rounded for Sqrt and within an ulp for the trigonometric functions.
//
// [SqrtFast] and [SqrtReciprocalFast] trade accuracy for speed and are only
// used by the explicit *Fast normalization helpers.
package scalar
