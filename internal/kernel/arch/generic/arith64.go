package generic

import "math"

// Add64 returns a + b per lane.
func Add64(a, b [4]float64) [4]float64 {
	return [4]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub64 returns a - b per lane.
func Sub64(a, b [4]float64) [4]float64 {
	return [4]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Mul64 returns a * b per lane.
func Mul64(a, b [4]float64) [4]float64 {
	return [4]float64{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Div64 returns a / b per lane. Division by zero follows IEEE-754.
func Div64(a, b [4]float64) [4]float64 {
	return [4]float64{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

// Scale64 returns a * s per lane.
func Scale64(a [4]float64, s float64) [4]float64 {
	return [4]float64{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

// MulAdd64 returns a*b + c per lane, rounding the product before the add.
func MulAdd64(a, b, c [4]float64) [4]float64 {
	return [4]float64{
		float64(a[0]*b[0]) + c[0],
		float64(a[1]*b[1]) + c[1],
		float64(a[2]*b[2]) + c[2],
		float64(a[3]*b[3]) + c[3],
	}
}

// Min64 returns the lane-wise minimum. When either lane is NaN the left lane wins.
func Min64(a, b [4]float64) [4]float64 {
	return [4]float64{min64(a[0], b[0]), min64(a[1], b[1]), min64(a[2], b[2]), min64(a[3], b[3])}
}

// Max64 returns the lane-wise maximum. When either lane is NaN the left lane wins.
func Max64(a, b [4]float64) [4]float64 {
	return [4]float64{max64(a[0], b[0]), max64(a[1], b[1]), max64(a[2], b[2]), max64(a[3], b[3])}
}

// Abs64 clears the sign bit of every lane.
func Abs64(a [4]float64) [4]float64 {
	return [4]float64{math.Abs(a[0]), math.Abs(a[1]), math.Abs(a[2]), math.Abs(a[3])}
}

// Dot64 returns ((x*x' + y*y') + z*z') + w*w'.
func Dot64(a, b [4]float64) float64 {
	return float64(float64(float64(a[0]*b[0])+float64(a[1]*b[1]))+float64(a[2]*b[2])) + float64(a[3]*b[3])
}

// Dot364 returns (x*x' + y*y') + z*z'.
func Dot364(a, b [4]float64) float64 {
	return float64(float64(a[0]*b[0])+float64(a[1]*b[1])) + float64(a[2]*b[2])
}

func min64(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

func max64(a, b float64) float64 {
	if a < b {
		return b
	}
	return a
}
