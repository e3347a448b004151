package generic

import "math"

// Add32 returns a + b per lane.
func Add32(a, b [4]float32) [4]float32 {
	return [4]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub32 returns a - b per lane.
func Sub32(a, b [4]float32) [4]float32 {
	return [4]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Mul32 returns a * b per lane.
func Mul32(a, b [4]float32) [4]float32 {
	return [4]float32{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Div32 returns a / b per lane. Division by zero follows IEEE-754.
func Div32(a, b [4]float32) [4]float32 {
	return [4]float32{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

// Scale32 returns a * s per lane.
func Scale32(a [4]float32, s float32) [4]float32 {
	return [4]float32{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

// MulAdd32 returns a*b + c per lane, rounding the product before the add.
func MulAdd32(a, b, c [4]float32) [4]float32 {
	return [4]float32{
		float32(a[0]*b[0]) + c[0],
		float32(a[1]*b[1]) + c[1],
		float32(a[2]*b[2]) + c[2],
		float32(a[3]*b[3]) + c[3],
	}
}

// Min32 returns the lane-wise minimum. When either lane is NaN the left lane wins.
func Min32(a, b [4]float32) [4]float32 {
	return [4]float32{min32(a[0], b[0]), min32(a[1], b[1]), min32(a[2], b[2]), min32(a[3], b[3])}
}

// Max32 returns the lane-wise maximum. When either lane is NaN the left lane wins.
func Max32(a, b [4]float32) [4]float32 {
	return [4]float32{max32(a[0], b[0]), max32(a[1], b[1]), max32(a[2], b[2]), max32(a[3], b[3])}
}

// Abs32 clears the sign bit of every lane.
func Abs32(a [4]float32) [4]float32 {
	return [4]float32{abs32(a[0]), abs32(a[1]), abs32(a[2]), abs32(a[3])}
}

// Dot32 returns ((x*x' + y*y') + z*z') + w*w'.
func Dot32(a, b [4]float32) float32 {
	return float32(float32(float32(a[0]*b[0])+float32(a[1]*b[1]))+float32(a[2]*b[2])) + float32(a[3]*b[3])
}

// Dot332 returns (x*x' + y*y') + z*z'.
func Dot332(a, b [4]float32) float32 {
	return float32(float32(a[0]*b[0])+float32(a[1]*b[1])) + float32(a[2]*b[2])
}

func abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

func min32(a, b float32) float32 {
	if b < a {
		return b
	}
	return a
}

func max32(a, b float32) float32 {
	if a < b {
		return b
	}
	return a
}
