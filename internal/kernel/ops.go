package kernel

// Add64 returns a + b per lane.
func Add64(a, b [4]float64) [4]float64 { return current().Add64(a, b) }

// Sub64 returns a - b per lane.
func Sub64(a, b [4]float64) [4]float64 { return current().Sub64(a, b) }

// Mul64 returns a * b per lane.
func Mul64(a, b [4]float64) [4]float64 { return current().Mul64(a, b) }

// Div64 returns a / b per lane.
func Div64(a, b [4]float64) [4]float64 { return current().Div64(a, b) }

// Min64 returns the lane-wise minimum.
func Min64(a, b [4]float64) [4]float64 { return current().Min64(a, b) }

// Max64 returns the lane-wise maximum.
func Max64(a, b [4]float64) [4]float64 { return current().Max64(a, b) }

// Abs64 returns |a| per lane.
func Abs64(a [4]float64) [4]float64 { return current().Abs64(a) }

// Scale64 returns a * s per lane.
func Scale64(a [4]float64, s float64) [4]float64 { return current().Scale64(a, s) }

// MulAdd64 returns a*b + c per lane.
func MulAdd64(a, b, c [4]float64) [4]float64 { return current().MulAdd64(a, b, c) }

// Dot64 returns the 4-lane dot product.
func Dot64(a, b [4]float64) float64 { return current().Dot64(a, b) }

// Dot364 returns the dot product of the x, y, z lanes.
func Dot364(a, b [4]float64) float64 { return current().Dot364(a, b) }

// Add32 returns a + b per lane.
func Add32(a, b [4]float32) [4]float32 { return current().Add32(a, b) }

// Sub32 returns a - b per lane.
func Sub32(a, b [4]float32) [4]float32 { return current().Sub32(a, b) }

// Mul32 returns a * b per lane.
func Mul32(a, b [4]float32) [4]float32 { return current().Mul32(a, b) }

// Div32 returns a / b per lane.
func Div32(a, b [4]float32) [4]float32 { return current().Div32(a, b) }

// Min32 returns the lane-wise minimum.
func Min32(a, b [4]float32) [4]float32 { return current().Min32(a, b) }

// Max32 returns the lane-wise maximum.
func Max32(a, b [4]float32) [4]float32 { return current().Max32(a, b) }

// Abs32 returns |a| per lane.
func Abs32(a [4]float32) [4]float32 { return current().Abs32(a) }

// Scale32 returns a * s per lane.
func Scale32(a [4]float32, s float32) [4]float32 { return current().Scale32(a, s) }

// MulAdd32 returns a*b + c per lane.
func MulAdd32(a, b, c [4]float32) [4]float32 { return current().MulAdd32(a, b, c) }

// Dot32 returns the 4-lane dot product.
func Dot32(a, b [4]float32) float32 { return current().Dot32(a, b) }

// Dot332 returns the dot product of the x, y, z lanes.
func Dot332(a, b [4]float32) float32 { return current().Dot332(a, b) }
