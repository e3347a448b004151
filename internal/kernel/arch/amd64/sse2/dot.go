//go:build amd64 && !purego

package sse2

// Dot64 reduces the xy and zw register halves lane-wise first:
// (x*x' + z*z') + (y*y' + w*w').
func Dot64(a, b [4]float64) float64 {
	xz := float64(a[0]*b[0]) + float64(a[2]*b[2])
	yw := float64(a[1]*b[1]) + float64(a[3]*b[3])
	return xz + yw
}

// Dot32 mirrors the movehl/shuffle reduction of a single 4-lane register:
// (x*x' + z*z') + (y*y' + w*w').
func Dot32(a, b [4]float32) float32 {
	xz := float32(a[0]*b[0]) + float32(a[2]*b[2])
	yw := float32(a[1]*b[1]) + float32(a[3]*b[3])
	return xz + yw
}
