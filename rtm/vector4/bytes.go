package vector4

import (
	"encoding/binary"
	"math"
)

const (
	bytes64 = 4 * 8
	bytes32 = 4 * 4
)

// LoadBytes64 decodes four native-endian float64 lanes from the start of b.
func LoadBytes64(b []byte) (Vec64, error) {
	if len(b) < bytes64 {
		return Vec64{}, shortBuffer(len(b), bytes64)
	}

	var v Vec64
	for i := range v {
		v[i] = math.Float64frombits(binary.NativeEndian.Uint64(b[i*8:]))
	}

	return v, nil
}

// LoadBytes32 decodes four native-endian float32 lanes from the start of b.
func LoadBytes32(b []byte) (Vec32, error) {
	if len(b) < bytes32 {
		return Vec32{}, shortBuffer(len(b), bytes32)
	}

	var v Vec32
	for i := range v {
		v[i] = math.Float32frombits(binary.NativeEndian.Uint32(b[i*4:]))
	}

	return v, nil
}

// AppendBytes appends the lanes of v to b in native byte order.
func (v Vec64) AppendBytes(b []byte) []byte {
	for _, x := range v {
		b = binary.NativeEndian.AppendUint64(b, math.Float64bits(x))
	}

	return b
}

// AppendBytes appends the lanes of v to b in native byte order.
func (v Vec32) AppendBytes(b []byte) []byte {
	for _, x := range v {
		b = binary.NativeEndian.AppendUint32(b, math.Float32bits(x))
	}

	return b
}
