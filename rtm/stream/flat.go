package stream

import (
	"unsafe"

	"github.com/cwbudde/algo-rtm/rtm/vector4"
)

const errLength = "stream: slice length mismatch"

// flat64 views v as 4*len(v) consecutive float64 lanes.
func flat64(v []vector4.Vec64) []float64 {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice(&v[0][0], 4*len(v))
}

func sameStart64(a, b []vector4.Vec64) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

func checkLen(n int, others ...int) {
	for _, m := range others {
		if m != n {
			panic(errLength)
		}
	}
}
