package vector4_test

import (
	"fmt"

	"github.com/cwbudde/algo-rtm/rtm/vector4"
)

func ExampleVec64_Cross3() {
	x := vector4.Set64(1, 0, 0, 0)
	y := vector4.Set64(0, 1, 0, 0)
	fmt.Println(x.Cross3(y))
	// Output: [0 0 1 0]
}

func ExampleVec64_Dot() {
	a := vector4.Set64(1, 2, 3, 4)
	b := vector4.Set64(5, 6, 7, 8)
	fmt.Println(a.Dot(b), a.Dot3(b))
	// Output: 70 38
}
