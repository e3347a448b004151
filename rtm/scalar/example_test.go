package scalar_test

import (
	"fmt"

	"github.com/cwbudde/algo-rtm/rtm/scalar"
)

func ExampleSinCos() {
	s, c := scalar.SinCos(0.0)
	fmt.Println(s, c)

	// Output:
	// 0 1
}

func ExampleNearEqual() {
	fmt.Println(scalar.NearEqual(1.0, 1.000001, scalar.DefaultThreshold))
	fmt.Println(scalar.NearEqual(float32(1), 1.1, scalar.DefaultThreshold))

	// Output:
	// true
	// false
}
