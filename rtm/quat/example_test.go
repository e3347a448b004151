package quat_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-rtm/rtm/quat"
	"github.com/cwbudde/algo-rtm/rtm/vector4"
)

func ExampleQuat64_Rotate() {
	q := quat.FromAxisAngle64(vector4.Set64(0, 0, 1, 0), math.Pi/2)
	v := q.Rotate(vector4.Set64(1, 0, 0, 0))
	fmt.Println(v.AllNearEqual3(vector4.Set64(0, 1, 0, 0), 1e-12))
	// Output: true
}

func ExampleQuat64_ToAxisAngle() {
	q := quat.FromAxisAngle64(vector4.Set64(0, 1, 0, 0), 1.25)
	axis, angle := q.ToAxisAngle()
	fmt.Printf("axis=(%.2f, %.2f, %.2f) angle=%.2f\n", axis.X(), axis.Y(), axis.Z(), angle)
	// Output: axis=(0.00, 1.00, 0.00) angle=1.25
}

func ExampleQuat64_NearIdentity() {
	fmt.Println(quat.Identity64().NearIdentity(quat.DefaultNearIdentityAngle))
	fmt.Println(quat.FromEuler64(0, math.Pi/2, 0).NearIdentity(quat.DefaultNearIdentityAngle))
	// Output:
	// true
	// false
}
