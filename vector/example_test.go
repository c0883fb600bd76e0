// Package vector_test provides runnable documentation examples.
package vector_test

import (
	"fmt"

	"github.com/katalvlaran/linal/vector"
)

// ExampleVector_Add demonstrates element-wise arithmetic with shape safety.
func ExampleVector_Add() {
	a := vector.Vec3(1.0, 2.0, 3.0)
	b := vector.Vec3(4.0, 5.0, 6.0)

	sum, err := a.Add(b)
	if err != nil {
		fmt.Println("add:", err)
		return
	}
	sum.Print()

	// Output:
	// (5, 7, 9)
}

// ExampleVector_Normalized shows normalization with the zero-vector guard.
func ExampleVector_Normalized() {
	v := vector.Vec2(3.0, 4.0)
	fmt.Println(v.Normalized())
	fmt.Println(vector.Vec2(0.0, 0.0).Normalized())

	// Output:
	// (0.6, 0.8)
	// (0, 0)
}

// ExampleVector_Cross computes the right-handed basis product.
func ExampleVector_Cross() {
	x := vector.Vec3(1.0, 0.0, 0.0)
	y := vector.Vec3(0.0, 1.0, 0.0)

	z, err := x.Cross(y)
	if err != nil {
		fmt.Println("cross:", err)
		return
	}
	z.Print()

	// Output:
	// (0, 0, 1)
}

// ExampleLerp interpolates between two points.
func ExampleLerp() {
	start := vector.Vec2(0.0, 0.0)
	end := vector.Vec2(10.0, 20.0)

	mid, err := vector.Lerp(start, end, 0.5)
	if err != nil {
		fmt.Println("lerp:", err)
		return
	}
	mid.Print()

	// Output:
	// (5, 10)
}
