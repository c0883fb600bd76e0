// Package matrix_test provides runnable documentation examples.
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linal/matrix"
	"github.com/katalvlaran/linal/vector"
)

// ExampleMul multiplies two 2×2 matrices.
func ExampleMul() {
	a := matrix.Mat2([2]float64{1, 2}, [2]float64{3, 4})
	b := matrix.Mat2([2]float64{5, 6}, [2]float64{7, 8})

	prod, err := matrix.Mul[float64](a, b)
	if err != nil {
		fmt.Println("mul:", err)
		return
	}
	fmt.Print(prod)

	// Output:
	// [ 19, 22 ]
	// [ 43, 50 ]
}

// ExampleTranspose flips a rectangular matrix.
func ExampleTranspose() {
	m, err := matrix.FromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	tr, err := matrix.Transpose[int](m)
	if err != nil {
		fmt.Println("transpose:", err)
		return
	}
	fmt.Print(tr)

	// Output:
	// [ 1, 4 ]
	// [ 2, 5 ]
	// [ 3, 6 ]
}

// ExampleTransform applies a rotation-free identity transform to a vector.
func ExampleTransform() {
	id, err := matrix.Identity[float64](3)
	if err != nil {
		fmt.Println("identity:", err)
		return
	}
	v := vector.Vec3(1.0, 2.0, 3.0)

	out, err := matrix.Transform[float64](id, v)
	if err != nil {
		fmt.Println("transform:", err)
		return
	}
	out.Print()

	// Output:
	// (1, 2, 3)
}
