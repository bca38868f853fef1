package affine_test

import (
	"fmt"
	"math"

	"github.com/gogpu/rasterlab/affine"
)

func ExampleCompose() {
	// Scale by 2, rotate a quarter turn, then move right by 10.
	m := affine.Compose(2, 2, math.Pi/2, 10, 0)

	x, y := m.Apply(1, 0)
	fmt.Printf("(%.1f, %.1f)\n", x, y)
	// Output:
	// (10.0, 2.0)
}

func ExampleMultiply() {
	m := affine.Multiply(affine.Translation(1, 2), affine.Translation(3, 4))
	fmt.Println(m)
	// Output:
	// [1 0 0 0 1 0 4 6 1]
}
