package scalar_test

import (
	"fmt"

	scalar "github.com/shabbyrobe/go-scalar"
)

// grid stands in for a container that a caller would wrap in Complex.
type grid[T any] struct {
	cells []T
}

type grids = scalar.Complex[grid[float32], grid[complex64], grid[float64], grid[complex128]]

func newGrid(tag scalar.ScalarTag, n int) (g grids) {
	scalar.Match4(tag, scalar.Cases4(
		func(scalar.Tag[float32]) bool { g.SetA(grid[float32]{make([]float32, n)}); return true },
		func(scalar.Tag[complex64]) bool { g.SetB(grid[complex64]{make([]complex64, n)}); return true },
		func(scalar.Tag[float64]) bool { g.SetC(grid[float64]{make([]float64, n)}); return true },
		func(scalar.Tag[complex128]) bool { g.SetD(grid[complex128]{make([]complex128, n)}); return true },
	))
	return g
}

func ExampleMatch4() {
	tag, err := scalar.ParseScalarTag("complex<double>")
	if err != nil {
		panic(err)
	}

	g := newGrid(tag, 3)
	fmt.Println(scalar.Is[grid[complex128]](g))

	cells := scalar.Match4(g, scalar.Cases4(
		func(g grid[float32]) int { return len(g.cells) },
		func(g grid[complex64]) int { return len(g.cells) },
		func(g grid[float64]) int { return len(g.cells) },
		func(g grid[complex128]) int { return len(g.cells) },
	))
	fmt.Println(cells)

	// Output:
	// true
	// 3
}

func ExampleGet() {
	v := scalar.Variant4C[float32, complex64, float64, complex128](2.5)

	f, err := scalar.Get[float64](v)
	fmt.Println(f, err)

	_, err = scalar.Get[float32](v)
	fmt.Println(err)

	// Output:
	// 2.5 <nil>
	// scalar: type mismatch: want float32, variant holds float64
}

func ExampleWithSuffix() {
	fmt.Println(scalar.WithSuffix(14226))
	fmt.Println(scalar.WithSuffix(5395984))
	fmt.Println(scalar.WithSuffix(999))
	fmt.Println(scalar.WithSuffix(999700))
	fmt.Println(scalar.WithSuffix(500))

	// Output:
	// 14.2k
	// 5.40M
	// 999
	// 1.00M
	// 500
}
