/*
Package scalar provides closed sum types (Variant2, Variant4) for selecting
between statically distinct numeric representations at runtime, plus a small
SI-suffix magnitude formatter.

Variants are value types; the zero value holds the first alternative, zero
valued. Exactly one alternative is active at any time and inactive slots are
always zeroed, so a variant of comparable alternatives can be compared with
'=='.

The canonical use is ScalarTag, which names one of float32, complex64, float64
or complex128 without carrying a value:

	tag, err := ParseScalarTag("complex<double>")
	if err != nil {
		return err
	}
	size := Match4(tag, Cases4(
		func(Tag[float32]) int { return 4 },
		func(Tag[complex64]) int { return 8 },
		func(Tag[float64]) int { return 8 },
		func(Tag[complex128]) int { return 16 },
	))

Visitors must handle every alternative; a visitor missing a branch does not
compile. Type queries are available when exhaustive dispatch is not needed:

	Is[T](v Sum) bool
	Get[T](v Sum) (out T, err error)
	MustGet[T](v Sum) T
	Ref[T](v MutableSum) (*T, error)
	Assign[T](v MutableSum, x T) error

Get, Ref and Assign never reinterpret a value as the wrong type; they return
a *TypeMismatchError instead.

Containers of scalars are wrapped with the Real and Complex builders, which
take the container instantiated at each element type:

	type Images = Complex[Image[float32], Image[complex64], Image[float64], Image[complex128]]

WithSuffix formats a magnitude with a k, M or G suffix:

	WithSuffix(14226)   // 14.2k
	WithSuffix(999700)  // 1.00M

*/
package scalar
