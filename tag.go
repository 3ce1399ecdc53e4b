package scalar

import (
	"fmt"
	"reflect"
)

// Tag names the type T without holding a value of it. It has zero size.
type Tag[T any] struct{}

func (Tag[T]) String() string { return reflect.TypeFor[T]().String() }

// Real is a variant over a container instantiated with float32 and float64
// elements, in that order.
type Real[F32, F64 any] = Variant2[F32, F64]

// Complex is a variant over a container instantiated with float32,
// complex64, float64 and complex128 elements, in that order.
type Complex[F32, C64, F64, C128 any] = Variant4[F32, C64, F64, C128]

// ScalarTag names one of the four scalar element types. Its slot order
// matches Kind.
type ScalarTag = Complex[Tag[float32], Tag[complex64], Tag[float64], Tag[complex128]]

// RealTag names one of the two real element types.
type RealTag = Real[Tag[float32], Tag[float64]]

// ScalarTagOf returns the tag for k. It panics if k is not a valid Kind.
func ScalarTagOf(k Kind) (t ScalarTag) {
	switch k {
	case Float32:
		t.SetA(Tag[float32]{})
	case Complex64:
		t.SetB(Tag[complex64]{})
	case Float64:
		t.SetC(Tag[float64]{})
	case Complex128:
		t.SetD(Tag[complex128]{})
	default:
		panic(fmt.Errorf("scalar: invalid kind %d", uint8(k)))
	}
	return t
}

// ScalarTagFor returns the tag for the element type T. Named types are
// tagged by their underlying type.
func ScalarTagFor[T Scalar]() ScalarTag {
	return ScalarTagOf(KindFor[T]())
}

// ParseScalarTag parses a kind name as accepted by ParseKind.
func ParseScalarTag(s string) (t ScalarTag, err error) {
	k, err := ParseKind(s)
	if err != nil {
		return t, err
	}
	return ScalarTagOf(k), nil
}

// TagKind returns the Kind named by t.
func TagKind(t ScalarTag) Kind {
	return Kind(t.Index())
}

// ToReal returns the tag for the real component type of t, so complex64
// maps to float32 and complex128 to float64.
func ToReal(t ScalarTag) (r RealTag) {
	switch TagKind(t).Real() {
	case Float32:
		r.SetA(Tag[float32]{})
	case Float64:
		r.SetB(Tag[float64]{})
	}
	return r
}

// RealTagKind returns the Kind named by t.
func RealTagKind(t RealTag) Kind {
	return Match2(t, Cases2(
		func(Tag[float32]) Kind { return Float32 },
		func(Tag[float64]) Kind { return Float64 },
	))
}
