package scalar

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
)

// Scalar is satisfied by the element types a ScalarTag can name, and by
// named types built on them.
type Scalar interface {
	constraints.Float | constraints.Complex
}

// Kind enumerates the scalar element types. The order matches the slots of
// ScalarTag.
type Kind uint8

const (
	Float32 Kind = iota
	Complex64
	Float64
	Complex128
)

var kindNames = [...]string{
	Float32:    "float32",
	Complex64:  "complex64",
	Float64:    "float64",
	Complex128: "complex128",
}

// kindAliases holds the names used by configuration files that predate the
// Go names. Keys are lower case.
var kindAliases = map[string]Kind{
	"float":           Float32,
	"single":          Float32,
	"complex<float>":  Complex64,
	"double":          Float64,
	"complex<double>": Complex128,
}

// KindFor returns the Kind of the element type T.
func KindFor[T Scalar]() Kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return Float32
	case reflect.Complex64:
		return Complex64
	case reflect.Float64:
		return Float64
	case reflect.Complex128:
		return Complex128
	}
	panic("scalar: unreachable")
}

// ParseKind accepts the Go type names (float32, complex64, float64,
// complex128) as well as float, single, double, complex<float> and
// complex<double>. Case and surrounding space are ignored.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, kn := range kindNames {
		if name == kn {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("scalar: unknown scalar kind %q", s)
}

func (k Kind) Valid() bool { return int(k) < len(kindNames) }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Size returns the size of one element in bytes.
func (k Kind) Size() int {
	switch k {
	case Float32:
		return 4
	case Complex64, Float64:
		return 8
	case Complex128:
		return 16
	}
	panic(fmt.Errorf("scalar: invalid kind %d", uint8(k)))
}

func (k Kind) IsComplex() bool { return k == Complex64 || k == Complex128 }

// Real returns the kind of the real component of k. Real kinds are returned
// unchanged.
func (k Kind) Real() Kind {
	switch k {
	case Complex64:
		return Float32
	case Complex128:
		return Float64
	}
	return k
}

// Complex returns the complex kind with the same precision as k. Complex
// kinds are returned unchanged.
func (k Kind) Complex() Kind {
	switch k {
	case Float32:
		return Complex64
	case Float64:
		return Complex128
	}
	return k
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("scalar: invalid kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
