package scalar

import (
	"fmt"
	"reflect"
)

// Sum is implemented by every variant in this package. It cannot be
// implemented outside it.
type Sum interface {
	// Index returns the 0-based slot of the active alternative.
	Index() int

	// Len returns the number of declared alternatives.
	Len() int

	// Alternatives returns the declared alternative types in slot order.
	Alternatives() []reflect.Type

	held() any
}

// MutableSum is implemented by pointers to variants.
type MutableSum interface {
	Sum
	slot(i int) any
	reset(i int)
}

// TypeMismatchError is returned when a variant is accessed or assigned as a
// type it does not currently hold.
type TypeMismatchError struct {
	Want reflect.Type
	Got  reflect.Type

	// NotAlternative is set when Want is not one of the declared
	// alternatives at all, rather than merely inactive.
	NotAlternative bool
}

func (e *TypeMismatchError) Error() string {
	if e.NotAlternative {
		return fmt.Sprintf("scalar: %s is not an alternative (variant holds %s)", e.Want, e.Got)
	}
	return fmt.Sprintf("scalar: type mismatch: want %s, variant holds %s", e.Want, e.Got)
}

func heldType(v Sum) reflect.Type {
	return reflect.TypeOf(v.held()).Elem()
}

// Is reports whether the active alternative of v is exactly T. Assignability
// is not enough: a variant holding an int is not Is[any].
func Is[T any](v Sum) bool {
	_, ok := v.held().(*T)
	return ok
}

// Get returns the active value of v as a T. If T is not the active
// alternative, Get returns the zero T and a *TypeMismatchError.
func Get[T any](v Sum) (out T, err error) {
	p, ok := v.held().(*T)
	if !ok {
		return out, &TypeMismatchError{Want: reflect.TypeFor[T](), Got: heldType(v)}
	}
	return *p, nil
}

// MustGet is like Get but panics with a *TypeMismatchError if T is not
// active. Use it only where the active type is already known, for example
// after a successful Is check.
func MustGet[T any](v Sum) T {
	out, err := Get[T](v)
	if err != nil {
		panic(err)
	}
	return out
}

// Ref returns a pointer to the storage of the active alternative of v. The
// pointer is invalidated by the next assignment to v.
func Ref[T any](v MutableSum) (*T, error) {
	p, ok := v.slot(v.Index()).(*T)
	if !ok {
		return nil, &TypeMismatchError{Want: reflect.TypeFor[T](), Got: heldType(v)}
	}
	return p, nil
}

// Assign replaces the active alternative of v with x. If T appears in more
// than one slot, the first is used. If T is not an alternative of v, v is
// left unchanged and a *TypeMismatchError is returned.
func Assign[T any](v MutableSum, x T) error {
	for i, n := 0, v.Len(); i < n; i++ {
		if _, ok := v.slot(i).(*T); ok {
			v.reset(i)
			*(v.slot(i).(*T)) = x
			return nil
		}
	}
	return &TypeMismatchError{Want: reflect.TypeFor[T](), Got: heldType(v), NotAlternative: true}
}

func badIndex(idx uint8) string {
	return fmt.Sprintf("scalar: corrupt discriminant %d", idx)
}
