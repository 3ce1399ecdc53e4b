package scalar

import (
	"fmt"
	"reflect"
)

// Variant2 holds exactly one value of type A or B. The zero value holds the
// zero A.
type Variant2[A, B any] struct {
	a   A
	b   B
	idx uint8
}

func Variant2A[A, B any](a A) Variant2[A, B] { return Variant2[A, B]{a: a, idx: 0} }
func Variant2B[A, B any](b B) Variant2[A, B] { return Variant2[A, B]{b: b, idx: 1} }

func (v Variant2[A, B]) Index() int { return int(v.idx) }
func (v Variant2[A, B]) Len() int   { return 2 }

func (v Variant2[A, B]) Alternatives() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()}
}

func (v *Variant2[A, B]) SetA(a A) { *v = Variant2[A, B]{a: a, idx: 0} }
func (v *Variant2[A, B]) SetB(b B) { *v = Variant2[A, B]{b: b, idx: 1} }

func (v Variant2[A, B]) String() string {
	switch v.idx {
	case 0:
		return fmt.Sprint(v.a)
	case 1:
		return fmt.Sprint(v.b)
	}
	panic(badIndex(v.idx))
}

func (v Variant2[A, B]) held() any {
	return (&v).slot(int(v.idx))
}

func (v *Variant2[A, B]) slot(i int) any {
	switch i {
	case 0:
		return &v.a
	case 1:
		return &v.b
	}
	panic(badIndex(uint8(i)))
}

func (v *Variant2[A, B]) reset(i int) {
	*v = Variant2[A, B]{idx: uint8(i)}
}

// Visitor2 handles both alternatives of a Variant2.
type Visitor2[A, B, R any] interface {
	CaseA(A) R
	CaseB(B) R
}

// RefVisitor2 is the mutable form of Visitor2.
type RefVisitor2[A, B, R any] interface {
	CaseA(*A) R
	CaseB(*B) R
}

func Match2[A, B, R any](v Variant2[A, B], vis Visitor2[A, B, R]) R {
	switch v.idx {
	case 0:
		return vis.CaseA(v.a)
	case 1:
		return vis.CaseB(v.b)
	}
	panic(badIndex(v.idx))
}

func MatchRef2[A, B, R any](v *Variant2[A, B], vis RefVisitor2[A, B, R]) R {
	switch v.idx {
	case 0:
		return vis.CaseA(&v.a)
	case 1:
		return vis.CaseB(&v.b)
	}
	panic(badIndex(v.idx))
}

type cases2[A, B, R any] struct {
	a func(A) R
	b func(B) R
}

func (c cases2[A, B, R]) CaseA(x A) R { return c.a(x) }
func (c cases2[A, B, R]) CaseB(x B) R { return c.b(x) }

func Cases2[A, B, R any](fa func(A) R, fb func(B) R) Visitor2[A, B, R] {
	if fa == nil || fb == nil {
		panic("scalar: Cases2 requires a func for every alternative")
	}
	return cases2[A, B, R]{a: fa, b: fb}
}

type refCases2[A, B, R any] struct {
	a func(*A) R
	b func(*B) R
}

func (c refCases2[A, B, R]) CaseA(x *A) R { return c.a(x) }
func (c refCases2[A, B, R]) CaseB(x *B) R { return c.b(x) }

func RefCases2[A, B, R any](fa func(*A) R, fb func(*B) R) RefVisitor2[A, B, R] {
	if fa == nil || fb == nil {
		panic("scalar: RefCases2 requires a func for every alternative")
	}
	return refCases2[A, B, R]{a: fa, b: fb}
}
