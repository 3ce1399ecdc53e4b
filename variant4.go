package scalar

import (
	"fmt"
	"reflect"
)

// Variant4 holds exactly one value of type A, B, C or D. The zero value holds
// the zero A.
type Variant4[A, B, C, D any] struct {
	a A
	b B
	c C
	d D

	// idx is kept last so a variant of zero-size alternatives (see Tag) is a
	// single byte.
	idx uint8
}

func Variant4A[A, B, C, D any](a A) Variant4[A, B, C, D] { return Variant4[A, B, C, D]{a: a, idx: 0} }
func Variant4B[A, B, C, D any](b B) Variant4[A, B, C, D] { return Variant4[A, B, C, D]{b: b, idx: 1} }
func Variant4C[A, B, C, D any](c C) Variant4[A, B, C, D] { return Variant4[A, B, C, D]{c: c, idx: 2} }
func Variant4D[A, B, C, D any](d D) Variant4[A, B, C, D] { return Variant4[A, B, C, D]{d: d, idx: 3} }

func (v Variant4[A, B, C, D]) Index() int { return int(v.idx) }
func (v Variant4[A, B, C, D]) Len() int   { return 4 }

func (v Variant4[A, B, C, D]) Alternatives() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D]()}
}

func (v *Variant4[A, B, C, D]) SetA(a A) { *v = Variant4[A, B, C, D]{a: a, idx: 0} }
func (v *Variant4[A, B, C, D]) SetB(b B) { *v = Variant4[A, B, C, D]{b: b, idx: 1} }
func (v *Variant4[A, B, C, D]) SetC(c C) { *v = Variant4[A, B, C, D]{c: c, idx: 2} }
func (v *Variant4[A, B, C, D]) SetD(d D) { *v = Variant4[A, B, C, D]{d: d, idx: 3} }

func (v Variant4[A, B, C, D]) String() string {
	switch v.idx {
	case 0:
		return fmt.Sprint(v.a)
	case 1:
		return fmt.Sprint(v.b)
	case 2:
		return fmt.Sprint(v.c)
	case 3:
		return fmt.Sprint(v.d)
	}
	panic(badIndex(v.idx))
}

func (v Variant4[A, B, C, D]) held() any {
	return (&v).slot(int(v.idx))
}

func (v *Variant4[A, B, C, D]) slot(i int) any {
	switch i {
	case 0:
		return &v.a
	case 1:
		return &v.b
	case 2:
		return &v.c
	case 3:
		return &v.d
	}
	panic(badIndex(uint8(i)))
}

func (v *Variant4[A, B, C, D]) reset(i int) {
	*v = Variant4[A, B, C, D]{idx: uint8(i)}
}

// Visitor4 handles every alternative of a Variant4. A type that lacks any of
// the four methods is not a Visitor4, so a non-exhaustive visitor is a
// compile error.
type Visitor4[A, B, C, D, R any] interface {
	CaseA(A) R
	CaseB(B) R
	CaseC(C) R
	CaseD(D) R
}

// RefVisitor4 is the mutable form of Visitor4; each case receives a pointer
// into the variant's storage.
type RefVisitor4[A, B, C, D, R any] interface {
	CaseA(*A) R
	CaseB(*B) R
	CaseC(*C) R
	CaseD(*D) R
}

// Match4 calls the case of vis for the active alternative of v and returns
// its result.
func Match4[A, B, C, D, R any](v Variant4[A, B, C, D], vis Visitor4[A, B, C, D, R]) R {
	switch v.idx {
	case 0:
		return vis.CaseA(v.a)
	case 1:
		return vis.CaseB(v.b)
	case 2:
		return vis.CaseC(v.c)
	case 3:
		return vis.CaseD(v.d)
	}
	panic(badIndex(v.idx))
}

// MatchRef4 is like Match4 but passes a pointer to the active value, which
// the case may modify in place.
func MatchRef4[A, B, C, D, R any](v *Variant4[A, B, C, D], vis RefVisitor4[A, B, C, D, R]) R {
	switch v.idx {
	case 0:
		return vis.CaseA(&v.a)
	case 1:
		return vis.CaseB(&v.b)
	case 2:
		return vis.CaseC(&v.c)
	case 3:
		return vis.CaseD(&v.d)
	}
	panic(badIndex(v.idx))
}

type cases4[A, B, C, D, R any] struct {
	a func(A) R
	b func(B) R
	c func(C) R
	d func(D) R
}

func (c cases4[A, B, C, D, R]) CaseA(x A) R { return c.a(x) }
func (c cases4[A, B, C, D, R]) CaseB(x B) R { return c.b(x) }
func (c cases4[A, B, C, D, R]) CaseC(x C) R { return c.c(x) }
func (c cases4[A, B, C, D, R]) CaseD(x D) R { return c.d(x) }

// Cases4 builds a Visitor4 from one func per alternative. All funcs must be
// non-nil.
func Cases4[A, B, C, D, R any](fa func(A) R, fb func(B) R, fc func(C) R, fd func(D) R) Visitor4[A, B, C, D, R] {
	if fa == nil || fb == nil || fc == nil || fd == nil {
		panic("scalar: Cases4 requires a func for every alternative")
	}
	return cases4[A, B, C, D, R]{a: fa, b: fb, c: fc, d: fd}
}

type refCases4[A, B, C, D, R any] struct {
	a func(*A) R
	b func(*B) R
	c func(*C) R
	d func(*D) R
}

func (c refCases4[A, B, C, D, R]) CaseA(x *A) R { return c.a(x) }
func (c refCases4[A, B, C, D, R]) CaseB(x *B) R { return c.b(x) }
func (c refCases4[A, B, C, D, R]) CaseC(x *C) R { return c.c(x) }
func (c refCases4[A, B, C, D, R]) CaseD(x *D) R { return c.d(x) }

func RefCases4[A, B, C, D, R any](fa func(*A) R, fb func(*B) R, fc func(*C) R, fd func(*D) R) RefVisitor4[A, B, C, D, R] {
	if fa == nil || fb == nil || fc == nil || fd == nil {
		panic("scalar: RefCases4 requires a func for every alternative")
	}
	return refCases4[A, B, C, D, R]{a: fa, b: fb, c: fc, d: fd}
}
