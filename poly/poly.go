package poly

import (
	"fmt"
	"iter"
	"strings"
)

// Number is the set of coefficient types a Poly can be defined over. Any type
// supporting the built in arithmetic operators and comparison against zero
// qualifies.
//
// Integer coefficient types are not a field: division truncates towards zero,
// and so operations that divide (ScalarDiv, Divide, Rem, GCD) can lose
// information. This is a property of the coefficient type and is never
// corrected by promoting to another numeric domain.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Poly represents a univariate polynomial with coefficients of type T.
//
// A Poly can be indexed into, where index `i` will be the `i`th coefficient.
// For example, the constant term is index 0.
//
// Every operation that produces a polynomial leaves it in canonical form: the
// last coefficient is non-zero, or the polynomial is exactly the one element
// slice holding zero (the zero polynomial). Writing to coefficients directly
// can break this; calling Reduce restores it.
//
// Since this type just aliases a slice, attempting to access coefficients
// outside of the length bound will panic. The nil Poly behaves as the zero
// polynomial for every read only method.
type Poly[T Number] []T

// New constructs a polynomial from the given coefficients, ordered from the
// constant term upwards. The coefficients are copied, and the result is
// reduced.
func New[T Number](coeffs ...T) Poly[T] {
	return NewFromSlice(coeffs)
}

// NewFromSlice constructs a polynomial from a given slice of coefficients,
// ordered from the constant term upwards. The slice is copied, so the caller
// is free to modify it afterwards. The result is reduced.
func NewFromSlice[T Number](coeffs []T) Poly[T] {
	p := make(Poly[T], len(coeffs), max(len(coeffs), 1))
	copy(p, coeffs)
	p.Reduce()
	p.assertCanonical("NewFromSlice")
	return p
}

// NewConstant constructs the degree 0 polynomial with the given constant
// term.
func NewConstant[T Number](c T) Poly[T] {
	return Poly[T]{c}
}

// NewFilled constructs a polynomial of the given degree where every
// coefficient is equal to `fill`. If `fill` is zero the result is the zero
// polynomial.
//
// NOTE: This function will panic if the degree is negative.
func NewFilled[T Number](degree int, fill T) Poly[T] {
	p := make(Poly[T], degree+1)
	for i := range p {
		p[i] = fill
	}
	p.Reduce()
	return p
}

// NewWithCapacity constructs a new polynomial with the given capacity. The
// polynomial will also be initialised to the zero polynomial. A capacity less
// than 1 is treated as 1.
func NewWithCapacity[T Number](c int) Poly[T] {
	p := make(Poly[T], 1, max(c, 1))
	return p
}

// Zero returns the zero polynomial.
func Zero[T Number]() Poly[T] {
	return Poly[T]{0}
}

// One returns the degree 0 polynomial with constant term 1.
func One[T Number]() Poly[T] {
	return Poly[T]{1}
}

// String implements the Stringer interface. Terms are printed from the
// highest power down, each with its power suffix, for example
// `3x^2 + 0x^1 + 1x^0`.
func (p Poly[T]) String() string {
	var b strings.Builder
	for power := p.Degree(); power >= 0; power-- {
		fmt.Fprintf(&b, "%vx^%v", p.at(power), power)
		if power > 0 {
			b.WriteString(" + ")
		}
	}
	return b.String()
}

// Degree returns the degree of the polynomial. This is the exponent of the
// highest term with non-zero coefficient. For example, 3x^2 + 2x + 1 has
// degree 2. The zero polynomial has degree 0.
//
// The degree is derived from the coefficients and is correct even if the
// polynomial has not been reduced.
func (p Poly[T]) Degree() int {
	for i := len(p) - 1; i > 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return 0
}

// Len returns the number of stored coefficients. For a reduced polynomial
// this is Degree() + 1.
func (p Poly[T]) Len() int {
	return len(p)
}

// Coefficient returns a pointer to the `i`th coefficient of the polynomial.
//
// NOTE: If `i` is not less than Len(), this function will panic.
func (p Poly[T]) Coefficient(i int) *T {
	return &p[i]
}

// LeadingCoefficient returns the coefficient of the highest non-zero term, or
// zero for the zero polynomial.
func (p Poly[T]) LeadingCoefficient() T {
	return p.at(p.Degree())
}

// Coefficients returns a copy of the stored coefficients, constant term first.
func (p Poly[T]) Coefficients() []T {
	coeffs := make([]T, len(p))
	copy(coeffs, p)
	return coeffs
}

// All returns an iterator over the stored coefficients in ascending power
// order, yielding the power together with its coefficient.
func (p Poly[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, c := range p {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the polynomial. The copy is reduced.
func (p Poly[T]) Clone() Poly[T] {
	return NewFromSlice(p)
}

// Set copies a given polynomial into the destination polynomial. Since the
// memory is copied, the argument will remain unchanged. The destination is
// reduced.
func (p *Poly[T]) Set(a Poly[T]) {
	p.setLen(len(a))
	copy(*p, a)
	p.Reduce()
	p.assertCanonical("Set")
}

// IsZero returns true if the polynomial is the zero polynomial, and false
// otherwise. Stored trailing zeros do not affect the result.
func (p Poly[T]) IsZero() bool {
	return p.Degree() == 0 && p.at(0) == 0
}

// Zero sets the polynomial to the zero polynomial (additive identity). That
// is, the polynomial of degree 0 with constant term coefficient also equal to
// 0.
func (p *Poly[T]) Zero() {
	p.setLen(1)
	(*p)[0] = 0
}

// Reduce removes the zero coefficients above the degree of the polynomial. If
// every coefficient is zero, the polynomial becomes the one element zero
// polynomial. Reduce never fails, including on a nil or empty polynomial.
func (p *Poly[T]) Reduce() {
	if len(*p) == 0 {
		*p = append((*p)[:0], 0)
		return
	}
	*p = (*p)[:p.Degree()+1]
}

// Resize sets the number of stored coefficients to exactly `n`. Newly added
// coefficients are zero. Shrinking discards the high order coefficients; the
// result is not reduced, so it is up to the caller to call Reduce if the new
// leading coefficient may be zero.
//
// NOTE: This function will panic if `n` is negative.
func (p *Poly[T]) Resize(n int) {
	old := len(*p)
	p.setLen(n)
	for i := old; i < n; i++ {
		(*p)[i] = 0
	}
}

// Evaluate computes the value of the polynomial at the given point using
// Horner's rule.
func (p Poly[T]) Evaluate(x T) T {
	d := p.Degree()
	res := p.at(d)
	for i := d - 1; i >= 0; i-- {
		res = res*x + p[i]
	}
	return res
}

// setLen sets the length of the underlying slice to `n`, allocating a new
// backing array when the capacity is too small. Coefficients that come into
// view are not cleared.
func (p *Poly[T]) setLen(n int) {
	if cap(*p) < n {
		grown := make(Poly[T], n)
		copy(grown, *p)
		*p = grown
		return
	}
	*p = (*p)[:n]
}

// at returns the `i`th coefficient, or zero when `i` is beyond the stored
// coefficients.
func (p Poly[T]) at(i int) T {
	if i < len(p) {
		return p[i]
	}
	return 0
}
