package poly

// Const is an immutable polynomial. Its coefficients are fixed when it is
// constructed and cannot be modified afterwards, which makes a Const safe to
// share between goroutines and to use as a package level constant.
//
// Two Consts are equal when their trimmed coefficient sequences are equal, so
// NewConst(1, 2) and NewConst(1, 2, 0, 0) are equal. The zero value is the
// zero polynomial.
type Const[T Number] struct {
	coeffs Poly[T]
}

// NewConst constructs an immutable polynomial from the given coefficients,
// ordered from the constant term upwards.
func NewConst[T Number](coeffs ...T) Const[T] {
	return Const[T]{coeffs: NewFromSlice(coeffs)}
}

// Freeze constructs an immutable copy of the given polynomial.
func Freeze[T Number](p Poly[T]) Const[T] {
	return Const[T]{coeffs: p.Clone()}
}

// Degree returns the degree of the polynomial.
func (c Const[T]) Degree() int {
	return c.coeffs.Degree()
}

// Len returns the number of coefficients, which is always Degree() + 1.
func (c Const[T]) Len() int {
	return c.Degree() + 1
}

// Coefficient returns the `i`th coefficient. Coefficients above the degree
// are zero.
func (c Const[T]) Coefficient(i int) T {
	return c.coeffs.at(i)
}

// IsZero returns true if this is the zero polynomial.
func (c Const[T]) IsZero() bool {
	return c.coeffs.IsZero()
}

// Poly returns a mutable copy of the polynomial.
func (c Const[T]) Poly() Poly[T] {
	return c.coeffs.Clone()
}

// Equal returns true if the two polynomials have the same coefficients.
func (c Const[T]) Equal(other Const[T]) bool {
	return c.coeffs.Eq(other.coeffs)
}

// String implements the Stringer interface.
func (c Const[T]) String() string {
	return c.coeffs.String()
}
