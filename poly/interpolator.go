package poly

// Interpolator can perform polynomial interpolation. That is, the act of
// taking a set of points on a polynomial and finding a polynomial that passes
// through all of those points. This is encapsulated in an object because when
// interpolating multiple sets of points, all of which have the same set of
// corresponding x coordinates, each interpolation can use the same setup,
// improving efficiency.
//
// Interpolation divides by differences of indices, and so it is only exact
// for floating point coefficients (up to rounding). With integer coefficients
// the basis polynomials are truncated.
type Interpolator[T Number] struct {
	basis []Poly[T]
}

// NewInterpolator constructs a new polynomial interpolator for the given set
// of indices. The indices represent the x coordinates of the points that will
// be interpolated. That is, if the set of indices is `{x0, x1, ..., xn}`, then
// the constructed interpolator will be able to interpolate any set of points
// of the form `{(x0, y0), (x1, y1), ..., (xn, yn)}` for any `y0, y1, ..., yn`.
//
// ErrDuplicateIndex is returned if two of the indices are equal.
func NewInterpolator[T Number](indices []T) (Interpolator[T], error) {
	// Interpolation will use Lagrange polynomial interpolation

	// One basis polynomial for each index
	basis := make([]Poly[T], len(indices))
	numerator := NewWithCapacity[T](2)
	numerator.Resize(2)

	// Compute basis polynomials
	for i := range basis {
		// Each basis polynomial has degree equal to the number of indices
		// minus one
		basis[i] = NewWithCapacity[T](len(indices))
		basis[i][0] = 1
		var denominator T = 1

		for j := range indices {
			if i == j {
				continue
			}

			// Numerator x - xj
			numerator[0] = -indices[j]
			numerator[1] = 1

			// Denominator xi - xj
			diff := indices[i] - indices[j]
			if diff == 0 {
				return Interpolator[T]{}, ErrDuplicateIndex
			}
			denominator *= diff

			basis[i].Mul(basis[i], numerator)
		}

		// prod (x - xj)/(xi - xj)
		if err := basis[i].ScalarDiv(basis[i], denominator); err != nil {
			return Interpolator[T]{}, err
		}
	}

	return Interpolator[T]{basis}, nil
}

// Interpolate takes a set of values representing polynomial evaluations, and
// computes a polynomial that interpolates these values, storing the result in
// `poly`. It is assumed that the values are in corresponding order to the
// indices that were used to construct the interpolator. That is, if the
// interpolator was constructed using the set of indices `{x0, x1, ..., xn}`,
// then calling this function with the values `{y0, y1, ..., yn}` will find the
// interpolating polynomial for the set of points `{(x0, y0), (x1, y1), ...,
// (xn, yn)}`.
//
// ErrValueCount is returned if the number of values does not match the number
// of indices.
func (interp *Interpolator[T]) Interpolate(values []T, poly *Poly[T]) error {
	if len(values) != len(interp.basis) {
		return ErrValueCount
	}

	// Polynomial is a linear combination of the Lagrange basis
	poly.Zero()
	for i := range interp.basis {
		poly.AddScaled(*poly, interp.basis[i], values[i])
	}
	return nil
}

// Len returns the number of indices of the interpolator.
func (interp *Interpolator[T]) Len() int {
	return len(interp.basis)
}
