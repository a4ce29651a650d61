package poly

// Eq returns true if the two polynomials are equal and false if they are not.
// Equality of polynomials is defined as having the same degree and equal
// coefficients up to and including that degree, so stored trailing zeros do
// not affect the result.
func (p Poly[T]) Eq(other Poly[T]) bool {
	// Short circuit if the polynomials have different degrees
	d := p.Degree()
	if d != other.Degree() {
		return false
	}

	// Otherwise check each coefficient
	for i := 0; i <= d; i++ {
		if p.at(i) != other.at(i) {
			return false
		}
	}

	return true
}

// Cmp compares two polynomials by degree first and then by leading
// coefficient, returning -1, 0 or +1. This is a degree biased partial order:
// polynomials that only differ below their leading term compare as 0 even
// though they are not Eq, and the order says nothing about the values of the
// polynomials at any point.
func (p Poly[T]) Cmp(other Poly[T]) int {
	degP, degO := p.Degree(), other.Degree()
	switch {
	case degP < degO:
		return -1
	case degP > degO:
		return 1
	}

	lcP, lcO := p.at(degP), other.at(degO)
	switch {
	case lcP < lcO:
		return -1
	case lcP > lcO:
		return 1
	default:
		return 0
	}
}

// Less reports whether p orders before other under Cmp.
func (p Poly[T]) Less(other Poly[T]) bool {
	return p.Cmp(other) < 0
}
