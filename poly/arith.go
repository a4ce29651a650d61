package poly

// ScalarMul computes the multiplication of the input polynomial by the input
// scale factor and stores the result in the caller. This function is safe for
// aliasing: the argument may be an alias of the caller.
func (p *Poly[T]) ScalarMul(a Poly[T], s T) {
	// Short circuit conditions
	if s == 0 {
		p.Zero()
		return
	}
	if s == 1 {
		p.Set(a)
		return
	}

	p.setLen(len(a))
	for i := range *p {
		(*p)[i] = a[i] * s
	}
	p.Reduce()
	p.assertCanonical("ScalarMul")
}

// ScalarDiv divides every coefficient of the input polynomial by the given
// scalar and stores the result in the caller. This function is safe for
// aliasing: the argument may be an alias of the caller.
//
// For integer coefficient types each coefficient is divided with truncation,
// so for example (3x + 4) / 2 = x + 2. ErrDivisionByZero is returned, and the
// caller left unchanged, when the scalar is zero.
func (p *Poly[T]) ScalarDiv(a Poly[T], s T) error {
	if s == 0 {
		return ErrDivisionByZero
	}

	p.setLen(len(a))
	for i := range *p {
		(*p)[i] = a[i] / s
	}
	p.Reduce()
	p.assertCanonical("ScalarDiv")
	return nil
}

// Add computes the addition of the two input polynomials and stores the result
// in the caller. This function is safe for aliasing: either (and possible
// both) of the input polynomials may be an alias of the caller. Missing terms
// of the shorter polynomial are treated as zero.
func (p *Poly[T]) Add(a, b Poly[T]) {
	p.setLen(max(len(a), len(b)))
	for i := range *p {
		(*p)[i] = a.at(i) + b.at(i)
	}

	// Account for the fact that the leading coefficients of a and b may have
	// cancelled eachother
	p.Reduce()
	p.assertCanonical("Add")
}

// AddScaled computes the addition of the first polynomial and a scaled version
// of the second polynomial and stores the result in the caller. This is
// equivalent to doing the scaling and then the addition separately, but
// avoids the intermediate polynomial. This function is safe for aliasing:
// either (and possible both) of the input polynomials may be an alias of the
// caller.
func (p *Poly[T]) AddScaled(a, b Poly[T], s T) {
	p.setLen(max(len(a), len(b)))
	for i := range *p {
		(*p)[i] = a.at(i) + s*b.at(i)
	}
	p.Reduce()
	p.assertCanonical("AddScaled")
}

// Sub subtracts the second polynomial from the first polynomial and stores the
// result in the destination polynomial. This function is safe for aliasing:
// either (and possible both) of the input polynomials may be an alias of the
// caller.
func (p *Poly[T]) Sub(a, b Poly[T]) {
	p.setLen(max(len(a), len(b)))
	for i := range *p {
		(*p)[i] = a.at(i) - b.at(i)
	}
	p.Reduce()
	p.assertCanonical("Sub")
}

// Neg computes the negation of the polynomial and stores it in the destination
// polynomial. This function is safe for aliasing: the argument may be an alias
// of the caller.
func (p *Poly[T]) Neg(a Poly[T]) {
	p.setLen(len(a))
	for i := range *p {
		(*p)[i] = -a[i]
	}
	p.Reduce()
	p.assertCanonical("Neg")
}

// Mul computes the product of the two polynomials and stores the result in the
// destination polynomial. The product is the convolution of the coefficients:
// the coefficient of x^k is the sum of a[i]*b[j] over all i+j = k.
//
// The result is always reduced, also when it is computed in place (p.Mul(p,
// b)); products of integer coefficients can overflow to zero, and so the
// leading term is not assumed to be non-zero. The product is accumulated in
// fresh memory, which makes this function safe for any aliasing, including
// the case where the caller and both arguments are the same polynomial.
func (p *Poly[T]) Mul(a, b Poly[T]) {
	// Short circuit if either polynomial is zero
	if a.IsZero() || b.IsZero() {
		p.Zero()
		return
	}

	degA, degB := a.Degree(), b.Degree()
	prod := make(Poly[T], degA+degB+1)
	for i := 0; i <= degA; i++ {
		if a[i] == 0 {
			continue
		}
		for j := 0; j <= degB; j++ {
			prod[i+j] += a[i] * b[j]
		}
	}

	*p = prod
	p.Reduce()
	p.assertCanonical("Mul")
}
