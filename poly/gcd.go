package poly

// GCD computes a greatest common divisor of `u` and `v` with the Euclidean
// algorithm (Stevin, 1585): starting from (m, n) = (u, v), the pair is
// replaced by (n, m mod n) until n is the zero polynomial, and m is returned.
//
// Every remainder has degree strictly less than its divisor, so the loop
// terminates after at most deg(v) + 1 iterations. GCD(u, 0) is u.
//
// The result is only determined up to a scalar factor. Over integer
// coefficients each remainder step truncates, and the result is a pseudo-GCD
// that is correct at most up to a unit or content factor.
func GCD[T Number](u, v Poly[T], opts ...Option[T]) (Poly[T], error) {
	cfg := newConfig(opts)

	m, n := u.Clone(), v.Clone()
	for i := 0; !n.IsZero(); i++ {
		if cfg.euclidTracer != nil {
			cfg.euclidTracer(i, m, n)
		}

		t, err := Rem(m, n, opts...)
		if err != nil {
			return nil, err
		}
		m, n = n, t
	}
	return m, nil
}

// MonicGCD computes GCD and then scales it so that its leading coefficient is
// one. The zero polynomial is returned unchanged. This normalisation is only
// meaningful for floating point coefficients; for integer coefficients the
// scaling truncates.
func MonicGCD[T Number](u, v Poly[T], opts ...Option[T]) (Poly[T], error) {
	g, err := GCD(u, v, opts...)
	if err != nil || g.IsZero() {
		return g, err
	}
	if err := g.ScalarDiv(g, g.LeadingCoefficient()); err != nil {
		return nil, err
	}
	return g, nil
}
