package poly

// Step describes one iteration of polynomial long division: the computation
// of the quotient coefficient of x^K and the cancellation of the matching
// leading term of the working dividend.
type Step[T Number] struct {
	// K is the power of x of the quotient term computed in this step.
	K int
	// Numerator is the coefficient of the working dividend that was divided.
	Numerator T
	// Leading is the leading coefficient of the divisor.
	Leading T
	// Quotient is Numerator / Leading, truncated for integer coefficients.
	Quotient T
	// Residue is a copy of the working dividend after the scaled divisor has
	// been subtracted.
	Residue Poly[T]
}

// Tracer receives the steps of a long division as they happen.
type Tracer[T Number] func(Step[T])

// EuclidTracer receives the pair of polynomials (m, n) at the start of each
// iteration of the Euclidean algorithm. The polynomials must not be modified
// or retained.
type EuclidTracer[T Number] func(iteration int, m, n Poly[T])

type config[T Number] struct {
	tracer       Tracer[T]
	euclidTracer EuclidTracer[T]
}

// Option configures the division family of operations.
type Option[T Number] func(*config[T])

// WithTracer installs a tracer that observes every step of long division.
// Without a tracer, division has no side effects.
func WithTracer[T Number](tracer Tracer[T]) Option[T] {
	return func(c *config[T]) {
		c.tracer = tracer
	}
}

// WithEuclidTracer installs a tracer that observes every iteration of GCD.
func WithEuclidTracer[T Number](tracer EuclidTracer[T]) Option[T] {
	return func(c *config[T]) {
		c.euclidTracer = tracer
	}
}

func newConfig[T Number](opts []Option[T]) config[T] {
	var c config[T]
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Divide computes the division of `a` by `b`, storing the quotient in `q` and
// the remainder in `r`. Over floating point coefficients the results satisfy
// `a = bq + r` with deg(r) < deg(b) or r = 0, up to rounding. The inputs are
// not modified, and the outputs are written only after the division has
// completed, so any of the arguments may alias each other except for `q` and
// `r`.
//
// The remainder always has degree strictly less than the degree of `b` (or is
// zero). For integer coefficients every quotient coefficient is a truncated
// division, and so `a = bq + r` need not hold; the remainder is what is left
// of `a` after subtracting the truncated multiples of `b`, restricted to the
// powers below deg(b).
//
// ErrDivisionByZero is returned, and `q` and `r` left unchanged, when `b` is
// the zero polynomial.
func Divide[T Number](a, b Poly[T], q, r *Poly[T], opts ...Option[T]) error {
	if b.IsZero() {
		return ErrDivisionByZero
	}

	// Short circuit when the division is trivial
	if a.IsZero() {
		q.Zero()
		r.Zero()
		return nil
	}
	m, n := a.Degree(), b.Degree()
	if m < n {
		r.Set(a)
		q.Zero()
		return nil
	}

	cfg := newConfig(opts)

	// u is the working dividend; each step cancels its current leading term.
	u := make(Poly[T], m+1)
	copy(u, a)
	quo := make(Poly[T], m-n+1)
	lead := b[n]

	for k := m - n; k >= 0; k-- {
		num := u[n+k]
		quo[k] = num / lead

		// u = u - q[k] x^k b
		for j := n + k; j >= k; j-- {
			u[j] -= quo[k] * b[j-k]
		}

		if cfg.tracer != nil {
			cfg.tracer(Step[T]{
				K:         k,
				Numerator: num,
				Leading:   lead,
				Quotient:  quo[k],
				Residue:   u.Coefficients(),
			})
		}
	}

	q.Set(quo)
	r.Set(u[:n])
	return nil
}

// DivMod returns the quotient and remainder of dividing `a` by `b`. See
// Divide.
func DivMod[T Number](a, b Poly[T], opts ...Option[T]) (Poly[T], Poly[T], error) {
	var q, r Poly[T]
	if err := Divide(a, b, &q, &r, opts...); err != nil {
		return nil, nil, err
	}
	return q, r, nil
}

// Quo returns the quotient of dividing `a` by `b`. See Divide.
func Quo[T Number](a, b Poly[T], opts ...Option[T]) (Poly[T], error) {
	q, _, err := DivMod(a, b, opts...)
	return q, err
}

// Rem returns the remainder of dividing `u` by `v`. See Divide.
func Rem[T Number](u, v Poly[T], opts ...Option[T]) (Poly[T], error) {
	_, r, err := DivMod(u, v, opts...)
	return r, err
}
