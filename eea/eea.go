package eea

import (
	"github.com/BenjaminOlsen/polynomials/poly"
)

// Stepper encapsulates the functionality of the Extended Euclidean Algorithm.
// It holds the internal state of the algorithm, and allows it to be stepped,
// and hence allows this state to be inspected at points in the algorithm
// before the canonical termination condition.
//
// At every point the state satisfies a*S() + b*T() = Rem(), where a and b are
// the polynomials given to Init. This holds exactly whenever every division is
// exact, for example when all remainders of integer inputs are monic, and up
// to rounding for floating point coefficients. A truncating integer division
// breaks it.
type Stepper[C poly.Number] struct {
	rPrev, rNext poly.Poly[C]
	sPrev, sNext poly.Poly[C]
	tPrev, tNext poly.Poly[C]
	q, r         poly.Poly[C]
	opts         []poly.Option[C]
}

// NewStepperWithCapacity constructs a new EEA algorithm object with the given
// capacity for its internal polynomials. Polynomials grow as needed, so the
// capacity only avoids reallocation. The options are passed to every
// division.
func NewStepperWithCapacity[C poly.Number](c int, opts ...poly.Option[C]) Stepper[C] {
	rPrev, rNext := poly.NewWithCapacity[C](c), poly.NewWithCapacity[C](c)
	sPrev, sNext := poly.NewWithCapacity[C](c), poly.NewWithCapacity[C](c)
	tPrev, tNext := poly.NewWithCapacity[C](c), poly.NewWithCapacity[C](c)
	q, r := poly.NewWithCapacity[C](c), poly.NewWithCapacity[C](c)

	return Stepper[C]{
		rPrev, rNext,
		sPrev, sNext,
		tPrev, tNext,
		q, r,
		opts,
	}
}

// Rem returns a reference to the current remainder term for the EEA.
func (eea *Stepper[C]) Rem() *poly.Poly[C] {
	return &eea.rNext
}

// S returns a reference to the current s term for the EEA.
func (eea *Stepper[C]) S() *poly.Poly[C] {
	return &eea.sNext
}

// T returns a reference to the current t term for the EEA.
func (eea *Stepper[C]) T() *poly.Poly[C] {
	return &eea.tNext
}

// Result returns the last non-zero remainder together with its Bezout
// coefficients. Once Step has reported termination, the remainder is a GCD of
// the inputs, and a*s + b*t = gcd.
func (eea *Stepper[C]) Result() (gcd, s, t poly.Poly[C]) {
	return eea.rPrev, eea.sPrev, eea.tPrev
}

// Init performs the initialisation of the state for the EEA for the given
// input polynomials. No steps in the algorithm are performed.
func (eea *Stepper[C]) Init(a, b poly.Poly[C]) {
	// r0 = a, r1 = b,
	eea.rPrev.Set(a)
	eea.rNext.Set(b)
	// s0 = 1, s1 = 0,
	eea.sPrev.Zero()
	*eea.sPrev.Coefficient(0) = 1
	eea.sNext.Zero()
	// t0 = 0, t1 = 1
	eea.tPrev.Zero()
	eea.tNext.Zero()
	*eea.tNext.Coefficient(0) = 1
}

// Step carries out one step of the EEA. It returns a boolean that is true when
// the state has reached the canonical termination condition (r_{k+1} = 0).
// Stepping a terminated state does nothing.
func (eea *Stepper[C]) Step() (bool, error) {
	if eea.rNext.IsZero() {
		return true, nil
	}

	if err := poly.Divide(eea.rPrev, eea.rNext, &eea.q, &eea.r, eea.opts...); err != nil {
		return false, err
	}

	eea.rPrev.Set(eea.rNext)
	eea.rNext.Set(eea.r)

	// sNext, sPrev = sPrev - q * sNext, sNext
	eea.r.Mul(eea.q, eea.sNext)
	eea.r.Sub(eea.sPrev, eea.r)
	eea.sPrev.Set(eea.sNext)
	eea.sNext.Set(eea.r)

	// tNext, tPrev = tPrev - q * tNext, tNext
	eea.r.Mul(eea.q, eea.tNext)
	eea.r.Sub(eea.tPrev, eea.r)
	eea.tPrev.Set(eea.tNext)
	eea.tNext.Set(eea.r)

	return eea.rNext.IsZero(), nil
}

// Run steps the algorithm until termination. Each step lowers the degree of
// the remainder, so at most deg(b) + 1 steps are taken.
func (eea *Stepper[C]) Run() error {
	for {
		done, err := eea.Step()
		if err != nil || done {
			return err
		}
	}
}
