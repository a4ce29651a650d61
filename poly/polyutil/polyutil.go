package polyutil

import (
	"math"
	"math/rand"

	"github.com/BenjaminOlsen/polynomials/poly"
)

// MaxCoefficient bounds the absolute value of randomly generated
// coefficients. It is small enough that products of random polynomials of
// moderate degree stay exactly representable in every signed coefficient type
// of at least 32 bits and in float64.
const MaxCoefficient = 100

// RandomCoefficient returns a random integer valued coefficient in the range
// [-MaxCoefficient, MaxCoefficient].
func RandomCoefficient[T poly.Number]() T {
	return T(rand.Intn(2*MaxCoefficient+1) - MaxCoefficient)
}

// RandomNonZeroCoefficient returns a random non-zero integer valued
// coefficient in the range [-MaxCoefficient, MaxCoefficient].
func RandomNonZeroCoefficient[T poly.Number]() T {
	c := RandomCoefficient[T]()
	for c == 0 {
		c = RandomCoefficient[T]()
	}
	return c
}

// SetRandomPolynomial sets the given polynomial to be a random polynomial with
// the given degree.
func SetRandomPolynomial[T poly.Number](dst *poly.Poly[T], degree int) {
	if cap(*dst) < degree+1 {
		*dst = make(poly.Poly[T], degree+1)
	}

	// Make all memory available to be accessed.
	*dst = (*dst)[:cap(*dst)]

	// Fill entire memory with random values, as even memory locations
	// beyond the degree can contain non zero values in practice.
	for i := range *dst {
		(*dst)[i] = RandomCoefficient[T]()
	}

	// Ensure that the leading term is non-zero.
	(*dst)[degree] = RandomNonZeroCoefficient[T]()

	// Set degree.
	*dst = (*dst)[:degree+1]
}

// RandomPolynomial returns a new random polynomial with the given degree.
func RandomPolynomial[T poly.Number](degree int) poly.Poly[T] {
	p := make(poly.Poly[T], degree+1)
	SetRandomPolynomial(&p, degree)
	return p
}

// RandomMonicPolynomial returns a new random polynomial with the given degree
// and leading coefficient 1. Dividing by a monic polynomial with integer
// valued coefficients is exact.
func RandomMonicPolynomial[T poly.Number](degree int) poly.Poly[T] {
	p := RandomPolynomial[T](degree)
	p[degree] = 1
	return p
}

// RandomIndices returns n distinct random integer valued indices.
func RandomIndices[T poly.Number](n int) []T {
	perm := rand.Perm(4*n + 1)
	indices := make([]T, n)
	for i := range indices {
		indices[i] = T(perm[i] - 2*n)
	}
	return indices
}

// ApproxEq returns true if the two polynomials have the same degree and every
// coefficient agrees within the given tolerance, relative to the magnitude of
// the larger coefficient when that magnitude exceeds one.
func ApproxEq[T poly.Number](a, b poly.Poly[T], tol float64) bool {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		x, y := coeff(a, i), coeff(b, i)
		scale := math.Max(1, math.Max(math.Abs(x), math.Abs(y)))
		if math.Abs(x-y) > tol*scale {
			return false
		}
	}
	return true
}

func coeff[T poly.Number](p poly.Poly[T], i int) float64 {
	if i < len(p) {
		return float64(p[i])
	}
	return 0
}

// RandRange returns a random number x such that lower <= x <= upper.
func RandRange(lower, upper int) int {
	return rand.Intn(upper+1-lower) + lower
}
