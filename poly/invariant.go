package poly

import "fmt"

// IsCanonical reports whether the polynomial is in canonical form: it is the
// one element zero polynomial, or its last stored coefficient is non-zero.
func (p Poly[T]) IsCanonical() bool {
	return len(p) == 1 || (len(p) > 1 && p[len(p)-1] != 0)
}

// assertCanonical panics when built with the polydebug tag and the polynomial
// is not canonical. Otherwise it compiles to nothing.
func (p Poly[T]) assertCanonical(op string) {
	if debugInvariants && !p.IsCanonical() {
		panic(fmt.Errorf("%s: %w: %v", op, ErrNotCanonical, []T(p)))
	}
}
