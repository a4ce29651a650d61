package poly

import "errors"

var (
	// ErrDivisionByZero is returned when dividing by the zero polynomial or by
	// a zero scalar. ScalarDiv by zero is the only failing arithmetic
	// operation; the other arithmetic and comparison methods never fail.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrDuplicateIndex is returned when an interpolator is constructed from
	// indices that are not distinct.
	ErrDuplicateIndex = errors.New("duplicate interpolation index")

	// ErrValueCount is returned when the number of values given to an
	// interpolator does not match its number of indices.
	ErrValueCount = errors.New("value count does not match index count")

	// ErrNotCanonical is the panic value, wrapped with the name of the
	// operation, when a polynomial is found to not be in canonical form in a
	// build with the polydebug tag.
	ErrNotCanonical = errors.New("polynomial not in canonical form")
)
