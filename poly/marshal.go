package poly

import (
	"math/rand"
	"reflect"

	"github.com/renproject/surge"
)

// Every coefficient is marshalled as a 64 bit value: int64 for signed integer
// types, uint64 for unsigned integer types and float64 for floating point
// types.
const coefficientSize = surge.SizeHintU64

func marshalCoefficient[T Number](c T, buf []byte, rem int) ([]byte, int, error) {
	switch reflect.ValueOf(c).Kind() {
	case reflect.Float32, reflect.Float64:
		return surge.Marshal(float64(c), buf, rem)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return surge.Marshal(uint64(c), buf, rem)
	default:
		return surge.Marshal(int64(c), buf, rem)
	}
}

func unmarshalCoefficient[T Number](c *T, buf []byte, rem int) ([]byte, int, error) {
	var err error
	switch reflect.ValueOf(*c).Kind() {
	case reflect.Float32, reflect.Float64:
		var f float64
		buf, rem, err = surge.Unmarshal(&f, buf, rem)
		*c = T(f)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var u uint64
		buf, rem, err = surge.Unmarshal(&u, buf, rem)
		*c = T(u)
	default:
		var i int64
		buf, rem, err = surge.Unmarshal(&i, buf, rem)
		*c = T(i)
	}
	return buf, rem, err
}

// Generate implements the quick.Generator interface. The generated polynomial
// has small integer valued coefficients and is reduced.
func (p Poly[T]) Generate(r *rand.Rand, size int) reflect.Value {
	poly := make(Poly[T], size+1)
	for i := range poly {
		poly[i] = T(r.Intn(201))
	}
	poly.Reduce()
	return reflect.ValueOf(poly)
}

// SizeHint implements the surge.SizeHinter interface.
func (p Poly[T]) SizeHint() int {
	return surge.SizeHintU32 + coefficientSize*len(p)
}

// Marshal implements the surge.Marshaler interface.
func (p Poly[T]) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.MarshalLen(uint32(len(p)), buf, rem)
	if err != nil {
		return buf, rem, err
	}
	for _, c := range p {
		buf, rem, err = marshalCoefficient(c, buf, rem)
		if err != nil {
			return buf, rem, err
		}
	}
	return buf, rem, nil
}

// Unmarshal implements the surge.Unmarshaler interface. The decoded polynomial
// is reduced.
func (p *Poly[T]) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	var l uint32
	buf, rem, err := surge.UnmarshalLen(&l, coefficientSize, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	if cap(*p) < int(l) {
		*p = make(Poly[T], l)
	} else {
		*p = (*p)[:l]
	}
	for i := range *p {
		buf, rem, err = unmarshalCoefficient(&(*p)[i], buf, rem)
		if err != nil {
			return buf, rem, err
		}
	}
	p.Reduce()
	return buf, rem, nil
}

// Generate implements the quick.Generator interface. The generated
// interpolator has at least one basis polynomial.
func (interp Interpolator[T]) Generate(r *rand.Rand, size int) reflect.Value {
	n := r.Intn(max(size, 1)) + 1
	m := size / (n + 1)
	basis := make([]Poly[T], n)
	for i := range basis {
		basis[i] = Poly[T]{}.Generate(r, m).Interface().(Poly[T])
	}
	return reflect.ValueOf(Interpolator[T]{basis: basis})
}

// SizeHint implements the surge.SizeHinter interface.
func (interp Interpolator[T]) SizeHint() int { return surge.SizeHint(interp.basis) }

// Marshal implements the surge.Marshaler interface.
func (interp Interpolator[T]) Marshal(buf []byte, rem int) ([]byte, int, error) {
	return surge.Marshal(interp.basis, buf, rem)
}

// Unmarshal implements the surge.Unmarshaler interface.
func (interp *Interpolator[T]) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	return surge.Unmarshal(&interp.basis, buf, rem)
}
