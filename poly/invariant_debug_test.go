//go:build polydebug

package poly

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Canonical form assertions", func() {
	It("should panic with ErrNotCanonical for a non canonical polynomial", func() {
		var recovered interface{}
		func() {
			defer func() { recovered = recover() }()
			Poly[int]{1, 0}.assertCanonical("Add")
		}()

		Expect(recovered).ToNot(BeNil())
		err, ok := recovered.(error)
		Expect(ok).To(BeTrue())
		Expect(errors.Is(err, ErrNotCanonical)).To(BeTrue())
		Expect(err.Error()).To(Equal("Add: polynomial not in canonical form: [1 0]"))
	})

	It("should not panic for a canonical polynomial", func() {
		Expect(func() { Poly[int]{1, 2}.assertCanonical("Add") }).ToNot(Panic())
		Expect(func() { Poly[int]{0}.assertCanonical("Add") }).ToNot(Panic())
		Expect(func() { Poly[float64]{0, 0, 3}.assertCanonical("Mul") }).ToNot(Panic())
	})

	It("should not panic for the results of operations", func() {
		var p Poly[int8]
		Expect(func() { p.Mul(Poly[int8]{1, 16}, Poly[int8]{1, 16}) }).ToNot(Panic())
		Expect(func() { p.Sub(Poly[int8]{1, 2, 3}, Poly[int8]{0, 0, 3}) }).ToNot(Panic())
	})
})
