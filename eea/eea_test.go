package eea_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/BenjaminOlsen/polynomials/eea"

	"github.com/BenjaminOlsen/polynomials/poly"
	"github.com/BenjaminOlsen/polynomials/poly/polyutil"
)

// euclidChain builds a pair of polynomials whose remainder sequence is known
// in advance, by running the Euclidean algorithm backwards from a monic GCD.
// Every remainder is monic, so all of the divisions are exact over int64. The
// returned remainders start with a and b and end with the GCD.
func euclidChain(steps, maxDegree int) (a, b poly.Poly[int64], remainders []poly.Poly[int64]) {
	g := polyutil.RandomMonicPolynomial[int64](rand.Intn(maxDegree + 1))
	remainders = []poly.Poly[int64]{g}
	next := poly.Zero[int64]()

	for i := 0; i < steps; i++ {
		// The quotient of the first division may be a constant, all others
		// must raise the degree.
		degree := rand.Intn(maxDegree) + 1
		if i == steps-1 {
			degree = rand.Intn(maxDegree + 1)
		}
		q := polyutil.RandomMonicPolynomial[int64](degree)

		var prev poly.Poly[int64]
		prev.Mul(q, remainders[0])
		prev.Add(prev, next)

		next = remainders[0]
		remainders = append([]poly.Poly[int64]{prev}, remainders...)
	}

	return remainders[0], remainders[1], remainders
}

// bezoutCheck returns a*s + b*t.
func bezoutCheck(a, b, s, t poly.Poly[int64]) poly.Poly[int64] {
	var as, bt poly.Poly[int64]
	as.Mul(a, s)
	bt.Mul(b, t)
	as.Add(as, bt)
	return as
}

var _ = Describe("Extended Euclidean Algorithm", func() {
	trials := 500
	maxDegree := 5
	maxSteps := 6

	It("should compute the worked example", func() {
		// x^2 - 3x + 2 and x^2 - 4x + 3
		a, b := poly.New[int64](2, -3, 1), poly.New[int64](3, -4, 1)

		eea := NewStepperWithCapacity[int64](3)
		eea.Init(a, b)

		done, err := eea.Step()
		Expect(err).ToNot(HaveOccurred())
		Expect(done).To(BeFalse())
		Expect(eea.Rem().Eq(poly.New[int64](-1, 1))).To(BeTrue())
		Expect(eea.S().Eq(poly.New[int64](1))).To(BeTrue())
		Expect(eea.T().Eq(poly.New[int64](-1))).To(BeTrue())

		done, err = eea.Step()
		Expect(err).ToNot(HaveOccurred())
		Expect(done).To(BeTrue())
		Expect(eea.Rem().IsZero()).To(BeTrue())
		Expect(eea.S().Eq(poly.New[int64](3, -1))).To(BeTrue())
		Expect(eea.T().Eq(poly.New[int64](-2, 1))).To(BeTrue())

		gcd, s, t := eea.Result()
		Expect(gcd.Eq(poly.New[int64](-1, 1))).To(BeTrue())
		Expect(s.Eq(poly.New[int64](1))).To(BeTrue())
		Expect(t.Eq(poly.New[int64](-1))).To(BeTrue())
	})

	It("should compute Bezout coefficients for coprime polynomials", func() {
		// (x^2 + 1) * 1 + x * (-x) = 1
		eea := NewStepperWithCapacity[float64](3)
		eea.Init(poly.New(1.0, 0, 1), poly.New(0.0, 1))
		Expect(eea.Run()).To(Succeed())

		gcd, s, t := eea.Result()
		Expect(gcd.Eq(poly.New(1.0))).To(BeTrue())
		Expect(s.Eq(poly.New(1.0))).To(BeTrue())
		Expect(t.Eq(poly.New(0.0, -1))).To(BeTrue())
	})

	Specify("the Bezout identity should hold after every step", func() {
		eea := NewStepperWithCapacity[int64](maxDegree + 1)

		for i := 0; i < trials; i++ {
			steps := rand.Intn(maxSteps) + 1
			a, b, remainders := euclidChain(steps, maxDegree)
			eea.Init(a, b)

			for j := 2; j < len(remainders); j++ {
				done, err := eea.Step()
				Expect(err).ToNot(HaveOccurred())
				Expect(done).To(BeFalse())
				Expect(eea.Rem().Eq(remainders[j])).To(BeTrue())
				Expect(bezoutCheck(a, b, *eea.S(), *eea.T()).Eq(*eea.Rem())).To(BeTrue())
			}

			done, err := eea.Step()
			Expect(err).ToNot(HaveOccurred())
			Expect(done).To(BeTrue())
			Expect(eea.Rem().IsZero()).To(BeTrue())

			gcd, s, t := eea.Result()
			Expect(gcd.Eq(remainders[len(remainders)-1])).To(BeTrue())
			Expect(bezoutCheck(a, b, s, t).Eq(gcd)).To(BeTrue())
		}
	})

	It("should agree with the GCD of the poly package", func() {
		eea := NewStepperWithCapacity[int64](maxDegree + 1)

		for i := 0; i < trials; i++ {
			a, b, _ := euclidChain(rand.Intn(maxSteps)+1, maxDegree)
			eea.Init(a, b)
			Expect(eea.Run()).To(Succeed())

			expected, err := poly.GCD(a, b)
			Expect(err).ToNot(HaveOccurred())
			gcd, _, _ := eea.Result()
			Expect(gcd.Eq(expected)).To(BeTrue())
		}
	})

	It("should terminate immediately when the second polynomial is zero", func() {
		eea := NewStepperWithCapacity[int64](4)
		a := poly.New[int64](1, 2, 3)
		eea.Init(a, poly.Zero[int64]())

		done, err := eea.Step()
		Expect(err).ToNot(HaveOccurred())
		Expect(done).To(BeTrue())

		gcd, s, t := eea.Result()
		Expect(gcd.Eq(a)).To(BeTrue())
		Expect(s.Eq(poly.One[int64]())).To(BeTrue())
		Expect(t.IsZero()).To(BeTrue())
	})

	It("should not change the state when stepping after termination", func() {
		eea := NewStepperWithCapacity[int64](4)
		eea.Init(poly.New[int64](2, -3, 1), poly.New[int64](3, -4, 1))
		Expect(eea.Run()).To(Succeed())
		gcd, s, t := eea.Result()
		gcd, s, t = gcd.Clone(), s.Clone(), t.Clone()

		done, err := eea.Step()
		Expect(err).ToNot(HaveOccurred())
		Expect(done).To(BeTrue())

		gcd2, s2, t2 := eea.Result()
		Expect(gcd2.Eq(gcd)).To(BeTrue())
		Expect(s2.Eq(s)).To(BeTrue())
		Expect(t2.Eq(t)).To(BeTrue())
	})

	It("should not modify the input polynomials", func() {
		eea := NewStepperWithCapacity[int64](maxDegree + 1)

		for i := 0; i < trials; i++ {
			a, b, _ := euclidChain(rand.Intn(maxSteps)+1, maxDegree)
			aCopy, bCopy := a.Clone(), b.Clone()
			eea.Init(a, b)
			Expect(eea.Run()).To(Succeed())
			Expect(a.Eq(aCopy)).To(BeTrue())
			Expect(b.Eq(bCopy)).To(BeTrue())
		}
	})

	It("should pass the options to every division", func() {
		divisions := 0
		eea := NewStepperWithCapacity(4, poly.WithTracer(func(step poly.Step[int64]) {
			if step.K == 0 {
				divisions++
			}
		}))
		eea.Init(poly.New[int64](2, -3, 1), poly.New[int64](3, -4, 1))
		Expect(eea.Run()).To(Succeed())
		Expect(divisions).To(Equal(2))
	})
})
