// Package polylog adapts the tracing hooks of the poly package to a logrus
// logger, so that the steps of long division and of the Euclidean algorithm
// can be inspected without the algorithms themselves writing any output.
package polylog

import (
	"github.com/sirupsen/logrus"

	"github.com/BenjaminOlsen/polynomials/poly"
)

// Tracer returns a division tracer that logs each step at debug level.
func Tracer[T poly.Number](logger logrus.FieldLogger) poly.Tracer[T] {
	return func(step poly.Step[T]) {
		logger.WithFields(logrus.Fields{
			"k":         step.K,
			"numerator": step.Numerator,
			"leading":   step.Leading,
			"quotient":  step.Quotient,
			"residue":   step.Residue.String(),
		}).Debug("division step")
	}
}

// EuclidTracer returns a GCD tracer that logs each iteration at debug level.
func EuclidTracer[T poly.Number](logger logrus.FieldLogger) poly.EuclidTracer[T] {
	return func(iteration int, m, n poly.Poly[T]) {
		logger.WithFields(logrus.Fields{
			"iteration": iteration,
			"m":         m.String(),
			"n":         n.String(),
		}).Debug("euclid step")
	}
}

// Options returns the division options that install both tracers.
func Options[T poly.Number](logger logrus.FieldLogger) []poly.Option[T] {
	return []poly.Option[T]{
		poly.WithTracer(Tracer[T](logger)),
		poly.WithEuclidTracer(EuclidTracer[T](logger)),
	}
}
