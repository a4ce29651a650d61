package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/BenjaminOlsen/polynomials/poly"
	"github.com/BenjaminOlsen/polynomials/poly/polylog"
)

type binaryOp struct {
	name  string
	short string
}

// Available operations on two polynomials
var binaryOps = []binaryOp{
	{"add", "add two polynomials"},
	{"sub", "subtract the second polynomial from the first"},
	{"mul", "multiply two polynomials"},
	{"div", "divide the first polynomial by the second, printing quotient and remainder"},
	{"rem", "print the remainder of dividing the first polynomial by the second"},
	{"gcd", "compute the GCD of two polynomials with the Euclidean algorithm"},
}

type result[T poly.Number] struct {
	label string
	value poly.Poly[T]
}

func newBinaryCommand(op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   op.name + " [flags] a b",
		Short: op.short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if GetFlag(cmd, "int") {
				return runBinary(cmd, op.name, args, parseInt)
			}
			return runBinary(cmd, op.name, args, parseFloat)
		},
	}
}

func newEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval [flags] p x",
		Short: "evaluate a polynomial at a point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if GetFlag(cmd, "int") {
				return runEval(cmd, args, parseInt)
			}
			return runEval(cmd, args, parseFloat)
		},
	}
}

func runBinary[T poly.Number](cmd *cobra.Command, name string, args []string, parse func(string) (T, error)) error {
	a, err := parsePoly(args[0], parse)
	if err != nil {
		return err
	}
	b, err := parsePoly(args[1], parse)
	if err != nil {
		return err
	}

	var opts []poly.Option[T]
	if GetFlag(cmd, "verbose") {
		opts = polylog.Options[T](log.StandardLogger())
	}

	results, err := apply(name, a, b, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		if res.label != "" {
			fmt.Fprintf(out, "%s = %v\n", res.label, res.value)
		} else {
			fmt.Fprintln(out, res.value)
		}
	}
	return nil
}

func apply[T poly.Number](name string, a, b poly.Poly[T], opts []poly.Option[T]) ([]result[T], error) {
	var p poly.Poly[T]
	var err error

	switch name {
	case "add":
		p.Add(a, b)
	case "sub":
		p.Sub(a, b)
	case "mul":
		p.Mul(a, b)
	case "div":
		q, r, err := poly.DivMod(a, b, opts...)
		if err != nil {
			return nil, err
		}
		return []result[T]{{"q", q}, {"r", r}}, nil
	case "rem":
		p, err = poly.Rem(a, b, opts...)
	case "gcd":
		p, err = poly.GCD(a, b, opts...)
	default:
		return nil, fmt.Errorf("unknown operation %q", name)
	}

	if err != nil {
		return nil, err
	}
	return []result[T]{{"", p}}, nil
}

func runEval[T poly.Number](cmd *cobra.Command, args []string, parse func(string) (T, error)) error {
	p, err := parsePoly(args[0], parse)
	if err != nil {
		return err
	}
	x, err := parse(strings.TrimSpace(args[1]))
	if err != nil {
		return fmt.Errorf("invalid point %q: %w", args[1], err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), p.Evaluate(x))
	return nil
}

// parsePoly reads a comma separated list of coefficients, constant term first.
func parsePoly[T poly.Number](s string, parse func(string) (T, error)) (poly.Poly[T], error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty coefficient list")
	}

	fields := strings.Split(s, ",")
	coeffs := make([]T, len(fields))
	for i, field := range fields {
		c, err := parse(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q: %w", field, err)
		}
		coeffs[i] = c
	}
	return poly.NewFromSlice(coeffs), nil
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
