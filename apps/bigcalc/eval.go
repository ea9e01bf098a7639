//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"strconv"

	"github.com/markkurossi/bigint"
	"github.com/markkurossi/text/superscript"
)

// Eval evaluates the expression args. The args are either the
// operands and operator `A OP B` or the factorial `A !`.
func (c *Calculator) Eval(args ...string) (bigint.Int, error) {
	if len(args) < 2 || len(args) > 3 {
		return bigint.Zero, c.log.Errorf("invalid expression %q", args)
	}
	x, err := bigint.Parse(args[0])
	if err != nil {
		return bigint.Zero, err
	}
	if len(args) == 2 {
		if args[1] != "!" {
			return bigint.Zero, c.log.Errorf("unknown unary operator '%s'",
				args[1])
		}
		return c.factorial(x)
	}
	op := args[1]

	if op == "^" {
		e, err := strconv.Atoi(args[2])
		if err != nil {
			return bigint.Zero, fmt.Errorf("invalid exponent '%s': %w",
				args[2], bigint.ErrSyntax)
		}
		c.log.Verbosef("%v%s", x, superscript.Itoa(e))
		r, err := x.Pow(e)
		if err != nil {
			return bigint.Zero, err
		}
		c.sample("Pow", r, x)
		return r, nil
	}

	y, err := bigint.Parse(args[2])
	if err != nil {
		return bigint.Zero, err
	}
	c.log.Verbosef("%v %s %v", x, op, y)

	var r bigint.Int
	var label string

	switch op {
	case "+":
		label = "Add"
		r = x.Add(y)
	case "-":
		label = "Sub"
		if x.Abs().Cmp(y.Abs()) < 0 {
			return bigint.Zero, fmt.Errorf("%v - %v: %w",
				x.Abs(), y.Abs(), bigint.ErrUnderflow)
		}
		r = x.Sub(y)
	case "s+":
		label = "AddSigned"
		r = x.AddSigned(y)
	case "s-":
		label = "SubSigned"
		r = x.SubSigned(y)
	case "*":
		label = "Mul"
		r = x.Mul(y)
	case "k":
		label = "Karatsuba"
		r = c.params.Mul(x, y)
	case "/":
		label = "Div"
		r, err = x.Div(y)
	case "%":
		label = "Rem"
		_, r, err = x.QuoRem(y)
	default:
		return bigint.Zero, c.log.Errorf("unknown operator '%s'", op)
	}
	if err != nil {
		return bigint.Zero, err
	}
	c.sample(label, r, x, y)

	return r, nil
}

func (c *Calculator) factorial(x bigint.Int) (bigint.Int, error) {
	if v, ok := x.Int64(); !ok || v > c.params.FactorialLimit {
		return bigint.Zero, fmt.Errorf("factorial argument %v exceeds limit %d",
			x, c.params.FactorialLimit)
	}
	c.log.Verbosef("%v!", x)
	r, err := x.Factorial()
	if err != nil {
		return bigint.Zero, err
	}
	c.sample("Factorial", r, x)
	return r, nil
}
