//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

import (
	"errors"
)

var (
	// ErrSyntax is returned when a string is not a decimal integer.
	ErrSyntax = errors.New("invalid syntax")

	// ErrDivisionByZero is returned when dividing with zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNegativeExponent is returned when raising to a negative
	// power.
	ErrNegativeExponent = errors.New("exponent must be non-negative")

	// ErrNegativeFactorial is returned for the factorial of a
	// negative value.
	ErrNegativeFactorial = errors.New("factorial of negative value")

	// ErrUnderflow is the panic value of Sub when the subtrahend
	// magnitude is greater than the minuend magnitude.
	ErrUnderflow = errors.New("subtraction underflow")
)
