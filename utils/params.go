//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"github.com/markkurossi/bigint"
)

// Params specify arithmetic and driver parameters.
type Params struct {
	Verbose     bool
	Diagnostics bool

	// KaratsubaLimit specifies the operand length in digits at or
	// below which the Karatsuba multiplication uses the schoolbook
	// multiplication.
	KaratsubaLimit int

	// FactorialLimit specifies the largest accepted factorial
	// argument.
	FactorialLimit int64

	// Seed specifies the seed of the random operand generator.
	Seed uint64

	// VerifyRounds specifies the number of random verification
	// rounds.
	VerifyRounds int

	// VerifyDigits specifies the maximum operand length of the random
	// verification rounds.
	VerifyDigits int
}

// NewParams returns new params object, initialized with the default
// values.
func NewParams() *Params {
	return &Params{
		KaratsubaLimit: bigint.DefaultKaratsubaLimit,
		FactorialLimit: 5000,
		Seed:           1,
		VerifyRounds:   100,
		VerifyDigits:   64,
	}
}

// Mul multiplies x and y with the Karatsuba algorithm using the
// KaratsubaLimit parameter.
func (p *Params) Mul(x, y bigint.Int) bigint.Int {
	return x.KaratsubaMulLimit(y, p.KaratsubaLimit)
}
