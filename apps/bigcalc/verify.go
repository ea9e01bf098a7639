//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"math/big"
	"time"

	"github.com/markkurossi/bigint"
	"github.com/markkurossi/bigint/prg"
)

// Verify cross-checks the arithmetic operations on random operands
// against math/big.
func (c *Calculator) Verify() error {
	r, err := prg.NewReader(c.params.Seed)
	if err != nil {
		return err
	}
	maxDigits := max(c.params.VerifyDigits, 1)

	var failures int
	for round := 0; round < c.params.VerifyRounds; round++ {
		x := bigint.MustParse(r.Signed(1 + r.Intn(min(maxDigits, 256))))
		y := bigint.MustParse(r.Signed(1 + r.Intn(min(maxDigits, 256))))

		c.log.Debugf("round %d: x=%v, y=%v", round, x, y)

		if err := c.verifyRound(round, x, y); err != nil {
			c.log.Warningf("round %d: %s", round, err)
			failures++
		}
	}
	fmt.Fprintf(c.out, "verify: %d rounds, %d failures\n",
		c.params.VerifyRounds, failures)
	if failures > 0 {
		return fmt.Errorf("verify failed: %d failures", failures)
	}
	return nil
}

func (c *Calculator) verifyRound(round int, x, y bigint.Int) error {
	mul := x.Mul(y)
	tMul := time.Now()

	karatsuba := c.params.Mul(x, y)
	tKaratsuba := time.Now()

	sum := x.AddSigned(y)
	tSum := time.Now()

	// The dividend is the longer and the divisor the shorter operand.
	n, d := x, y
	if n.Len() < d.Len() {
		n, d = d, n
	}
	var q, rem bigint.Int
	var err error
	if !d.IsZero() {
		q, rem, err = n.QuoRem(d)
		if err != nil {
			return err
		}
	}
	tQuoRem := time.Now()

	bx := x.Big()
	by := y.Big()
	eMul := new(big.Int).Mul(bx, by)
	eSum := new(big.Int).Add(bx, by)
	var eq, er *big.Int
	if !d.IsZero() {
		eq, er = new(big.Int).QuoRem(n.Big(), d.Big(), new(big.Int))
	}
	tOracle := time.Now()

	sample := c.sample(fmt.Sprintf("Round %d", round), mul, x, y)
	if sample != nil {
		sample.SubSample("schoolbook", tMul)
		sample.SubSample("karatsuba", tKaratsuba)
		sample.SubSample("signed add", tSum)
		sample.SubSample("quorem", tQuoRem)
		sample.SubSample("oracle", tOracle)
	}

	if !mul.Equal(karatsuba) {
		return fmt.Errorf("%v*%v: schoolbook %v, karatsuba %v",
			x, y, mul, karatsuba)
	}
	if mul.String() != eMul.String() {
		return fmt.Errorf("%v*%v=%v, expected %v", x, y, mul, eMul)
	}
	if sum.String() != eSum.String() {
		return fmt.Errorf("%v+%v=%v, expected %v", x, y, sum, eSum)
	}
	if d.IsZero() {
		return nil
	}
	if !q.Mul(d).AddSigned(rem).Equal(n) {
		return fmt.Errorf("%v/%v: %v*%v+%v != %v", n, d, q, d, rem, n)
	}
	if q.String() != eq.String() || rem.String() != er.String() {
		return fmt.Errorf("%v/%v=%v,%v, expected %v,%v",
			n, d, q, rem, eq, er)
	}
	return nil
}
