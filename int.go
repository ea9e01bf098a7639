//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

import (
	"fmt"
	"strconv"

	"github.com/markkurossi/bigint/digits"
)

// DefaultKaratsubaLimit specifies the operand length in digits at or
// below which KaratsubaMul switches to the schoolbook multiplication.
const DefaultKaratsubaLimit = 1

var (
	// Zero is the integer 0.
	Zero = Int{}
	// One is the integer 1.
	One = Int{mag: "1"}
)

// Int implements an arbitrary-precision signed integer. The zero
// value is the integer 0.
type Int struct {
	mag string
	neg bool
}

// New creates a new Int with the value x.
func New(x int64) Int {
	if x >= 0 {
		return newInt(strconv.FormatUint(uint64(x), 10), false)
	}
	// -x overflows for math.MinInt64 but the uint64 conversion does
	// not.
	return newInt(strconv.FormatUint(uint64(-(x+1))+1, 10), true)
}

// Parse parses the decimal integer s. The string s may have a leading
// '-' sign followed by decimal digits.
func Parse(s string) (Int, error) {
	digs := s
	var neg bool
	if len(digs) > 0 && digs[0] == '-' {
		neg = true
		digs = digs[1:]
	}
	if !digits.Valid(digs) {
		return Zero, fmt.Errorf("bigint: parsing '%s': %w", s, ErrSyntax)
	}
	return newInt(digs, neg), nil
}

// MustParse parses the decimal integer s and panics if s is not a
// valid integer.
func MustParse(s string) Int {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}

// newInt creates a normalized Int from the magnitude digits and the
// sign.
func newInt(mag string, neg bool) Int {
	mag = digits.Normalize(mag)
	if mag == digits.Zero {
		return Zero
	}
	return Int{
		mag: mag,
		neg: neg,
	}
}

func (z Int) magnitude() string {
	if len(z.mag) == 0 {
		return digits.Zero
	}
	return z.mag
}

func (z Int) String() string {
	if z.neg {
		return "-" + z.mag
	}
	return z.magnitude()
}

// Sign returns -1, 0, 1 if z is negative, zero, or positive.
func (z Int) Sign() int {
	switch {
	case z.neg:
		return -1
	case z.IsZero():
		return 0
	default:
		return 1
	}
}

// IsZero tests if z is zero.
func (z Int) IsZero() bool {
	return z.magnitude() == digits.Zero
}

// Len returns the number of decimal digits in the magnitude of z.
func (z Int) Len() int {
	return len(z.magnitude())
}

// Abs returns the absolute value of z.
func (z Int) Abs() Int {
	return newInt(z.magnitude(), false)
}

// Neg returns -z.
func (z Int) Neg() Int {
	return newInt(z.magnitude(), !z.neg)
}

// Int64 returns the int64 value of z. The boolean result is false if
// z cannot be represented as int64.
func (z Int) Int64() (int64, bool) {
	v, err := strconv.ParseInt(z.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Equal tests if z and x are equal.
func (z Int) Equal(x Int) bool {
	return z.neg == x.neg && z.magnitude() == x.magnitude()
}

// Cmp compares z and x and returns -1, 0, 1 if z is smaller, equal,
// or greater than x.
func (z Int) Cmp(x Int) int {
	if z.neg != x.neg {
		if z.neg {
			return -1
		}
		return 1
	}
	c := digits.Cmp(z.magnitude(), x.magnitude())
	if z.neg {
		return -c
	}
	return c
}

// GreaterEqual tests if z >= x. The values are ordered by their signs
// first, then by the number of digits, and finally by comparing the
// digits. For two negative values the magnitude order is reversed so
// that -10 >= -9 is false and GreaterEqual agrees with Cmp.
func (z Int) GreaterEqual(x Int) bool {
	return z.Cmp(x) >= 0
}

// Add returns |z|+|x|. The signs of z and x are ignored and the
// result is always non-negative.
func (z Int) Add(x Int) Int {
	return newInt(digits.Add(z.magnitude(), x.magnitude()), false)
}

// Sub returns |z|-|x|. The signs of z and x are ignored and the result
// is always non-negative. The magnitude of z must be greater than or
// equal to the magnitude of x; otherwise Sub panics with ErrUnderflow.
func (z Int) Sub(x Int) Int {
	if digits.Cmp(z.magnitude(), x.magnitude()) < 0 {
		panic(fmt.Errorf("bigint: %s - %s: %w",
			z.magnitude(), x.magnitude(), ErrUnderflow))
	}
	return newInt(digits.Sub(z.magnitude(), x.magnitude()), false)
}

// AddSigned returns z+x.
func (z Int) AddSigned(x Int) Int {
	if z.neg == x.neg {
		return newInt(digits.Add(z.magnitude(), x.magnitude()), z.neg)
	}
	switch digits.Cmp(z.magnitude(), x.magnitude()) {
	case 0:
		return Zero
	case 1:
		return newInt(digits.Sub(z.magnitude(), x.magnitude()), z.neg)
	default:
		return newInt(digits.Sub(x.magnitude(), z.magnitude()), x.neg)
	}
}

// SubSigned returns z-x.
func (z Int) SubSigned(x Int) Int {
	return z.AddSigned(x.Neg())
}

// Mul returns z*x. The product is computed with the schoolbook
// multiplication.
func (z Int) Mul(x Int) Int {
	if z.IsZero() || x.IsZero() {
		return Zero
	}
	return newInt(digits.Mul(z.magnitude(), x.magnitude()), z.neg != x.neg)
}

// KaratsubaMul returns z*x. The product is computed with the
// Karatsuba algorithm using DefaultKaratsubaLimit.
func (z Int) KaratsubaMul(x Int) Int {
	return z.KaratsubaMulLimit(x, DefaultKaratsubaLimit)
}

// KaratsubaMulLimit returns z*x. The product is computed with the
// Karatsuba algorithm which switches to the schoolbook multiplication
// for operands with at most limit digits.
func (z Int) KaratsubaMulLimit(x Int, limit int) Int {
	if z.IsZero() || x.IsZero() {
		return Zero
	}
	return newInt(digits.Karatsuba(z.magnitude(), x.magnitude(), limit),
		z.neg != x.neg)
}

// Div returns the quotient z/x truncated toward zero.
func (z Int) Div(x Int) (Int, error) {
	q, _, err := z.QuoRem(x)
	return q, err
}

// QuoRem returns the quotient z/x truncated toward zero and the
// remainder z-q*x. The remainder has the sign of z.
func (z Int) QuoRem(x Int) (q, r Int, err error) {
	if x.IsZero() {
		return Zero, Zero, ErrDivisionByZero
	}
	qm, rm := digits.QuoRem(z.magnitude(), x.magnitude())
	return newInt(qm, z.neg != x.neg), newInt(rm, z.neg), nil
}

// Pow returns z**exponent. The power is computed by repeated squaring.
func (z Int) Pow(exponent int) (Int, error) {
	if exponent < 0 {
		return Zero, fmt.Errorf("bigint: %s^%d: %w",
			z, exponent, ErrNegativeExponent)
	}
	result := One
	base := z

	for exponent > 0 {
		if exponent%2 == 1 {
			result = result.Mul(base)
		}
		exponent /= 2
		if exponent > 0 {
			base = base.Mul(base)
		}
	}
	return result, nil
}

// Factorial returns z!. The factorial is computed by multiplying
// together all values from 1 up to z so its cost grows with the value
// of z.
func (z Int) Factorial() (Int, error) {
	if z.neg {
		return Zero, fmt.Errorf("bigint: %s!: %w", z, ErrNegativeFactorial)
	}
	if z.IsZero() {
		return One, nil
	}
	result := One
	counter := One

	for counter.magnitude() != z.magnitude() {
		result = result.Mul(counter)
		counter = counter.Add(One)
	}
	return result.Mul(counter), nil
}
