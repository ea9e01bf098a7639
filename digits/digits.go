//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package digits implements unsigned arithmetic on decimal digit
// strings. The strings hold the most significant digit first. The
// functions accept inputs with leading zeros and always return
// normalized results: no leading zeros and "0" for zero.
package digits

import (
	"fmt"
	"strings"
)

// Zero is the normalized representation of zero.
const Zero = "0"

// Valid tests if s is a non-empty string of decimal digits.
func Valid(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Normalize strips the leading zeros of s. The empty string
// normalizes to Zero.
func Normalize(s string) string {
	var i int
	for i = 0; i+1 < len(s) && s[i] == '0'; i++ {
	}
	if i >= len(s) {
		return Zero
	}
	return s[i:]
}

// IsZero tests if the normalized s is zero.
func IsZero(s string) bool {
	return s == Zero
}

// Cmp compares the normalized a and b and returns -1, 0, 1 if a is
// smaller, equal, or greater than b.
func Cmp(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// Shift returns a*10^n.
func Shift(a string, n int) string {
	a = Normalize(a)
	if n <= 0 || a == Zero {
		return a
	}
	return a + strings.Repeat("0", n)
}

// Add returns a+b.
func Add(a, b string) string {
	a = Normalize(a)
	b = Normalize(b)
	result := make([]byte, 0, max(len(a), len(b))+1)

	var carry byte
	i := len(a) - 1
	j := len(b) - 1
	for i >= 0 || j >= 0 || carry != 0 {
		sum := carry
		if i >= 0 {
			sum += a[i] - '0'
			i--
		}
		if j >= 0 {
			sum += b[j] - '0'
			j--
		}
		result = append(result, sum%10+'0')
		carry = sum / 10
	}
	reverse(result)

	return Normalize(string(result))
}

// Sub returns a-b. The minuend a must be greater than or equal to the
// subtrahend b. The function does not detect an underflow beyond
// panicking when the borrow runs past the most significant digit.
func Sub(a, b string) string {
	a = Normalize(a)
	b = Normalize(b)
	result := make([]byte, 0, len(a))

	var borrow int
	i := len(a) - 1
	j := len(b) - 1
	for i >= 0 || j >= 0 || borrow != 0 {
		if i < 0 {
			panic(fmt.Sprintf("digits.Sub: %s < %s", a, b))
		}
		diff := int(a[i]-'0') - borrow
		i--
		if j >= 0 {
			diff -= int(b[j] - '0')
			j--
		}
		if diff < 0 {
			diff += 10
			borrow = 1
		} else {
			borrow = 0
		}
		result = append(result, byte(diff)+'0')
	}
	reverse(result)

	return Normalize(string(result))
}

// Mul returns a*b. The function implements the schoolbook
// multiplication with O(len(a)*len(b)) digit multiplications.
func Mul(a, b string) string {
	a = Normalize(a)
	b = Normalize(b)
	if a == Zero || b == Zero {
		return Zero
	}

	buf := make([]int, len(a)+len(b))
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			sum := int(a[i]-'0')*int(b[j]-'0') + buf[i+j+1]
			buf[i+j+1] = sum % 10
			buf[i+j] += sum / 10
		}
	}

	result := make([]byte, 0, len(buf))
	for _, d := range buf {
		if len(result) == 0 && d == 0 {
			continue
		}
		result = append(result, byte(d)+'0')
	}
	if len(result) == 0 {
		return Zero
	}
	return string(result)
}

// Karatsuba returns x*y, computed with the Karatsuba algorithm
// (https://en.wikipedia.org/wiki/Karatsuba_algorithm). Operands with
// at most limit digits are multiplied with Mul. Limit values below 1
// are treated as 1 so that the recursion ends on single digit
// operands.
func Karatsuba(x, y string, limit int) string {
	x = Normalize(x)
	y = Normalize(y)
	if x == Zero || y == Zero {
		return Zero
	}
	if limit < 1 {
		limit = 1
	}

	n := max(len(x), len(y))
	if n <= limit {
		return Mul(x, y)
	}
	n = (n + 1) / 2

	x1, x0 := split(x, n)
	y1, y0 := split(y, n)

	z2 := Karatsuba(x1, y1, limit)
	z0 := Karatsuba(x0, y0, limit)
	z1 := Karatsuba(Add(x1, x0), Add(y1, y0), limit)
	z1 = Sub(Sub(z1, z2), z0)

	result := Add(Shift(z2, 2*n), Shift(z1, n))
	return Add(result, z0)
}

// split splits a into its high digits and the low n digits.
func split(a string, n int) (high, low string) {
	if len(a) <= n {
		return Zero, a
	}
	return Normalize(a[:len(a)-n]), Normalize(a[len(a)-n:])
}

// QuoRem returns the quotient a/b and the remainder a%b. The function
// implements the long division where each quotient digit is found by
// repeated subtraction of the divisor. The divisor b must not be
// zero.
func QuoRem(a, b string) (q, r string) {
	a = Normalize(a)
	b = Normalize(b)
	if b == Zero {
		panic("digits.QuoRem: division by zero")
	}

	quotient := make([]byte, 0, len(a))
	r = Zero
	for i := 0; i < len(a); i++ {
		r = Add(Shift(r, 1), a[i:i+1])

		var count byte
		for Cmp(r, b) >= 0 {
			r = Sub(r, b)
			count++
		}
		quotient = append(quotient, count+'0')
	}

	return Normalize(string(quotient)), r
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
