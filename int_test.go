//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

import (
	"errors"
	"math"
	"testing"
)

const (
	num1         = "252435234534"
	num2         = "123456"
	factorial20  = "2432902008176640000"
	factorial100 = "9332621544394415268169923885626670049071596826" +
		"43816214685929638952175999932299156089414639761565182862536979" +
		"20827223758251185210916864000000000000000000000000"
)

// checkInvariants verifies the normalization invariants of z.
func checkInvariants(t *testing.T, label string, z Int) {
	t.Helper()
	mag := z.magnitude()
	if len(mag) == 0 {
		t.Fatalf("%s: empty magnitude", label)
	}
	for i := 0; i < len(mag); i++ {
		if mag[i] < '0' || mag[i] > '9' {
			t.Fatalf("%s: invalid digit in %q", label, mag)
		}
	}
	if len(mag) > 1 && mag[0] == '0' {
		t.Errorf("%s: leading zero in %q", label, mag)
	}
	if mag == "0" && z.neg {
		t.Errorf("%s: negative zero", label)
	}
}

var parseTests = []struct {
	s string
	r string
}{
	{s: "0", r: "0"},
	{s: "-0", r: "0"},
	{s: "000", r: "0"},
	{s: "-000", r: "0"},
	{s: "42", r: "42"},
	{s: "-42", r: "-42"},
	{s: "007", r: "7"},
	{s: "-007", r: "-7"},
	{s: num1, r: num1},
	{s: factorial100, r: factorial100},
}

func TestParse(t *testing.T) {
	for _, test := range parseTests {
		z, err := Parse(test.s)
		if err != nil {
			t.Errorf("Parse(%q): %v", test.s, err)
			continue
		}
		checkInvariants(t, test.s, z)
		if z.String() != test.r {
			t.Errorf("Parse(%q)=%v, expected %v", test.s, z, test.r)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"", "-", "--1", "+1", "1-", "12a3", " 1", "1e9"} {
		_, err := Parse(s)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("Parse(%q): err=%v, expected %v", s, err, ErrSyntax)
		}
	}
}

func TestMustParse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustParse did not panic")
		}
	}()
	MustParse("x")
}

var newTests = []struct {
	x int64
	r string
}{
	{x: 0, r: "0"},
	{x: 1, r: "1"},
	{x: -1, r: "-1"},
	{x: 100, r: "100"},
	{x: math.MaxInt64, r: "9223372036854775807"},
	{x: math.MinInt64, r: "-9223372036854775808"},
}

func TestNew(t *testing.T) {
	for _, test := range newTests {
		z := New(test.x)
		checkInvariants(t, test.r, z)
		if z.String() != test.r {
			t.Errorf("New(%v)=%v, expected %v", test.x, z, test.r)
		}
		v, ok := z.Int64()
		if !ok || v != test.x {
			t.Errorf("New(%v).Int64()=%v,%v", test.x, v, ok)
		}
	}
}

func TestZeroValue(t *testing.T) {
	var z Int
	checkInvariants(t, "Int{}", z)
	if z.String() != "0" {
		t.Errorf("Int{}.String()=%q", z.String())
	}
	if !z.Equal(New(0)) || !z.Equal(MustParse("-0")) {
		t.Errorf("Int{} != 0")
	}
	if z.Sign() != 0 || !z.IsZero() || z.Len() != 1 {
		t.Errorf("Int{}: sign=%v, zero=%v, len=%v",
			z.Sign(), z.IsZero(), z.Len())
	}
	if r := z.Add(New(5)); r.String() != "5" {
		t.Errorf("Int{}+5=%v", r)
	}
}

func TestInt64Overflow(t *testing.T) {
	_, ok := MustParse("9223372036854775808").Int64()
	if ok {
		t.Errorf("Int64 of 2^63 succeeded")
	}
}

var greaterEqualTests = []struct {
	a string
	b string
	r bool
}{
	{a: "0", b: "0", r: true},
	{a: "1", b: "0", r: true},
	{a: "0", b: "1", r: false},
	{a: "-1", b: "0", r: false},
	{a: "0", b: "-1", r: true},
	{a: "10", b: "9", r: true},
	{a: "9", b: "10", r: false},
	{a: "123", b: "123", r: true},
	{a: "124", b: "123", r: true},
	{a: "-5", b: "3", r: false},
	{a: "3", b: "-5", r: true},
	{a: "-5", b: "-3", r: false},
	{a: "-3", b: "-5", r: true},
	{a: "-10", b: "-9", r: false},
}

func TestGreaterEqual(t *testing.T) {
	for _, test := range greaterEqualTests {
		a := MustParse(test.a)
		b := MustParse(test.b)
		if r := a.GreaterEqual(b); r != test.r {
			t.Errorf("%v>=%v=%v, expected %v", a, b, r, test.r)
		}
	}
}

var magnitudeTests = []struct {
	a   string
	b   string
	add string
	sub string
}{
	{a: "0", b: "0", add: "0", sub: "0"},
	{a: "10", b: "3", add: "13", sub: "7"},
	{a: "-10", b: "3", add: "13", sub: "7"},
	{a: "10", b: "-3", add: "13", sub: "7"},
	{a: "-10", b: "-3", add: "13", sub: "7"},
	{a: "1000", b: "1", add: "1001", sub: "999"},
	{a: "5", b: "5", add: "10", sub: "0"},
}

func TestAddSub(t *testing.T) {
	for _, test := range magnitudeTests {
		a := MustParse(test.a)
		b := MustParse(test.b)

		add := a.Add(b)
		checkInvariants(t, "add", add)
		if add.String() != test.add {
			t.Errorf("%v+%v=%v, expected %v", a, b, add, test.add)
		}
		sub := a.Sub(b)
		checkInvariants(t, "sub", sub)
		if sub.String() != test.sub {
			t.Errorf("%v-%v=%v, expected %v", a, b, sub, test.sub)
		}
	}
}

func TestSubUnderflow(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnderflow) {
			t.Errorf("3-5: recover()=%v, expected %v", r, ErrUnderflow)
		}
	}()
	New(3).Sub(New(5))
}

var signedTests = []struct {
	a int64
	b int64
}{
	{a: 0, b: 0},
	{a: 10, b: 3},
	{a: -10, b: 3},
	{a: 10, b: -3},
	{a: -10, b: -3},
	{a: 3, b: 10},
	{a: -3, b: 10},
	{a: 3, b: -10},
	{a: -3, b: -10},
	{a: 7, b: -7},
	{a: -7, b: 7},
}

func TestAddSubSigned(t *testing.T) {
	for _, test := range signedTests {
		a := New(test.a)
		b := New(test.b)

		sum := a.AddSigned(b)
		checkInvariants(t, "sum", sum)
		if sum.String() != New(test.a+test.b).String() {
			t.Errorf("%v+%v=%v, expected %v", a, b, sum, test.a+test.b)
		}
		diff := a.SubSigned(b)
		checkInvariants(t, "diff", diff)
		if diff.String() != New(test.a-test.b).String() {
			t.Errorf("%v-%v=%v, expected %v", a, b, diff, test.a-test.b)
		}
	}
}

var mulTests = []struct {
	a string
	b string
	r string
}{
	{a: "0", b: "123", r: "0"},
	{a: "-123", b: "0", r: "0"},
	{a: "0", b: "-123", r: "0"},
	{a: "7", b: "6", r: "42"},
	{a: "-7", b: "6", r: "-42"},
	{a: "7", b: "-6", r: "-42"},
	{a: "-7", b: "-6", r: "42"},
	{a: num1, b: num2, r: "31164644314629504"},
	{a: "-" + num1, b: num2, r: "-31164644314629504"},
	{a: "99999999999", b: "99999999999", r: "9999999999800000000001"},
}

func TestMul(t *testing.T) {
	for _, test := range mulTests {
		a := MustParse(test.a)
		b := MustParse(test.b)

		r := a.Mul(b)
		checkInvariants(t, "mul", r)
		if r.String() != test.r {
			t.Errorf("%v*%v=%v, expected %v", a, b, r, test.r)
		}
		k := a.KaratsubaMul(b)
		checkInvariants(t, "karatsuba", k)
		if k.String() != test.r {
			t.Errorf("Karatsuba %v*%v=%v, expected %v", a, b, k, test.r)
		}
		for _, limit := range []int{2, 5, 64} {
			k = a.KaratsubaMulLimit(b, limit)
			if k.String() != test.r {
				t.Errorf("Karatsuba/%d %v*%v=%v, expected %v",
					limit, a, b, k, test.r)
			}
		}
	}
}

var divTests = []struct {
	a string
	b string
	q string
	r string
}{
	{a: "0", b: "5", q: "0", r: "0"},
	{a: "5", b: "5", q: "1", r: "0"},
	{a: "4", b: "5", q: "0", r: "4"},
	{a: "-4", b: "5", q: "0", r: "-4"},
	{a: "100", b: "7", q: "14", r: "2"},
	{a: "-100", b: "7", q: "-14", r: "-2"},
	{a: "100", b: "-7", q: "-14", r: "2"},
	{a: "-100", b: "-7", q: "14", r: "-2"},
	{a: num1, b: num2, q: "2044738", r: "60006"},
}

func TestDiv(t *testing.T) {
	for _, test := range divTests {
		a := MustParse(test.a)
		b := MustParse(test.b)

		q, err := a.Div(b)
		if err != nil {
			t.Fatalf("%v/%v: %v", a, b, err)
		}
		checkInvariants(t, "div", q)
		if q.String() != test.q {
			t.Errorf("%v/%v=%v, expected %v", a, b, q, test.q)
		}
		q, r, err := a.QuoRem(b)
		if err != nil {
			t.Fatalf("%v/%v: %v", a, b, err)
		}
		checkInvariants(t, "rem", r)
		if q.String() != test.q || r.String() != test.r {
			t.Errorf("QuoRem(%v,%v)=%v,%v, expected %v,%v",
				a, b, q, r, test.q, test.r)
		}
		if !q.Mul(b).AddSigned(r).Equal(a) {
			t.Errorf("%v*%v+%v != %v", q, b, r, a)
		}
	}
}

func TestDivByZero(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", num1} {
		_, err := MustParse(s).Div(Zero)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%v/0: err=%v, expected %v", s, err, ErrDivisionByZero)
		}
		_, _, err = MustParse(s).QuoRem(MustParse("-0"))
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%v%%0: err=%v, expected %v", s, err, ErrDivisionByZero)
		}
	}
}

var powTests = []struct {
	x string
	e int
	r string
}{
	{x: "0", e: 0, r: "1"},
	{x: "0", e: 3, r: "0"},
	{x: "1", e: 1000, r: "1"},
	{x: "2", e: 10, r: "1024"},
	{x: "2", e: 64, r: "18446744073709551616"},
	{x: "-2", e: 3, r: "-8"},
	{x: "-2", e: 4, r: "16"},
	{x: "10", e: 20, r: "100000000000000000000"},
	{
		x: num1,
		e: 5,
		r: "1025061364566894791109409730873895280307767816805559395424",
	},
}

func TestPow(t *testing.T) {
	for _, test := range powTests {
		x := MustParse(test.x)
		r, err := x.Pow(test.e)
		if err != nil {
			t.Fatalf("%v^%v: %v", x, test.e, err)
		}
		checkInvariants(t, "pow", r)
		if r.String() != test.r {
			t.Errorf("%v^%v=%v, expected %v", x, test.e, r, test.r)
		}
	}
}

func TestPowBaseCases(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "7", "-12345", num1} {
		x := MustParse(s)
		r, err := x.Pow(0)
		if err != nil || !r.Equal(One) {
			t.Errorf("%v^0=%v,%v, expected 1", x, r, err)
		}
		r, err = x.Pow(1)
		if err != nil || !r.Equal(x) {
			t.Errorf("%v^1=%v,%v, expected %v", x, r, err, x)
		}
		_, err = x.Pow(-1)
		if !errors.Is(err, ErrNegativeExponent) {
			t.Errorf("%v^-1: err=%v, expected %v", x, err, ErrNegativeExponent)
		}
	}
}

var factorialTests = []struct {
	n int64
	r string
}{
	{n: 0, r: "1"},
	{n: 1, r: "1"},
	{n: 2, r: "2"},
	{n: 5, r: "120"},
	{n: 10, r: "3628800"},
	{n: 20, r: factorial20},
	{n: 100, r: factorial100},
}

func TestFactorial(t *testing.T) {
	for _, test := range factorialTests {
		r, err := New(test.n).Factorial()
		if err != nil {
			t.Fatalf("%v!: %v", test.n, err)
		}
		checkInvariants(t, "factorial", r)
		if r.String() != test.r {
			t.Errorf("%v!=%v, expected %v", test.n, r, test.r)
		}
	}
	r, _ := New(100).Factorial()
	if r.Len() != 158 {
		t.Errorf("100! has %v digits, expected 158", r.Len())
	}
}

func TestFactorialGrowth(t *testing.T) {
	prev := One
	for n := int64(1); n <= 30; n++ {
		r, err := New(n).Factorial()
		if err != nil {
			t.Fatalf("%v!: %v", n, err)
		}
		if !r.Equal(New(n).Mul(prev)) {
			t.Errorf("%v!=%v, expected %v*%v", n, r, n, prev)
		}
		prev = r
	}
}

func TestFactorialNegative(t *testing.T) {
	_, err := New(-3).Factorial()
	if !errors.Is(err, ErrNegativeFactorial) {
		t.Errorf("-3!: err=%v, expected %v", err, ErrNegativeFactorial)
	}
}

func TestImmutable(t *testing.T) {
	a := MustParse(num1)
	b := MustParse("-" + num2)
	a.Add(b)
	a.Sub(b)
	a.Mul(b)
	a.KaratsubaMul(b)
	a.Div(b)
	a.Pow(3)
	a.Neg()
	b.Abs()
	if a.String() != num1 || b.String() != "-"+num2 {
		t.Errorf("operands modified: a=%v, b=%v", a, b)
	}
}

func TestAbsNeg(t *testing.T) {
	if r := New(-5).Abs(); r.String() != "5" {
		t.Errorf("|-5|=%v", r)
	}
	if r := New(5).Neg(); r.String() != "-5" {
		t.Errorf("-(5)=%v", r)
	}
	if r := Zero.Neg(); r.String() != "0" || r.Sign() != 0 {
		t.Errorf("-(0)=%v", r)
	}
}
