//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/markkurossi/bigint"
	"github.com/markkurossi/bigint/timing"
	"github.com/markkurossi/bigint/utils"
	"github.com/markkurossi/text/superscript"
)

func main() {
	params := utils.NewParams()

	fVerbose := flag.Bool("v", false, "Verbose output")
	fDiagnostics := flag.Bool("d", false, "Diagnostics output")
	fLimit := flag.Int("k", params.KaratsubaLimit,
		"Karatsuba schoolbook limit in digits")
	fFactorial := flag.Int64("f", params.FactorialLimit,
		"Largest accepted factorial argument")
	fSeed := flag.Uint64("seed", params.Seed, "Verify operand seed")
	fRounds := flag.Int("n", params.VerifyRounds, "Verify rounds")
	fDigits := flag.Int("digits", params.VerifyDigits,
		"Verify operand maximum length in digits")
	fTiming := flag.Bool("t", false, "Print timing report")
	flag.Usage = usage
	flag.Parse()

	params.Verbose = *fVerbose
	params.Diagnostics = *fDiagnostics
	params.KaratsubaLimit = *fLimit
	params.FactorialLimit = *fFactorial
	params.Seed = *fSeed
	params.VerifyRounds = *fRounds
	params.VerifyDigits = *fDigits

	log := utils.NewLogger(os.Stderr, "bigcalc", params)
	calc := &Calculator{
		params: params,
		log:    log,
		out:    os.Stdout,
	}
	if *fTiming {
		calc.timing = timing.NewTiming()
	}

	args := flag.Args()
	cmd := "demo"
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	var err error
	switch cmd {
	case "demo":
		err = calc.Demo()

	case "eval":
		if len(args) != 2 && len(args) != 3 {
			usage()
			os.Exit(2)
		}
		var r bigint.Int
		r, err = calc.Eval(args...)
		if err == nil {
			fmt.Fprintf(calc.out, "%v\n", r)
		}

	case "verify":
		err = calc.Verify()

	default:
		log.Errorf("unknown command '%s'", cmd)
		usage()
		os.Exit(2)
	}
	if calc.timing != nil {
		calc.timing.Print(calc.out)
	}
	if err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		`Usage: bigcalc [options] [command]

Commands:
  demo            print the sample results (default)
  eval A OP B     evaluate A OP B, OP is one of + - s+ s- * k / %% ^
  eval A !        evaluate the factorial of A
  verify          cross-check random operands against math/big

Options:
`)
	flag.PrintDefaults()
}

// Calculator evaluates arithmetic operations and records their
// timing.
type Calculator struct {
	params *utils.Params
	log    *utils.Logger
	out    io.Writer
	timing *timing.Timing
}

func (c *Calculator) sample(label string, result bigint.Int,
	operands ...bigint.Int) *timing.Sample {

	if c.timing == nil {
		return nil
	}
	var digits int
	for _, op := range operands {
		digits += op.Len()
	}
	return c.timing.Sample(label, digits, result.Len())
}

// Demo prints the sample results.
func (c *Calculator) Demo() error {
	num1 := bigint.MustParse("252435234534")
	num2 := bigint.MustParse("123456")
	exponent := 5

	mul := num1.Mul(num2)
	c.sample("Mul", mul, num1, num2)

	karatsuba := c.params.Mul(num1, num2)
	c.sample("Karatsuba", karatsuba, num1, num2)

	div, err := num1.Div(num2)
	if err != nil {
		return err
	}
	c.sample("Div", div, num1, num2)

	pow, err := num1.Pow(exponent)
	if err != nil {
		return err
	}
	c.sample("Pow", pow, num1)

	hundred := bigint.New(100)
	factorial, err := hundred.Factorial()
	if err != nil {
		return err
	}
	c.sample("Factorial", factorial, hundred)

	fmt.Fprintf(c.out, "Multiplication (standard): %v\n", mul)
	fmt.Fprintf(c.out, "Karatsuba Multiplication: %v\n", karatsuba)
	fmt.Fprintf(c.out, "Division: %v\n", div)
	fmt.Fprintf(c.out, "Power (num1%s): %v\n",
		superscript.Itoa(exponent), pow)
	fmt.Fprintf(c.out, "Factorial (100!): %v\n", factorial)

	return nil
}
