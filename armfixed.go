// This file is part of armfixed.
//
// armfixed is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// armfixed is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with armfixed.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/x448/float16"

	"github.com/jetsetilly/armfixed/curated"
	"github.com/jetsetilly/armfixed/fpu"
	"github.com/jetsetilly/armfixed/logger"
	"github.com/jetsetilly/armfixed/modalflag"
	"github.com/jetsetilly/armfixed/performance"
	"github.com/jetsetilly/armfixed/statsview"
	"github.com/jetsetilly/armfixed/sweep"
	"github.com/jetsetilly/armfixed/version"
)

// prefix of the environment variables that set the default flag values
const envPrefix = "ARMFIXED"

// error patterns for the command line
const (
	OperandRequired = "operand required for %s mode"
	TooManyArgs     = "too many arguments for %s mode"
	BadOperand      = "cannot use operand (%s) with a precision of %d bits"
	BadPrecision    = "unsupported precision: %d"
	BadWidth        = "unsupported number of %s bits: %d"
	BadWidthList    = "cannot parse list of integer bits: %v"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the program with the command line arguments. returns the value to
// use with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output, EnvPrefix: envPrefix}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("CONVERT", "SWEEP", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "CONVERT":
		err = convert(md, output)

	case "SWEEP":
		err = runSweep(md, output)

	case "PERFORMANCE":
		err = perform(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

func setLogEcho(output io.Writer, log bool) {
	if log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
}

func checkPrecision(precision int) error {
	switch precision {
	case 16, 32, 64:
		return nil
	}
	return curated.Errorf(BadPrecision, precision)
}

// checkConversion checks the parameters of a conversion and returns the
// rounding mode
func checkConversion(precision int, ibits int, fbits int, rounding string) (fpu.FPRounding, error) {
	if err := checkPrecision(precision); err != nil {
		return 0, err
	}
	if ibits < 1 || ibits > 64 {
		return 0, curated.Errorf(BadWidth, "integer", ibits)
	}
	if fbits < 0 || fbits > ibits {
		return 0, curated.Errorf(BadWidth, "fraction", fbits)
	}

	rmode, err := fpu.ParseRounding(rounding)
	if err != nil {
		return 0, err
	}

	// round to odd is not supported by fixed-point conversion
	if rmode == fpu.FPRoundOdd {
		return 0, curated.Errorf(fpu.UnknownRounding, rounding)
	}

	return rmode, nil
}

// parseOperand returns the bit pattern for the operand string. a string with
// the 0x prefix is a raw bit pattern. anything else is a decimal value that is
// rounded to the precision with round to nearest
func parseOperand(s string, precision int) (uint64, error) {
	s = strings.TrimSpace(s)

	if h, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		v, err := strconv.ParseUint(h, 16, 64)
		if err != nil || v > fpu.Ones(precision) {
			return 0, curated.Errorf(BadOperand, s, precision)
		}
		return v, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ParseFloat returns infinity with an error for values out of range
		if !math.IsInf(v, 0) {
			return 0, curated.Errorf(BadOperand, s, precision)
		}
	}

	switch precision {
	case 16:
		return uint64(float16.Fromfloat32(float32(v)).Bits()), nil
	case 32:
		return uint64(math.Float32bits(float32(v))), nil
	}
	return math.Float64bits(v), nil
}

// operandString returns a decimal representation of the operand
func operandString(op uint64, precision int, ahp bool) string {
	switch precision {
	case 16:
		// the all ones exponent is a normal number in the alternative format
		if ahp && (op>>10)&0x1f == 0x1f {
			v := math.Ldexp(float64(op&0x3ff|0x400), 16-10)
			if op&0x8000 != 0 {
				v = -v
			}
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
		return strconv.FormatFloat(float64(float16.Frombits(uint16(op)).Float32()), 'g', -1, 32)
	case 32:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(op))), 'g', -1, 32)
	}
	return strconv.FormatFloat(math.Float64frombits(op), 'g', -1, 64)
}

// signExtend interprets the lower ibits of v as a signed integer
func signExtend(v uint64, ibits int) int64 {
	shift := 64 - ibits
	return int64(v<<shift) >> shift
}

func convert(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	precision := md.AddInt("precision", 32, "precision of operand: 16, 32, 64")
	ibits := md.AddInt("ibits", 32, "number of bits in the fixed-point result")
	fbits := md.AddInt("fbits", 0, "number of fraction bits in the fixed-point result")
	unsigned := md.AddBool("unsigned", false, "fixed-point result is unsigned")
	rounding := md.AddString("rounding", "zero", "rounding mode: nearest, plusinf, neginf, zero, tieaway")
	fz := md.AddBool("fz", false, "flush single and double precision denormals to zero")
	fz16 := md.AddBool("fz16", false, "flush half precision denormals to zero")
	dn := md.AddBool("dn", false, "default NaN mode")
	ahp := md.AddBool("ahp", false, "alternative half-precision format")
	trap := md.AddBool("trap", false, "enable InvalidOp and Inexact traps")
	log := md.AddBool("log", false, "echo log to stdout")

	md.AdditionalHelp("operand is a decimal value or a bit pattern with the 0x prefix. use -- before\na negative decimal value")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(output, *log)

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(OperandRequired, md)
	case 1:
	default:
		return curated.Errorf(TooManyArgs, md)
	}

	rmode, err := checkConversion(*precision, *ibits, *fbits, *rounding)
	if err != nil {
		return err
	}

	op, err := parseOperand(md.GetArg(0), *precision)
	if err != nil {
		return err
	}

	var fp fpu.FPU
	fp.Control.SetFZ(*fz)
	fp.Control.SetFZ16(*fz16)
	fp.Control.SetDN(*dn)
	fp.Control.SetAHP(*ahp)
	fp.Control.SetTrapEnabled(fpu.FPExc_InvalidOp, *trap)
	fp.Control.SetTrapEnabled(fpu.FPExc_Inexact, *trap)

	// rounding modes that can be held in the control register are used
	// through the control register
	var r uint64
	if rmode <= fpu.FPRoundZero {
		fp.Control.SetRMode(rmode)
		r = fp.FPToFixed(op, *precision, *ibits, *fbits, *unsigned, false, true)
	} else {
		r = fp.FPToFixedRounding(op, *precision, *ibits, *fbits, *unsigned, rmode)
	}

	sign := "s"
	if *unsigned {
		sign = "u"
	}

	digits := (*ibits + 3) / 4
	fmt.Fprintf(output, "operand:  %#0*x (%s)\n", *precision/4, op, operandString(op, *precision, *ahp))
	fmt.Fprintf(output, "result:   %#0*x (%s%d.%d %s)\n", digits, r, sign, *ibits, *fbits, rmode)
	if *unsigned {
		fmt.Fprintf(output, "value:    %d\n", r)
	} else {
		fmt.Fprintf(output, "value:    %d\n", signExtend(r, *ibits))
	}
	if *fbits > 0 {
		v := float64(signExtend(r, *ibits))
		if *unsigned {
			v = float64(r)
		}
		fmt.Fprintf(output, "fixed:    %s\n", strconv.FormatFloat(math.Ldexp(v, -*fbits), 'g', -1, 64))
	}
	fmt.Fprintf(output, "fpsr:     %s\n", fp.Status)

	return nil
}

// parseWidths parses a comma separated list of integer widths
func parseWidths(s string) ([]int, error) {
	var widths []int
	for _, f := range strings.Split(s, ",") {
		w, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, curated.Errorf(BadWidthList, err)
		}
		if w < 1 || w > 64 {
			return nil, curated.Errorf(BadWidth, "integer", w)
		}
		widths = append(widths, w)
	}
	return widths, nil
}

func runSweep(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	precision := md.AddInt("precision", 16, "precision of operands: 16, 32, 64")
	ibits := md.AddString("ibits", "8,16,32,64", "comma separated list of fixed-point widths")
	samples := md.AddInt("samples", 10000, "number of random operands (ignored for 16 bit precision)")
	seed := md.AddInt("seed", 1, "seed for random operands")
	workers := md.AddInt("workers", 4, "number of concurrent configurations")
	fz := md.AddBool("fz", false, "flush denormals to zero")
	stats := md.AddBool("statsview", false, "run stats server")
	profile := md.AddBool("profile", false, "write cpu and memory profiles for the sweep")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(output, *log)

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(TooManyArgs, md)
	}

	if err := checkPrecision(*precision); err != nil {
		return err
	}

	widths, err := parseWidths(*ibits)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *stats {
		if statsview.Available() {
			statsview.Launch(ctx, output)
		} else {
			fmt.Fprintln(output, "! statsview not available in this build")
		}
	}

	var control fpu.FPCR
	control.SetFZ(*fz)
	control.SetFZ16(*fz)

	configs := sweep.Grid(*precision, widths, control)
	operands := sweep.Operands(*precision, *samples, uint64(*seed))

	return performance.Profile(*profile, "sweep", func() error {
		_, err := sweep.Run(ctx, output, configs, operands, *workers)
		return err
	})
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	precision := md.AddInt("precision", 32, "precision of operands: 16, 32, 64")
	ibits := md.AddInt("ibits", 32, "number of bits in the fixed-point result")
	fbits := md.AddInt("fbits", 0, "number of fraction bits in the fixed-point result")
	unsigned := md.AddBool("unsigned", false, "fixed-point result is unsigned")
	rounding := md.AddString("rounding", "zero", "rounding mode: nearest, plusinf, neginf, zero, tieaway")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "write cpu and memory profiles")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(TooManyArgs, md)
	}

	rmode, err := checkConversion(*precision, *ibits, *fbits, *rounding)
	if err != nil {
		return err
	}

	return performance.Check(output, *profile, *precision, *ibits, *fbits, *unsigned, rmode, *duration)
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
	} else {
		fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	}

	return nil
}
