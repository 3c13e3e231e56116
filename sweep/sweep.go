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

package sweep

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"slices"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jetsetilly/armfixed/curated"
	"github.com/jetsetilly/armfixed/fpu"
	"github.com/jetsetilly/armfixed/logger"
)

// Error patterns returned by Run()
const (
	Mismatches = "sweep: %d mismatches in %d conversions"
	Cancelled  = "sweep: cancelled: %v"
)

// the status bits compared by the sweep. Reference() only ever sets these
const comparedStatus = 0x01 | 0x10 | 0x80

// the maximum number of mismatches logged for each configuration
const mismatchLogQuota = 10

// Roundings is the list of rounding modes supported by fpu.FPToFixed()
var Roundings = []fpu.FPRounding{
	fpu.FPRoundNearest,
	fpu.FPRoundPlusInf,
	fpu.FPRoundNegInf,
	fpu.FPRoundZero,
	fpu.FPRoundNearestTieAway,
}

// Config is a single point in the conversion parameter space.
type Config struct {
	Precision int
	IBits     int
	FBits     int
	Unsigned  bool
	Rounding  fpu.FPRounding
	Control   fpu.FPCR
}

func (cfg Config) String() string {
	sign := "s"
	if cfg.Unsigned {
		sign = "u"
	}
	return fmt.Sprintf("f%d->%s%d.%d %s", cfg.Precision, sign, cfg.IBits, cfg.FBits, cfg.Rounding)
}

// Grid returns every configuration for the precision and list of integer
// widths. For each width the fraction bits are 0, 1, half the width and the
// full width. Every combination of sign and rounding mode is included.
func Grid(precision int, ibits []int, control fpu.FPCR) []Config {
	var configs []Config

	for _, ib := range ibits {
		fbits := []int{0}
		for _, fb := range []int{1, ib / 2, ib} {
			if !slices.Contains(fbits, fb) {
				fbits = append(fbits, fb)
			}
		}

		for _, fb := range fbits {
			for _, unsigned := range []bool{false, true} {
				for _, r := range Roundings {
					configs = append(configs, Config{
						Precision: precision,
						IBits:     ib,
						FBits:     fb,
						Unsigned:  unsigned,
						Rounding:  r,
						Control:   control,
					})
				}
			}
		}
	}

	return configs
}

// Operands returns the list of operands to test for the precision.
//
// Every bit pattern is returned for half-precision. For the other precisions
// a fixed list of interesting values is extended with a number of random bit
// patterns, generated from the seed.
func Operands(precision int, samples int, seed uint64) []uint64 {
	switch precision {
	case 16:
		ops := make([]uint64, 0x10000)
		for i := range ops {
			ops[i] = uint64(i)
		}
		return ops
	case 32, 64:
	default:
		panic("unsupported number of bits in sweep.Operands()")
	}

	var ops []uint64

	encode := func(v float64) uint64 {
		if precision == 32 {
			return uint64(math.Float32bits(float32(v)))
		}
		return math.Float64bits(v)
	}

	signBit := uint64(1) << (precision - 1)

	// zeroes, infinities, NaNs and the smallest and largest denormals
	if precision == 32 {
		ops = append(ops, 0x00000000, 0x7f800000, 0x7fc00000, 0x7f800001, 0x00000001, 0x007fffff, 0x00800000, 0x7f7fffff)
	} else {
		ops = append(ops, 0x0, 0x7ff0000000000000, 0x7ff8000000000000, 0x7ff0000000000001, 0x1, 0x000fffffffffffff, 0x0010000000000000, 0x7fefffffffffffff)
	}

	// powers of two near every integer boundary, the values either side of
	// them and the halfway values between
	for e := -66; e <= 66; e++ {
		p := math.Ldexp(1, e)
		ops = append(ops, encode(p), encode(p*1.5), encode(p*0.75))
		if precision == 32 {
			f := float32(p)
			ops = append(ops,
				uint64(math.Float32bits(math.Nextafter32(f, 0))),
				uint64(math.Float32bits(math.Nextafter32(f, float32(math.Inf(1))))))
		} else {
			ops = append(ops, math.Float64bits(math.Nextafter(p, 0)), math.Float64bits(math.Nextafter(p, math.Inf(1))))
		}
	}

	// small integers and halfway values
	for i := 0; i <= 300; i++ {
		ops = append(ops, encode(float64(i)), encode(float64(i)+0.5), encode(float64(i)+0.25))
	}

	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	mask := fpu.Ones(precision)
	for range samples {
		ops = append(ops, rnd.Uint64()&mask)
	}

	// every operand in both signs
	n := len(ops)
	for i := 0; i < n; i++ {
		ops = append(ops, ops[i]^signBit)
	}

	return ops
}

// Result summarises a call to Run().
type Result struct {
	Configurations int
	Conversions    int64
	Mismatches     int64
	Duration       time.Duration
}

func (res Result) String() string {
	return fmt.Sprintf("%d configurations, %d conversions, %d mismatches in %s",
		res.Configurations, res.Conversions, res.Mismatches, res.Duration.Round(time.Millisecond))
}

// Run compares fpu.FPToFixed() against Reference() for every operand and every
// configuration. Configurations are run concurrently, with no more than
// workers at once. Each concurrent conversion has its own status register.
//
// Mismatches are logged with the tag "sweep", up to a limit for each
// configuration, and a Mismatches error is returned if there are any. A
// summary is written to output on completion.
func Run(ctx context.Context, output io.Writer, configs []Config, operands []uint64, workers int) (Result, error) {
	start := time.Now()

	var conversions atomic.Int64
	var mismatches atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for _, cfg := range configs {
		g.Go(func() error {
			quota := logger.NewQuota(mismatchLogQuota)
			for _, op := range operands {
				if ctx.Err() != nil {
					return ctx.Err()
				}

				var fpsr fpu.FPSR
				r := fpu.FPToFixed(cfg.IBits, op, cfg.Precision, cfg.FBits, cfg.Unsigned, cfg.Control, cfg.Rounding, &fpsr)
				expected, expectedStatus := Reference(cfg.IBits, op, cfg.Precision, cfg.FBits, cfg.Unsigned, cfg.Control, cfg.Rounding)

				conversions.Add(1)
				if r != expected || fpsr.Value()&comparedStatus != expectedStatus.Value() {
					mismatches.Add(1)
					logger.Logf(quota, "sweep", "%s: %#0*x: got %#x [%s] wanted %#x [%s]",
						cfg, cfg.Precision/4, op, r, fpsr, expected, expectedStatus)
				}
			}
			return nil
		})
	}

	err := g.Wait()

	res := Result{
		Configurations: len(configs),
		Conversions:    conversions.Load(),
		Mismatches:     mismatches.Load(),
		Duration:       time.Since(start),
	}

	if output != nil {
		fmt.Fprintf(output, "%s\n", res)
	}

	if err != nil {
		return res, curated.Errorf(Cancelled, err)
	}
	if res.Mismatches > 0 {
		return res, curated.Errorf(Mismatches, res.Mismatches, res.Conversions)
	}

	return res, nil
}
