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

package performance

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/jetsetilly/armfixed/curated"
	"github.com/jetsetilly/armfixed/fpu"
)

// CheckError is the pattern used for errors returned by Check().
const CheckError = "performance: %v"

// number of operands converted in a single pass of Check()
const checkOperands = 4096

// Check converts random operands with the configuration for the duration
// given in runTime. The conversion rate is written to output. Profiles are
// written with the prefix "check" if profile is true.
func Check(output io.Writer, profile bool, precision int, ibits int, fbits int, unsigned bool, rounding fpu.FPRounding, runTime string) error {
	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	rnd := rand.New(rand.NewPCG(uint64(precision), uint64(ibits)))
	operands := make([]uint64, checkOperands)
	for i := range operands {
		operands[i] = rnd.Uint64() & fpu.Ones(precision)
	}

	var fp fpu.FPU

	var conversions int

	err = Profile(profile, "check", func() error {
		timesUp := make(chan bool, 1)
		time.AfterFunc(duration, func() {
			timesUp <- true
		})

		for {
			select {
			case <-timesUp:
				return nil
			default:
			}

			for _, op := range operands {
				_ = fp.FPToFixedRounding(op, precision, ibits, fbits, unsigned, rounding)
			}
			conversions += len(operands)
		}
	})
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	rate := CalcRate(conversions, duration.Seconds())
	fmt.Fprintf(output, "%.0f conversions per second (%d conversions in %.2f seconds) [%s]\n",
		rate, conversions, duration.Seconds(), fp.Status)

	return nil
}

// CalcRate takes the number of conversions and the duration (in seconds) and
// returns the conversions per second.
func CalcRate(conversions int, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(conversions) / duration
}
