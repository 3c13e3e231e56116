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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/armfixed/curated"
	"github.com/jetsetilly/armfixed/fpu"
	"github.com/jetsetilly/armfixed/performance"
	"github.com/jetsetilly/armfixed/test"
)

func TestCalcRate(t *testing.T) {
	test.ExpectEquality(t, performance.CalcRate(1000, 2.0), 500.0)
	test.ExpectEquality(t, performance.CalcRate(1000, 0.0), 0.0)
}

func TestProfile(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "test")

	var ran bool
	err := performance.Profile(true, prefix, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(prefix + ".cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(prefix + ".mem.profile")
	test.ExpectSuccess(t, err)
}

func TestNoProfile(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "test")

	err := performance.Profile(false, prefix, func() error {
		return nil
	})
	test.ExpectSuccess(t, err)

	_, err = os.Stat(prefix + ".cpu.profile")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	tw := &test.CompareWriter{}

	err := performance.Check(tw, false, 32, 32, 0, false, fpu.FPRoundNearest, "50ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "conversions per second"), tw)

	err = performance.Check(tw, false, 32, 32, 0, false, fpu.FPRoundNearest, "soon")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, performance.CheckError))
}
