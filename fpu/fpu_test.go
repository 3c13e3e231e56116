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

package fpu_test

import (
	"testing"

	"github.com/jetsetilly/armfixed/fpu"
	"github.com/jetsetilly/armfixed/test"
)

func TestStandardFPCRValue(t *testing.T) {
	var f fpu.FPU
	f.Control.SetRMode(fpu.FPRoundPlusInf)
	f.Control.SetAHP(true)

	std := f.StandardFPCRValue()
	test.ExpectSuccess(t, std.DN())
	test.ExpectSuccess(t, std.FZ())
	test.ExpectSuccess(t, std.AHP())
	test.ExpectEquality(t, std.RMode(), fpu.FPRoundNearest)
}

func TestFPUFPToFixed(t *testing.T) {
	var f fpu.FPU

	// VCVT.S32.F32 rounds towards zero
	r := f.FPToFixed(f32(-2.7), 32, 32, 0, false, true, true)
	test.ExpectEquality(t, r, uint64(0xfffffffe))
	test.ExpectSuccess(t, f.Status.IXC())

	// VCVTR.S32.F32 uses the rounding mode in the control register
	f.Status.Clear()
	f.Control.SetRMode(fpu.FPRoundNegInf)
	r = f.FPToFixed(f32(2.7), 32, 32, 0, false, false, true)
	test.ExpectEquality(t, r, uint64(2))

	f.Control.SetRMode(fpu.FPRoundPlusInf)
	r = f.FPToFixed(f32(2.2), 32, 32, 0, false, false, true)
	test.ExpectEquality(t, r, uint64(3))

	// the standard control value ignores the control register. it rounds to
	// nearest and flushes denormals
	f.Status.Clear()
	r = f.FPToFixed(f32(2.7), 32, 32, 0, false, false, false)
	test.ExpectEquality(t, r, uint64(3))

	f.Status.Clear()
	r = f.FPToFixed(0x00000001, 32, 32, 31, false, false, false)
	test.ExpectEquality(t, r, uint64(0))
	test.ExpectSuccess(t, f.Status.IDC())
	test.ExpectFailure(t, f.Status.IXC())

	// fixed-point with 16 fraction bits
	f.Status.Clear()
	r = f.FPToFixed(f32(-1.5), 32, 32, 16, false, true, true)
	test.ExpectEquality(t, r, uint64(0xfffe8000))
	test.ExpectEquality(t, f.Status.Value(), uint32(0))

	// unsigned 16 bit result
	r = f.FPToFixed(f32(70000), 32, 16, 0, true, true, true)
	test.ExpectEquality(t, r, uint64(0xffff))
	test.ExpectSuccess(t, f.Status.IOC())
}

func TestFPUFPToFixedRounding(t *testing.T) {
	var f fpu.FPU

	// FCVTAS rounds to nearest with ties away from zero
	r := f.FPToFixedRounding(f64(-2.5), 64, 64, 0, false, fpu.FPRoundNearestTieAway)
	test.ExpectEquality(t, r, uint64(0xfffffffffffffffd))

	// FCVTNS rounds to nearest with ties to even
	r = f.FPToFixedRounding(f64(-2.5), 64, 64, 0, false, fpu.FPRoundNearest)
	test.ExpectEquality(t, r, uint64(0xfffffffffffffffe))

	// FCVTMU, FCVTPU
	r = f.FPToFixedRounding(f64(2.5), 64, 32, 0, true, fpu.FPRoundNegInf)
	test.ExpectEquality(t, r, uint64(2))
	r = f.FPToFixedRounding(f64(2.5), 64, 32, 0, true, fpu.FPRoundPlusInf)
	test.ExpectEquality(t, r, uint64(3))

	test.ExpectSuccess(t, f.Status.IXC())
	test.ExpectFailure(t, f.Status.IOC())
}
