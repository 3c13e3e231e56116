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
	"math"
	"testing"

	"github.com/jetsetilly/armfixed/fpu"
	"github.com/jetsetilly/armfixed/test"
)

func f32(v float32) uint64 {
	return uint64(math.Float32bits(v))
}

func f64(v float64) uint64 {
	return math.Float64bits(v)
}

func TestUnpackSingle(t *testing.T) {
	var fpcr fpu.FPCR
	var fpsr fpu.FPSR

	typ, sign, value := fpu.FPUnpack(f32(1.0), 32, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_Nonzero)
	test.ExpectFailure(t, sign)
	test.ExpectEquality(t, value.Exponent, 0)
	test.ExpectEquality(t, value.Mantissa, uint64(0x4000000000000000))

	typ, sign, value = fpu.FPUnpack(f32(-2.5), 32, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_Nonzero)
	test.ExpectSuccess(t, sign)
	test.ExpectSuccess(t, value.Sign)
	test.ExpectEquality(t, value.Exponent, 1)
	test.ExpectEquality(t, value.Mantissa, uint64(0x5000000000000000))

	// smallest denormal is 2^-149
	typ, _, value = fpu.FPUnpack(0x00000001, 32, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_Nonzero)
	test.ExpectEquality(t, value.Exponent, -149)
	test.ExpectEquality(t, value.Mantissa, uint64(0x4000000000000000))

	// largest denormal is just under 2^-126
	typ, _, value = fpu.FPUnpack(0x007fffff, 32, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_Nonzero)
	test.ExpectEquality(t, value.Exponent, -127)
	test.ExpectEquality(t, value.Mantissa, uint64(0x7fffff)<<40)

	test.ExpectEquality(t, fpsr.Value(), uint32(0))
}

func TestUnpackSpecialValues(t *testing.T) {
	var fpcr fpu.FPCR
	var fpsr fpu.FPSR

	typ, sign, value := fpu.FPUnpack(0x80000000, 32, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_Zero)
	test.ExpectSuccess(t, sign)
	test.ExpectEquality(t, value.Mantissa, uint64(0))

	typ, sign, value = fpu.FPUnpack(0xff800000, 32, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_Infinity)
	test.ExpectSuccess(t, sign)
	test.ExpectEquality(t, value.Mantissa, uint64(0x4000000000000000))
	test.ExpectEquality(t, value.Exponent, 1000000)

	typ, _, value = fpu.FPUnpack(0x7fc00000, 32, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_QNaN)
	test.ExpectEquality(t, value.Mantissa, uint64(0))

	typ, _, value = fpu.FPUnpack(0x7f800001, 32, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_SNaN)
	test.ExpectEquality(t, value.Mantissa, uint64(0))

	typ, _, _ = fpu.FPUnpack(0x7ff8000000000000, 64, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_QNaN)

	typ, _, _ = fpu.FPUnpack(0x7ff0000000000001, 64, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_SNaN)

	// unpacking NaNs does not signal anything
	test.ExpectEquality(t, fpsr.Value(), uint32(0))
}

func TestUnpackDouble(t *testing.T) {
	var fpcr fpu.FPCR
	var fpsr fpu.FPSR

	typ, _, value := fpu.FPUnpack(f64(1.0), 64, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_Nonzero)
	test.ExpectEquality(t, value.Exponent, 0)
	test.ExpectEquality(t, value.Mantissa, uint64(0x4000000000000000))

	typ, _, value = fpu.FPUnpack(0x0000000000000001, 64, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_Nonzero)
	test.ExpectEquality(t, value.Exponent, -1074)
	test.ExpectEquality(t, value.Mantissa, uint64(0x4000000000000000))

	typ, _, value = fpu.FPUnpack(f64(math.MaxFloat64), 64, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_Nonzero)
	test.ExpectEquality(t, value.Exponent, 1023)
	test.ExpectEquality(t, value.Mantissa, uint64(0x7ffffffffffffc00))
}

func TestUnpackHalf(t *testing.T) {
	var fpcr fpu.FPCR
	var fpsr fpu.FPSR

	// 2.5
	typ, _, value := fpu.FPUnpack(0x4100, 16, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_Nonzero)
	test.ExpectEquality(t, value.Exponent, 1)
	test.ExpectEquality(t, value.Mantissa, uint64(0x5000000000000000))

	// smallest denormal is 2^-24
	typ, _, value = fpu.FPUnpack(0x0001, 16, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_Nonzero)
	test.ExpectEquality(t, value.Exponent, -24)

	typ, _, _ = fpu.FPUnpack(0x7c00, 16, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_Infinity)

	typ, _, _ = fpu.FPUnpack(0x7e00, 16, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_QNaN)

	// alternative half-precision has no infinities or NaNs
	fpcr.SetAHP(true)
	typ, _, value = fpu.FPUnpack(0x7c00, 16, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_Nonzero)
	test.ExpectEquality(t, value.Exponent, 16)
	test.ExpectEquality(t, value.Mantissa, uint64(0x4000000000000000))
}

func TestUnpackFlushToZero(t *testing.T) {
	var fpcr fpu.FPCR
	var fpsr fpu.FPSR

	fpcr.SetFZ(true)
	typ, sign, value := fpu.FPUnpack(0x80000001, 32, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_Zero)
	test.ExpectSuccess(t, sign)
	test.ExpectEquality(t, value.Mantissa, uint64(0))
	test.ExpectSuccess(t, fpsr.IDC())

	// FZ does not apply to half-precision
	fpsr.Clear()
	typ, _, _ = fpu.FPUnpack(0x0001, 16, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_Nonzero)

	// FZ16 flushes half-precision without signalling InputDenorm
	fpcr.SetFZ16(true)
	typ, _, _ = fpu.FPUnpack(0x0001, 16, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_Zero)
	test.ExpectFailure(t, fpsr.IDC())

	// an exact zero is not a denormal
	fpsr.Clear()
	typ, _, _ = fpu.FPUnpack(0x00000000, 32, fpcr, &fpsr)
	test.ExpectEquality(t, typ, fpu.FPType_Zero)
	test.ExpectFailure(t, fpsr.IDC())
}

func TestUnpackUnsupportedPrecision(t *testing.T) {
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	var fpsr fpu.FPSR
	fpu.FPUnpack(0, 8, fpu.FPCR{}, &fpsr)
}
