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

package fpu

import (
	"github.com/jetsetilly/armfixed/fpu/safe"
)

// FPToFixed converts the floating-point value in the lower N bits of op to a
// fixed-point integer of ibits width with fbits fraction bits. The result is
// in the lower ibits of the returned value and is to be interpreted as signed
// or unsigned according to the unsigned argument.
//
// Exceptions are signalled through FPProcessException() and accumulated in
// fpsr. A NaN converts to zero and an out of range value saturates to the
// nearest representable value, signalling InvalidOp in both cases. A negative
// value converted to an unsigned integer is always zero with InvalidOp.
//
// The following are invalid and cause a panic: a rounding mode of
// FPRoundOdd, ibits outside the range 1 to 64, fbits outside the range 0 to
// ibits. An N other than 16, 32 or 64 causes FPUnpack() to panic.
func FPToFixed(ibits int, op uint64, N int, fbits int, unsigned bool, fpcr FPCR, rounding FPRounding, fpsr *FPSR) uint64 {
	if rounding == FPRoundOdd {
		panic("FPRoundOdd is not supported by FPToFixed()")
	}
	if ibits < 1 || ibits > 64 {
		panic("unsupported number of integer bits in FPToFixed()")
	}
	if fbits < 0 || fbits > ibits {
		panic("unsupported number of fraction bits in FPToFixed()")
	}

	typ, sign, value := FPUnpack(op, N, fpcr, fpsr)

	if typ == FPType_SNaN || typ == FPType_QNaN {
		FPProcessException(FPExc_InvalidOp, fpcr, fpsr)
	}

	// zeroes and NaNs
	if value.Mantissa == 0 {
		return 0
	}

	if sign && unsigned {
		FPProcessException(FPExc_InvalidOp, fpcr, fpsr)
		return 0
	}

	// multiply by 2^fbits and move the binary point to bit zero. a negative
	// exponent is a right shift and will discard bits
	exponent := value.Exponent + fbits - NormalizedPointPosition

	result := value.Mantissa
	if sign {
		result = safe.Negate(result)
	}

	residual := ResidualErrorOnRightShift(result, -exponent)
	result = safe.ArithmeticShiftLeft(result, exponent)

	// the shift rounds towards minus infinity. decide whether to move the
	// result towards plus infinity by one unit
	var roundUp bool
	switch rounding {
	case FPRoundNearest:
		roundUp = residual > ResidualError_Half || (residual == ResidualError_Half && Bit(0, result))
	case FPRoundPlusInf:
		roundUp = residual != ResidualError_Zero
	case FPRoundNegInf:
		roundUp = false
	case FPRoundZero:
		roundUp = residual != ResidualError_Zero && MostSignificantBit(result)
	case FPRoundNearestTieAway:
		roundUp = residual > ResidualError_Half || (residual == ResidualError_Half && !MostSignificantBit(result))
	default:
		panic("unsupported rounding mode in FPToFixed()")
	}

	if roundUp {
		result++
	}

	// overflow is detected by comparing the exponent against the position of
	// the highest set bit of the rounded magnitude
	highest := highestSetBitOfMagnitude(value.Mantissa, exponent, roundUp && !sign)

	minExponentForOverflow := ibits - highest - 1
	if unsigned {
		minExponentForOverflow = ibits - highest
	}

	if exponent >= minExponentForOverflow {
		// positive overflow saturates to the maximum value
		if unsigned || !sign {
			FPProcessException(FPExc_InvalidOp, fpcr, fpsr)
			if unsigned {
				return Ones(ibits)
			}
			return Ones(ibits - 1)
		}

		// negative overflow saturates to the minimum value. the one exception
		// is a result that is exactly the minimum value
		minValue := safe.Negate(uint64(0x01) << (ibits - 1))
		if !(exponent == minExponentForOverflow && result == minValue) {
			FPProcessException(FPExc_InvalidOp, fpcr, fpsr)
			return uint64(0x01) << (ibits - 1)
		}
	}

	if residual != ResidualError_Zero {
		FPProcessException(FPExc_Inexact, fpcr, fpsr)
	}

	return result & Ones(ibits)
}

// highestSetBitOfMagnitude returns the position of the highest set bit of the
// mantissa, after adding one unit in the last place of the result if
// increment is true. The unit in the last place of the result is at bit
// position -exponent of the mantissa.
//
// An increment is only ever required for a negative exponent.
func highestSetBitOfMagnitude(mantissa uint64, exponent int, increment bool) int {
	if !increment {
		return HighestSetBit(mantissa)
	}

	// the mantissa is always smaller than 2^63 so an increment at bit 63 or
	// above becomes the highest set bit
	if -exponent >= 63 {
		return -exponent
	}

	return HighestSetBit(mantissa + safe.LogicalShiftLeft(1, -exponent))
}
