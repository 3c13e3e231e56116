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
	"math/big"

	"github.com/jetsetilly/armfixed/fpu"
)

// precision of the big.Float values used by the reference. large enough to
// hold the integer part of the largest double scaled by 2^64 alongside the
// smallest denormal
const referencePrecision = 4096

// decoded is an operand decoded by the reference. it is decoded without
// reference to fpu.FPUnpack()
type decoded struct {
	nan      bool
	infinity bool
	sign     bool
	denormal bool

	// exact magnitude of the value. nil for NaNs and infinities
	magnitude *big.Float
}

func decode(op uint64, N int, fpcr fpu.FPCR) decoded {
	var expBits, fracBits, bias int
	switch N {
	case 16:
		expBits, fracBits, bias = 5, 10, 15
	case 32:
		expBits, fracBits, bias = 8, 23, 127
	case 64:
		expBits, fracBits, bias = 11, 52, 1023
	default:
		panic("unsupported number of bits in sweep.decode()")
	}

	expMax := uint64(1)<<expBits - 1

	d := decoded{
		sign: (op>>(N-1))&1 == 1,
	}
	exp := (op >> fracBits) & expMax
	frac := op & (uint64(1)<<fracBits - 1)

	if exp == expMax && !(N == 16 && fpcr.AHP()) {
		if frac == 0 {
			d.infinity = true
		} else {
			d.nan = true
		}
		return d
	}

	var mant big.Float
	mant.SetPrec(referencePrecision)

	if exp == 0 {
		d.denormal = frac != 0
		mant.SetUint64(frac)
		d.magnitude = new(big.Float).SetPrec(referencePrecision).SetMantExp(&mant, 1-bias-fracBits)
		return d
	}

	mant.SetUint64(frac | uint64(1)<<fracBits)
	d.magnitude = new(big.Float).SetPrec(referencePrecision).SetMantExp(&mant, int(exp)-bias-fracBits)
	return d
}

// rounding of an exact value to an integer by the mathematical definition of
// each rounding mode. returns the rounded integer and whether the value was
// exact
func roundToInteger(x *big.Float, rounding fpu.FPRounding) (*big.Int, bool) {
	// floor and ceiling of x
	floor, _ := x.Int(nil)
	if x.Sign() < 0 && !x.IsInt() {
		floor.Sub(floor, big.NewInt(1))
	}

	exact := x.IsInt()
	if exact {
		return floor, true
	}

	ceil := new(big.Int).Add(floor, big.NewInt(1))

	// compare fraction with one half
	f := new(big.Float).SetPrec(referencePrecision).SetInt(floor)
	f.Sub(x, f)
	cmpHalf := f.Cmp(big.NewFloat(0.5))

	switch rounding {
	case fpu.FPRoundPlusInf:
		return ceil, false
	case fpu.FPRoundNegInf:
		return floor, false
	case fpu.FPRoundZero:
		if x.Sign() < 0 {
			return ceil, false
		}
		return floor, false
	case fpu.FPRoundNearest:
		switch {
		case cmpHalf < 0:
			return floor, false
		case cmpHalf > 0:
			return ceil, false
		}
		if floor.Bit(0) == 0 {
			return floor, false
		}
		return ceil, false
	case fpu.FPRoundNearestTieAway:
		switch {
		case cmpHalf < 0:
			return floor, false
		case cmpHalf > 0:
			return ceil, false
		}
		if x.Sign() < 0 {
			return floor, false
		}
		return ceil, false
	}

	panic("unsupported rounding mode in sweep.roundToInteger()")
}

// Reference returns the result of converting op to a fixed-point integer, along
// with the status bits that should be set by the conversion. It has the same
// contract as fpu.FPToFixed() but is computed with exact arithmetic.
//
// Only the IOC, IXC and IDC bits are ever set in the returned FPSR.
func Reference(ibits int, op uint64, N int, fbits int, unsigned bool, fpcr fpu.FPCR, rounding fpu.FPRounding) (uint64, fpu.FPSR) {
	var fpsr fpu.FPSR
	var noTraps fpu.FPCR

	d := decode(op, N, fpcr)

	if d.nan {
		fpu.FPProcessException(fpu.FPExc_InvalidOp, noTraps, &fpsr)
		return 0, fpsr
	}

	if d.denormal {
		flush := fpcr.FZ()
		if N == 16 {
			flush = fpcr.FZ16()
		}
		if flush {
			if N != 16 {
				fpu.FPProcessException(fpu.FPExc_InputDenorm, noTraps, &fpsr)
			}
			return 0, fpsr
		}
	}

	if !d.infinity && d.magnitude.Sign() == 0 {
		return 0, fpsr
	}

	if d.sign && unsigned {
		fpu.FPProcessException(fpu.FPExc_InvalidOp, noTraps, &fpsr)
		return 0, fpsr
	}

	// representable range
	var lo, hi *big.Int
	if unsigned {
		lo = big.NewInt(0)
		hi = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(ibits)), big.NewInt(1))
	} else {
		hi = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(ibits-1)), big.NewInt(1))
		lo = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(ibits-1)))
	}

	saturate := func(negative bool) (uint64, fpu.FPSR) {
		fpu.FPProcessException(fpu.FPExc_InvalidOp, noTraps, &fpsr)
		if negative {
			return uint64(lo.Int64()) & fpu.Ones(ibits), fpsr
		}
		return hi.Uint64(), fpsr
	}

	if d.infinity {
		return saturate(d.sign)
	}

	x := new(big.Float).SetPrec(referencePrecision).SetMantExp(d.magnitude, fbits)
	if d.sign {
		x.Neg(x)
	}

	r, exact := roundToInteger(x, rounding)

	if r.Cmp(hi) > 0 {
		return saturate(false)
	}
	if r.Cmp(lo) < 0 {
		return saturate(true)
	}

	if !exact {
		fpu.FPProcessException(fpu.FPExc_Inexact, noTraps, &fpsr)
	}

	if unsigned {
		return r.Uint64(), fpsr
	}
	return uint64(r.Int64()) & fpu.Ones(ibits), fpsr
}
