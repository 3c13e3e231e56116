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

type FPType int

const (
	FPType_Nonzero FPType = iota
	FPType_Zero
	FPType_Infinity
	FPType_QNaN
	FPType_SNaN
)

func (typ FPType) String() string {
	switch typ {
	case FPType_Nonzero:
		return "nonzero"
	case FPType_Zero:
		return "zero"
	case FPType_Infinity:
		return "infinity"
	case FPType_QNaN:
		return "qnan"
	case FPType_SNaN:
		return "snan"
	}
	return "unknown"
}

// NormalizedPointPosition is the bit position of the binary point in the
// mantissa of an FPUnpacked value. The highest set bit of a non-zero mantissa
// is always at this position.
const NormalizedPointPosition = 62

// the exponent given to infinities. large enough that the value will overflow
// any integer conversion
const infinityExponent = 1000000

// FPUnpacked is the numeric part of an unpacked floating-point value. The value
// represented is:
//
//	Mantissa / 2^NormalizedPointPosition * 2^Exponent
//
// A Mantissa of zero is used for zeroes and for NaNs.
type FPUnpacked struct {
	Sign     bool
	Exponent int
	Mantissa uint64
}

// format parameters for a precision of N bits
type format struct {
	// exponent bits, fraction bits and exponent bias
	E    int
	F    int
	bias int
}

func formatFor(N int) format {
	switch N {
	case 16:
		return format{E: 5, F: 10, bias: 15}
	case 32:
		return format{E: 8, F: 23, bias: 127}
	case 64:
		return format{E: 11, F: 52, bias: 1023}
	}
	panic("unsupported number of bits in FPUnpack()")
}

// normalise a mantissa that has a binary point at bit zero
func toNormalized(sign bool, exponent int, mantissa uint64) FPUnpacked {
	if mantissa == 0 {
		return FPUnpacked{Sign: sign}
	}
	highest := HighestSetBit(mantissa)
	return FPUnpacked{
		Sign:     sign,
		Exponent: exponent + highest,
		Mantissa: mantissa << (NormalizedPointPosition - highest),
	}
}

// FPUnpack classifies the floating-point value in the lower N bits of fpval
// and returns its sign and numeric value. N must be 16, 32 or 64.
//
// The InputDenorm exception is signalled when a single or double precision
// denormal is flushed to zero.
func FPUnpack(fpval uint64, N int, fpcr FPCR, fpsr *FPSR) (FPType, bool, FPUnpacked) {
	// page A2-47 to A2-49 of "ARMv7-M"

	f := formatFor(N)

	sign := Bit(N-1, fpval)
	exp := (fpval >> f.F) & Ones(f.E)
	frac := fpval & Ones(f.F)

	// "Produce zero if value is zero or flush-to-zero is selected"
	if exp == 0 {
		flush := fpcr.FZ()
		if N == 16 {
			flush = fpcr.FZ16()
		}

		if frac == 0 || flush {
			// "denormalised input flushed to zero". half-precision inputs do
			// not signal the exception
			if frac != 0 && N != 16 {
				FPProcessException(FPExc_InputDenorm, fpcr, fpsr)
			}
			return FPType_Zero, sign, FPUnpacked{Sign: sign}
		}

		// denormal value is frac * 2^(1-bias-F)
		return FPType_Nonzero, sign, toNormalized(sign, 1-f.bias-f.F, frac)
	}

	// the all ones exponent is an ordinary number for alternative
	// half-precision
	if exp == Ones(f.E) && !(N == 16 && fpcr.AHP()) {
		if frac == 0 {
			return FPType_Infinity, sign, toNormalized(sign, infinityExponent, 1)
		}
		if Bit(f.F-1, frac) {
			return FPType_QNaN, sign, FPUnpacked{Sign: sign}
		}
		return FPType_SNaN, sign, FPUnpacked{Sign: sign}
	}

	// "value = 2.0^(UInt(exp)-bias) * (1.0 + UInt(frac) * 2.0^-F)"
	return FPType_Nonzero, sign, FPUnpacked{
		Sign:     sign,
		Exponent: int(exp) - f.bias,
		Mantissa: (frac | (0x01 << f.F)) << (NormalizedPointPosition - f.F),
	}
}
