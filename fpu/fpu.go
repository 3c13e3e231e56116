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

// FPU holds the floating-point control and status registers of a single
// execution context. Conversions performed through an FPU always accumulate
// exceptions in the Status field.
//
// The FPU type is not safe for concurrent use. Independent contexts should use
// independent FPU instances.
type FPU struct {
	Control FPCR
	Status  FPSR
}

// StandardFPCRValue returns the control value used by instructions that are
// not controlled by the FPCR: default NaN and flush-to-zero enabled, round to
// nearest. The AHP bit is copied from the Control register.
func (fpu *FPU) StandardFPCRValue() FPCR {
	// page A2-53 of "ARMv7-M"
	var fpcr FPCR
	fpcr.SetDN(true)
	fpcr.SetFZ(true)
	fpcr.SetAHP(fpu.Control.AHP())
	return fpcr
}

// FPToFixed converts operand with a precision of N bits to a fixed-point value
// of M bits with fractionBits fraction bits.
//
// Rounding is towards zero if roundZero is true, otherwise the rounding mode in
// the Control register is used. If fpscrControlled is false the
// StandardFPCRValue() is used in place of the Control register.
func (fpu *FPU) FPToFixed(operand uint64, N int, M int, fractionBits int, unsigned bool, roundZero bool, fpscrControlled bool) uint64 {
	// page A2-60 of "ARMv7-M"

	// bits(M) FPToFixed(bits(N) operand, integer M, integer fraction_bits, boolean unsigned,
	//		boolean round_towards_zero, boolean fpscr_controlled)
	//
	//		fpscr_val = if fpscr_controlled then FPSCR else StandardFPSCRValue();
	//		if round_towards_zero then fpscr_val<23:22> = ‘11’;

	var fpcr FPCR
	if fpscrControlled {
		fpcr = fpu.Control
	} else {
		fpcr = fpu.StandardFPCRValue()
	}

	if roundZero {
		fpcr.SetRMode(FPRoundZero)
	}

	return FPToFixed(M, operand, N, fractionBits, unsigned, fpcr, fpcr.RMode(), &fpu.Status)
}

// FPToFixedRounding is the same as FPToFixed() except that the rounding mode is
// chosen explicitly. This is the form used by the instructions that encode
// the rounding mode, including FPRoundNearestTieAway. The Control register is
// always used.
func (fpu *FPU) FPToFixedRounding(operand uint64, N int, M int, fractionBits int, unsigned bool, rounding FPRounding) uint64 {
	return FPToFixed(M, operand, N, fractionBits, unsigned, fpu.Control, rounding, &fpu.Status)
}
