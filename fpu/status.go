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

import "strings"

// FPCR is the floating-point control register. The bit positions are shared
// by the AArch64 FPCR and the control half of the AArch32 FPSCR.
//
// The zero value is the default control configuration: round to nearest, no
// flushing, IEEE half-precision and no trapped exceptions.
type FPCR struct {
	value uint32
}

// NewFPCR creates an FPCR from a raw register value.
func NewFPCR(value uint32) FPCR {
	return FPCR{value: value}
}

// Value returns the raw register value.
func (fpcr FPCR) Value() uint32 {
	return fpcr.value
}

func (fpcr FPCR) bit(n int) bool {
	return fpcr.value&(0x01<<n) != 0
}

func (fpcr *FPCR) setBit(n int, set bool) {
	fpcr.value &^= 0x01 << n
	if set {
		fpcr.value |= 0x01 << n
	}
}

// AHP is the alternative half-precision control bit.
func (fpcr FPCR) AHP() bool {
	// bit 26
	return fpcr.bit(26)
}

func (fpcr *FPCR) SetAHP(set bool) {
	fpcr.setBit(26, set)
}

// DN is the default NaN control bit.
func (fpcr FPCR) DN() bool {
	// bit 25
	return fpcr.bit(25)
}

func (fpcr *FPCR) SetDN(set bool) {
	fpcr.setBit(25, set)
}

// FZ is the flush-to-zero control bit for single and double precision.
func (fpcr FPCR) FZ() bool {
	// bit 24
	return fpcr.bit(24)
}

func (fpcr *FPCR) SetFZ(set bool) {
	fpcr.setBit(24, set)
}

// FZ16 is the flush-to-zero control bit for half precision.
func (fpcr FPCR) FZ16() bool {
	// bit 19
	return fpcr.bit(19)
}

func (fpcr *FPCR) SetFZ16(set bool) {
	fpcr.setBit(19, set)
}

// TrapEnabled returns true if the trap enable bit for the exception is set.
func (fpcr FPCR) TrapEnabled(exc FPException) bool {
	return fpcr.bit(exc.statusBit() + 8)
}

func (fpcr *FPCR) SetTrapEnabled(exc FPException, set bool) {
	fpcr.setBit(exc.statusBit()+8, set)
}

// RMode returns the rounding mode selected by the register. Only the four
// modes with an encoding are possible.
func (fpcr FPCR) RMode() FPRounding {
	// bits 22-23
	return FPRounding((fpcr.value & 0x00c00000) >> 22)
}

// SetRMode sets the rounding mode bits of the register. Rounding modes that
// have no encoding in the register cause a panic.
func (fpcr *FPCR) SetRMode(mode FPRounding) {
	if mode > FPRoundZero {
		panic("rounding mode cannot be encoded in FPCR")
	}
	// bits 22-23
	fpcr.value &= 0xff3fffff
	fpcr.value |= uint32(mode) << 22
}

// FPSR is the floating-point status register. It accumulates the cumulative
// exception bits set by FPProcessException().
//
// An FPSR is the only state that a conversion changes. Each logical execution
// context should have its own instance.
type FPSR struct {
	value uint32
}

// NewFPSR creates an FPSR from a raw register value.
func NewFPSR(value uint32) FPSR {
	return FPSR{value: value}
}

// Value returns the raw register value.
func (fpsr FPSR) Value() uint32 {
	return fpsr.value
}

// Clear all bits in the register.
func (fpsr *FPSR) Clear() {
	fpsr.value = 0
}

// Cumulative returns true if the cumulative bit for the exception is set.
func (fpsr FPSR) Cumulative(exc FPException) bool {
	return fpsr.value&(0x01<<exc.statusBit()) != 0
}

func (fpsr *FPSR) setCumulative(exc FPException) {
	fpsr.value |= 0x01 << exc.statusBit()
}

// IOC is the invalid operation cumulative bit.
func (fpsr FPSR) IOC() bool {
	// bit 0
	return fpsr.Cumulative(FPExc_InvalidOp)
}

// DZC is the divide by zero cumulative bit.
func (fpsr FPSR) DZC() bool {
	// bit 1
	return fpsr.Cumulative(FPExc_DivideByZero)
}

// OFC is the overflow cumulative bit.
func (fpsr FPSR) OFC() bool {
	// bit 2
	return fpsr.Cumulative(FPExc_Overflow)
}

// UFC is the underflow cumulative bit.
func (fpsr FPSR) UFC() bool {
	// bit 3
	return fpsr.Cumulative(FPExc_Underflow)
}

// IXC is the inexact cumulative bit.
func (fpsr FPSR) IXC() bool {
	// bit 4
	return fpsr.Cumulative(FPExc_Inexact)
}

// IDC is the input denormal cumulative bit.
func (fpsr FPSR) IDC() bool {
	// bit 7
	return fpsr.Cumulative(FPExc_InputDenorm)
}

// QC is the cumulative saturation bit. It is never set by the fpu package.
func (fpsr FPSR) QC() bool {
	// bit 27
	return fpsr.value&0x08000000 == 0x08000000
}

// String returns the names of the cumulative bits that are set, separated by
// a space. An empty register returns "-".
func (fpsr FPSR) String() string {
	var s []string
	if fpsr.IOC() {
		s = append(s, "IOC")
	}
	if fpsr.DZC() {
		s = append(s, "DZC")
	}
	if fpsr.OFC() {
		s = append(s, "OFC")
	}
	if fpsr.UFC() {
		s = append(s, "UFC")
	}
	if fpsr.IXC() {
		s = append(s, "IXC")
	}
	if fpsr.IDC() {
		s = append(s, "IDC")
	}
	if fpsr.QC() {
		s = append(s, "QC")
	}
	if len(s) == 0 {
		return "-"
	}
	return strings.Join(s, " ")
}
