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

import "github.com/jetsetilly/armfixed/logger"

type FPException int

const (
	FPExc_InvalidOp FPException = iota
	FPExc_DivideByZero
	FPExc_Overflow
	FPExc_Underflow
	FPExc_Inexact
	FPExc_InputDenorm
)

func (exc FPException) String() string {
	switch exc {
	case FPExc_InvalidOp:
		return "InvalidOp"
	case FPExc_DivideByZero:
		return "DivideByZero"
	case FPExc_Overflow:
		return "Overflow"
	case FPExc_Underflow:
		return "Underflow"
	case FPExc_Inexact:
		return "Inexact"
	case FPExc_InputDenorm:
		return "InputDenorm"
	}
	panic("unknown floating-point exception")
}

// position of the cumulative bit in the FPSR. the trap enable bit in the
// FPCR is always eight bits higher
func (exc FPException) statusBit() int {
	switch exc {
	case FPExc_InvalidOp:
		return 0
	case FPExc_DivideByZero:
		return 1
	case FPExc_Overflow:
		return 2
	case FPExc_Underflow:
		return 3
	case FPExc_Inexact:
		return 4
	case FPExc_InputDenorm:
		return 7
	}
	panic("unknown floating-point exception")
}

// FPProcessException records the exception in the status register.
//
// Trapped exceptions are IMPLEMENTATION DEFINED. We do not raise them. If the
// trap is enabled the event is logged and the cumulative bit is set as though
// the exception was untrapped.
func FPProcessException(exc FPException, fpcr FPCR, fpsr *FPSR) {
	// page A2-49 of "ARMv7-M"
	if fpcr.TrapEnabled(exc) {
		logger.Logf(logger.Allow, "fpu", "%s exception is trapped but traps are not raised", exc)
	}
	fpsr.setCumulative(exc)
}
