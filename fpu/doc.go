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

// Package fpu implements the conversion of floating-point values to
// fixed-point integers, as performed by the ARM VCVT and FCVT family of
// instructions, along with the parts of the floating-point unit that the
// conversion depends on.
//
// The conversion is bit exact. No floating-point arithmetic is used. A value
// is unpacked by FPUnpack() into a sign, a normalised 64-bit mantissa and an
// exponent, and FPToFixed() produces the integer with shift, negate and
// increment operations on the mantissa.
//
// Control and status registers are passed explicitly. The control register
// (FPCR) is passed by value and the status register (FPSR) by pointer, so a
// conversion has no state other than the FPSR it is given. Conversions in
// different goroutines are independent provided that they do not share an
// FPSR.
//
// The FPU type bundles the two registers for callers that model a single
// execution context.
//
// Page references in comments are to the "ARMv7-M Architecture Reference
// Manual".
package fpu
