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

// Package safe provides negation and shift operations on 64-bit patterns
// where every input, including shift amounts that are negative or larger
// than the register width, has a defined result.
//
// Negative shift amounts reverse the direction of the shift. Amounts at or
// beyond 64 give the fully shifted-out value: zero for logical shifts and
// left shifts, sign-fill for arithmetic right shifts.
//
// Values are always uint64. Arithmetic shifts interpret the value as a twos
// complement number only for the purpose of propagating the sign bit.
package safe

const width = 64

// Negate returns the twos-complement negation of v. Negating the minimum
// signed value returns the same value.
func Negate(v uint64) uint64 {
	return ^v + 1
}

// LogicalShiftLeft shifts v left by amount. A negative amount is a logical
// shift right.
func LogicalShiftLeft(v uint64, amount int) uint64 {
	if amount < 0 {
		return LogicalShiftRight(v, -amount)
	}
	if amount >= width {
		return 0
	}
	return v << uint(amount)
}

// LogicalShiftRight shifts v right by amount, filling with zeroes. A negative
// amount is a logical shift left.
func LogicalShiftRight(v uint64, amount int) uint64 {
	if amount < 0 {
		return LogicalShiftLeft(v, -amount)
	}
	if amount >= width {
		return 0
	}
	return v >> uint(amount)
}

// ArithmeticShiftLeft shifts v left by amount. A negative amount is an
// arithmetic shift right.
func ArithmeticShiftLeft(v uint64, amount int) uint64 {
	if amount < 0 {
		return ArithmeticShiftRight(v, -amount)
	}
	if amount >= width {
		return 0
	}
	return v << uint(amount)
}

// ArithmeticShiftRight shifts v right by amount, filling with copies of the
// sign bit. A negative amount is an arithmetic shift left.
func ArithmeticShiftRight(v uint64, amount int) uint64 {
	if amount < 0 {
		return ArithmeticShiftLeft(v, -amount)
	}
	if amount >= width {
		if v&0x8000000000000000 == 0x8000000000000000 {
			return 0xffffffffffffffff
		}
		return 0
	}
	return uint64(int64(v) >> uint(amount))
}
