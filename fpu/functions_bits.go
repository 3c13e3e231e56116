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

import "math/bits"

// HighestSetBit returns the position of the most significant set bit in v.
// Returns -1 if v is zero.
func HighestSetBit(v uint64) int {
	return bits.Len64(v) - 1
}

// Ones returns a value with the lowest n bits set. Values of n outside the
// range 0 to 64 cause a panic.
func Ones(n int) uint64 {
	if n < 0 || n > 64 {
		panic("unsupported number of bits in Ones()")
	}
	if n == 64 {
		return 0xffffffffffffffff
	}
	return (0x01 << n) - 1
}

// Bit returns true if bit n of v is set.
func Bit(n int, v uint64) bool {
	return (v>>n)&0x01 == 0x01
}

// MostSignificantBit returns true if bit 63 of v is set. For a value that is
// interpreted as a twos complement number this is the sign.
func MostSignificantBit(v uint64) bool {
	return v&0x8000000000000000 == 0x8000000000000000
}
