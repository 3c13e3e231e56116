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

// ResidualError classifies the bits lost by a right shift relative to half of
// one unit in the last place of the shifted result. The values are ordered
// and can be compared with < and >.
type ResidualError int

const (
	ResidualError_Zero ResidualError = iota
	ResidualError_LessThanHalf
	ResidualError_Half
	ResidualError_GreaterThanHalf
)

func (e ResidualError) String() string {
	switch e {
	case ResidualError_Zero:
		return "zero"
	case ResidualError_LessThanHalf:
		return "less than half"
	case ResidualError_Half:
		return "half"
	case ResidualError_GreaterThanHalf:
		return "greater than half"
	}
	return "unknown"
}

// ResidualErrorOnRightShift classifies the bits of v that would be discarded
// by a right shift of amount. No bits are discarded if amount is zero or
// negative.
//
// When amount is greater than 64 every bit of v is discarded along with
// copies of the sign bit. The error is then less than half for a positive
// value and greater than half for a negative value.
func ResidualErrorOnRightShift(v uint64, amount int) ResidualError {
	if amount <= 0 || v == 0 {
		return ResidualError_Zero
	}

	if amount > 64 {
		if MostSignificantBit(v) {
			return ResidualError_GreaterThanHalf
		}
		return ResidualError_LessThanHalf
	}

	half := uint64(0x01) << (amount - 1)
	residual := v & Ones(amount)

	switch {
	case residual == 0:
		return ResidualError_Zero
	case residual < half:
		return ResidualError_LessThanHalf
	case residual == half:
		return ResidualError_Half
	}
	return ResidualError_GreaterThanHalf
}
