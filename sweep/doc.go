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

// Package sweep verifies the fpu package's fixed-point conversion against an
// independent reference.
//
// The reference decodes each operand into an exact arbitrary-precision value,
// scales it, and rounds it by the mathematical definition of the rounding
// mode. It shares no code with fpu.FPToFixed() beyond the status register
// type.
//
// Half-precision can be tested exhaustively. Single and double precision are
// tested with a list of values around each integer boundary, supplemented
// with random bit patterns.
package sweep
