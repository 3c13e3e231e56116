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

import (
	"strings"

	"github.com/jetsetilly/armfixed/curated"
)

// FPRounding is a rounding mode. The first four values are the encodings
// used by the RMode field of the FPCR.
type FPRounding byte

// List of rounding modes
const (
	FPRoundNearest FPRounding = 0b00
	FPRoundPlusInf FPRounding = 0b01
	FPRoundNegInf  FPRounding = 0b10
	FPRoundZero    FPRounding = 0b11

	// the following modes have no FPCR encoding. they are selected by the
	// instruction rather than by the control register
	FPRoundNearestTieAway FPRounding = 0b100
	FPRoundOdd            FPRounding = 0b101
)

func (r FPRounding) String() string {
	switch r {
	case FPRoundNearest:
		return "nearest"
	case FPRoundPlusInf:
		return "plusinf"
	case FPRoundNegInf:
		return "neginf"
	case FPRoundZero:
		return "zero"
	case FPRoundNearestTieAway:
		return "tieaway"
	case FPRoundOdd:
		return "odd"
	}
	return "unknown"
}

// Sentinal error patterns returned by ParseRounding()
const (
	UnknownRounding = "unknown rounding mode: %s"
)

// ParseRounding returns the FPRounding value named by s. Names are those
// returned by FPRounding.String() and are case insensitive.
func ParseRounding(s string) (FPRounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest", "rn":
		return FPRoundNearest, nil
	case "plusinf", "rp":
		return FPRoundPlusInf, nil
	case "neginf", "rm":
		return FPRoundNegInf, nil
	case "zero", "rz":
		return FPRoundZero, nil
	case "tieaway", "rna":
		return FPRoundNearestTieAway, nil
	case "odd":
		return FPRoundOdd, nil
	}
	return FPRoundNearest, curated.Errorf(UnknownRounding, s)
}
