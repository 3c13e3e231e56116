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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Unlike flag.FlagSet, where Parse() is called with the list of arguments,
// the arguments are given to NewArgs() and Parse() is called with no
// arguments:
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("convert", "sweep")
//	p, err := md.Parse()
//
// The first sub-mode is the default mode. After a successful Parse() the
// selected mode is returned by Mode(). Flags for the mode are then added after
// a call to NewMode() and parsed with a second call to Parse():
//
//	switch md.Mode() {
//	case "SWEEP":
//		md.NewMode()
//		workers := md.AddInt("workers", 4, "number of concurrent workers")
//		p, err := md.Parse()
//		...
//	}
//
// Non-flag arguments can be retrieved with the RemainingArgs() or GetArg()
// functions.
//
// For simplicity, all sub-mode comparisons are case insensitive.
//
// If the EnvPrefix field is set then the default value of every flag can be
// overridden with an environment variable. The name of the variable is shown
// in the help message for the flag.
package modalflag
