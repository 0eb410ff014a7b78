// This file is part of ee34c04.
//
// ee34c04 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ee34c04 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ee34c04.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag wraps the flag package and adds modes. A mode is a word
// on the command line that selects a different operation, each with its own
// set of flags. For example:
//
//	ee34c04 -bus raspi READ -length 16 0x80
//
// Here "-bus" is a flag of the top level, READ is the mode and "-length" is a
// flag of the READ mode.
//
// Arguments are first given to NewArgs(). Flags and sub-modes are then added
// and Parse() called. After a mode has been found, NewMode() is called to
// parse the arguments that follow it:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("READ", "WRITE")
//	bus := md.AddString("bus", "sim", "bus type")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "READ":
//		md.NewMode()
//		length := md.AddInt("length", 1, "number of bytes")
//		...
//	}
//
// The first sub-mode is the default and is selected if no mode word is
// present. Mode words are case insensitive.
package modalflag
