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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to the
// Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Patterns that callers need to
// check for are stored as exported string constants. For example, the eeprom
// package declares:
//
//	const AddressOutOfRange = "ee34c04: address out of range (%#04x)"
//
// and a caller can test for it with the Is() function:
//
//	err := dev.WriteByte(0x200, 0xff)
//	if curated.Is(err, eeprom.AddressOutOfRange) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in the
// error chain. A curated error that wraps another error value also supports
// Unwrap(), meaning errors.Is() and errors.As() from the standard library will
// find errors that did not originate in this package. The eeprom package relies
// on this to pass bus errors to the caller unchanged.
//
// The Error() function normalises the error chain by removing duplicate
// adjacent parts. For the purposes of this package we think of chains as being
// composed of parts separated by the sub-string ': ' as suggested on p239 of
// "The Go Programming Language" (Donovan, Kernighan). For example:
//
//	part 1: part 2: part 3
//
// A chain "ee34c04: ee34c04: address out of range" is normalised to
// "ee34c04: address out of range".
package curated
