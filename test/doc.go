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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare two values of
// the same comparable type. ExpectSuccess() and ExpectFailure() interpret a
// value in the way the test would expect:
//
//	bool: true is success
//	error: nil is success
//	nil: is always success
//
// The Demand*() functions are the same as the Expect*() functions except that
// the test is stopped immediately on failure.
//
// CompareWriter and RingWriter are io.Writer implementations useful for
// checking output written by a function under test.
package test
