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

// Package prefs holds preferences supplied on the command line with the -prefs
// flag. Preferences take the form of key/value pairs separated by a double
// colon. Multiple pairs are separated by a semi-colon. For example:
//
//	-prefs "writecycle::10ms; bus::1"
//
// Groups of preferences are kept on a stack. Values are consumed from the
// most recently pushed group, and reading a value removes it from the group.
// Values that were never read are reported when the group is popped, which
// allows the caller to warn about mistyped keys.
package prefs
