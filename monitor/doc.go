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

// Package monitor is an interactive viewer for the contents of a 34C04. The
// memory is shown one quadrant at a time as a hex dump. Single key presses
// move between quadrants:
//
//	n	next quadrant
//	p	previous quadrant
//	r	re-read the current quadrant
//	q	quit
//
// Run() puts the controlling terminal into cbreak mode so that key presses are
// seen immediately. Loop() does the work and can be driven by any io.Reader.
package monitor
