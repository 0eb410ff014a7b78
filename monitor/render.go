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

package monitor

import (
	"fmt"
	"io"

	"github.com/jetsetilly/ee34c04/eeprom"
)

// number of bytes in each line of a hex dump
const lineLength = 16

// Hexdump writes data as lines of sixteen bytes. Each line is prefixed with
// the address of the first byte. The address of data[0] is base.
func Hexdump(w io.Writer, base uint32, data []uint8) {
	for i := 0; i < len(data); i += lineLength {
		end := min(i+lineLength, len(data))
		fmt.Fprintf(w, "%03x  % 02x\n", base+uint32(i), data[i:end])
	}
}

// Render writes the contents of a single quadrant with a heading.
func Render(w io.Writer, quadrant int, data []uint8) {
	base := uint32(quadrant * eeprom.QuadrantSize)
	fmt.Fprintf(w, "quadrant %d [0x%03x - 0x%03x]\n", quadrant, base, base+eeprom.QuadrantSize-1)
	Hexdump(w, base, data)
}
