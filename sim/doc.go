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

// Package sim is a simulated 34C04 EEPROM. It implements the eeprom.Bus
// interface directly, as though the simulated device was the only device on
// the bus.
//
// The simulation covers the set page address functions, the word address
// pointer, page writes with roll-over at the end of the 16 byte write buffer
// and sequential reads. It does not simulate the internal write cycle.
//
// The memory can be loaded from and saved to disk. The file is the 512 byte
// memory image with no header.
package sim
