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

package eeprom

import (
	"fmt"

	"github.com/jetsetilly/ee34c04/curated"
)

// Size of the EEPROM in bytes.
const Size = 512

// the four quadrants of memory are each 128 bytes.
const QuadrantSize = 128

// PageSelectBase is the bus address that selects the lower half of memory
// (quadrants 0 and 1). The upper half is selected with PageSelectBase|1.
const PageSelectBase = uint8(0b0110110)

// PhysicalAddress is the device's view of a linear address.
type PhysicalAddress struct {
	// bus address of the page select function
	PageSelect uint8

	// word address within the selected half of memory
	Offset uint8
}

func (pa PhysicalAddress) String() string {
	return fmt.Sprintf("%#02x:%#02x", pa.PageSelect, pa.Offset)
}

// ValidateBounds returns an error if the address is outside of the 9-bit
// address space of the EEPROM.
func ValidateBounds(address uint32) error {
	if address>>9 != 0 {
		return curated.Errorf(AddressOutOfRange, address)
	}
	return nil
}

// Convert a linear address to a PhysicalAddress.
//
// The function does not call ValidateBounds() but an address outside of the
// four quadrants will fail with AddressConversionFailure.
func Convert(address uint32) (PhysicalAddress, error) {
	switch address >> 7 {
	case 0, 1:
		return PhysicalAddress{PageSelect: PageSelectBase, Offset: uint8(address)}, nil
	case 2, 3:
		return PhysicalAddress{PageSelect: PageSelectBase | 1, Offset: uint8(address & 0xff)}, nil
	}
	return PhysicalAddress{}, curated.Errorf(AddressConversionFailure, address)
}

// ValidatePageWriteWindow returns an error if a multi-byte access of size bytes,
// starting at address, would run off the end of the quadrant.
//
// The limit is measured against the last offset in the quadrant (0x7f for the
// lower quadrant of a half and 0xff for the upper) and so an access that would
// end exactly on the last byte of a quadrant is also rejected.
func ValidatePageWriteWindow(address uint32, size uint32) error {
	pa, err := Convert(address)
	if err != nil {
		return err
	}

	limit := uint32(0xff)
	if pa.Offset>>7 == 0 {
		limit = 0x7f
	}

	if uint32(pa.Offset)+size > limit {
		return curated.Errorf(PageWriteWindowOverflow, size, address)
	}

	return nil
}

// WindowRemaining is the largest size that will pass ValidatePageWriteWindow()
// for the address. The address is assumed to have passed ValidateBounds().
func WindowRemaining(address uint32) uint32 {
	offset := address & 0x7f
	return 0x7f - offset
}
