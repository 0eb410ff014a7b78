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
	"github.com/jetsetilly/ee34c04/curated"
	"github.com/jetsetilly/ee34c04/logger"
)

// the largest number of data bytes in a single write operation. this is the
// page size of the device
const MaxPayload = 16

// the tag used for log entries
const logTag = "ee34c04"

// selectPage writes to the page select bus address. the data sent is ignored
// by the device but two bytes are always sent.
func (dev *Device) selectPage(pa PhysicalAddress) error {
	var dontCare [2]uint8
	if err := dev.bus.Write(pa.PageSelect, dontCare[:]); err != nil {
		return curated.Errorf(TransportError, err)
	}
	return nil
}

// writeRead is a single write/read transaction with the read/write function of
// the device
func (dev *Device) writeRead(offset uint8, buffer []uint8) error {
	wordAddress := [1]uint8{offset}
	if err := dev.bus.WriteRead(dev.busAddress, wordAddress[:], buffer); err != nil {
		return curated.Errorf(TransportError, err)
	}
	return nil
}

// WriteByte writes a single byte to the address.
//
// After writing, the device enters an internally timed write cycle. The device
// will not respond until the cycle has completed.
func (dev *Device) WriteByte(address uint32, data uint8) error {
	if dev.bus == nil {
		return curated.Errorf(DeviceReleased)
	}

	if err := ValidateBounds(address); err != nil {
		return err
	}

	pa, err := Convert(address)
	if err != nil {
		return err
	}

	if err := dev.selectPage(pa); err != nil {
		return err
	}

	b := [2]uint8{pa.Offset, data}
	if err := dev.bus.Write(dev.busAddress, b[:]); err != nil {
		return curated.Errorf(TransportError, err)
	}

	dev.lastWrite = address
	logger.Logf(dev.log, logTag, "written %#02x to %#04x [%s]", data, address, pa)

	return nil
}

// ReadByte reads a single byte from the address.
func (dev *Device) ReadByte(address uint32) (uint8, error) {
	if dev.bus == nil {
		return 0, curated.Errorf(DeviceReleased)
	}

	if err := ValidateBounds(address); err != nil {
		return 0, err
	}

	pa, err := Convert(address)
	if err != nil {
		return 0, err
	}

	if err := dev.selectPage(pa); err != nil {
		return 0, err
	}

	var data [1]uint8
	if err := dev.writeRead(pa.Offset, data[:]); err != nil {
		return 0, err
	}

	dev.lastRead = address
	logger.Logf(dev.log, logTag, "read %#02x from %#04x [%s]", data[0], address, pa)

	return data[0], nil
}

// ReadByteArray fills buffer with consecutive bytes, starting at address. The
// read must not cross the end of the quadrant. See ValidatePageWriteWindow().
func (dev *Device) ReadByteArray(address uint32, buffer []uint8) error {
	if dev.bus == nil {
		return curated.Errorf(DeviceReleased)
	}

	if err := ValidateBounds(address); err != nil {
		return err
	}

	if err := ValidatePageWriteWindow(address, uint32(len(buffer))); err != nil {
		return err
	}

	pa, err := Convert(address)
	if err != nil {
		return err
	}

	if err := dev.selectPage(pa); err != nil {
		return err
	}

	// a sequential read only returns the first byte correctly unless it has
	// been preceded by a single byte read of the same address. the dummy
	// value is discarded
	var dummy [1]uint8
	if err := dev.writeRead(pa.Offset, dummy[:]); err != nil {
		return err
	}

	if err := dev.writeRead(pa.Offset, buffer); err != nil {
		return err
	}

	dev.lastRead = address
	logger.Logf(dev.log, logTag, "read %d bytes from %#04x [%s]", len(buffer), address, pa)

	return nil
}

// WriteByteArray writes data to consecutive addresses, starting at address. The
// length of data must be 2, 4, 8 or 16 and the write must not cross the end of
// the quadrant. See ValidatePageWriteWindow().
//
// Single bytes must be written with WriteByte().
func (dev *Device) WriteByteArray(address uint32, data []uint8) error {
	if dev.bus == nil {
		return curated.Errorf(DeviceReleased)
	}

	if len(data) > MaxPayload {
		return curated.Errorf(PayloadTooLarge, len(data))
	}

	if err := ValidateBounds(address); err != nil {
		return err
	}

	if err := ValidatePageWriteWindow(address, uint32(len(data))); err != nil {
		return err
	}

	pa, err := Convert(address)
	if err != nil {
		return err
	}

	if err := dev.selectPage(pa); err != nil {
		return err
	}

	switch len(data) {
	case 2, 4, 8, 16:
	default:
		return curated.Errorf(InvalidPayloadMultiple, len(data))
	}

	// word address followed by the payload
	var b [MaxPayload + 1]uint8
	b[0] = pa.Offset
	n := copy(b[1:], data)

	if err := dev.bus.Write(dev.busAddress, b[:n+1]); err != nil {
		return curated.Errorf(TransportError, err)
	}

	dev.lastWrite = address
	logger.Logf(dev.log, logTag, "written %d bytes to %#04x [%s]", len(data), address, pa)

	return nil
}
