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

// Package eeprom is a driver for the 34C04 serial EEPROM. The 34C04 has 512
// bytes of memory and is addressed over a two-wire (I2C) bus.
//
// The device only has an 8-bit word address so the memory is divided in two
// halves of 256 bytes. Which half is in use is chosen by a write to one of two
// "set page address" bus addresses. Each half is further divided into two
// quadrants of 128 bytes:
//
//	linear address   page select   offset      quadrant
//	0x000 - 0x07f    0x36          0x00-0x7f   0
//	0x080 - 0x0ff    0x36          0x80-0xff   1
//	0x100 - 0x17f    0x37          0x00-0x7f   2
//	0x180 - 0x1ff    0x37          0x80-0xff   3
//
// Callers of the package use linear addresses only. The Device type takes care
// of selecting the correct page before every access.
//
// Multi-byte access is not allowed to cross the end of a quadrant because the
// device's address pointer wraps rather than continuing into the next quadrant.
// See ValidatePageWriteWindow() for the exact rule.
//
// After a write the device enters an internally timed write cycle, during which
// it does not respond to the bus. The Device type does not wait for the write
// cycle to complete. If the next operation is started too soon it will fail with
// a TransportError. The Stream type does wait for a fixed period after every
// write.
//
// Bus is the interface to the I2C bus. The gobotbus package provides an
// implementation for real hardware and the sim package a simulated device.
//
//	dev := eeprom.New(bus, eeprom.Pins{A2: false, A1: true, A0: true})
//
//	err := dev.WriteByte(0x0f, 0xf0)
//	if err != nil {
//		return err
//	}
//
//	time.Sleep(5 * time.Millisecond)
//
//	v, err := dev.ReadByte(0x0f)
package eeprom
