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

	"github.com/jetsetilly/ee34c04/logger"
)

// ReadWriteBase is the bus address of the read/write function before the
// address pins are added.
const ReadWriteBase = uint8(0b1010000)

// Bus is the interface to the two-wire bus the EEPROM is attached to. Any
// error returned by the implementation is passed to the caller of the Device
// function, wrapped in a TransportError.
type Bus interface {
	// Write data to the device at the bus address.
	Write(address uint8, data []uint8) error

	// WriteRead writes data to the device at the bus address and then, without
	// releasing the bus, reads len(buffer) bytes into buffer.
	WriteRead(address uint8, data []uint8, buffer []uint8) error
}

// Pins is the state of the A2, A1 and A0 address pins of the device. True
// indicates the pin is tied high.
type Pins struct {
	A2 bool
	A1 bool
	A0 bool
}

// ParsePins converts a three character string of '0' and '1' characters
// into a Pins value. The first character is A2 and the last character is A0.
func ParsePins(s string) (Pins, error) {
	if len(s) != 3 {
		return Pins{}, fmt.Errorf("address pins must be three characters (A2A1A0)")
	}

	var b [3]bool
	for i, c := range s {
		switch c {
		case '0':
		case '1':
			b[i] = true
		default:
			return Pins{}, fmt.Errorf("address pins must be '0' or '1' (not %c)", c)
		}
	}

	return Pins{A2: b[0], A1: b[1], A0: b[2]}, nil
}

func (p Pins) String() string {
	s := []byte("000")
	if p.A2 {
		s[0] = '1'
	}
	if p.A1 {
		s[1] = '1'
	}
	if p.A0 {
		s[2] = '1'
	}
	return string(s)
}

// Address returns the bus address of the read/write function for these pins.
func (p Pins) Address() uint8 {
	a := ReadWriteBase
	if p.A2 {
		a |= 1 << 2
	}
	if p.A1 {
		a |= 1 << 1
	}
	if p.A0 {
		a |= 1
	}
	return a
}

// Device is a 34C04 attached to a Bus. The Device owns the Bus until Release()
// is called. It is not safe for concurrent use.
type Device struct {
	bus Bus

	// resolved read/write bus address. does not change after New()
	busAddress uint8

	// the address of the most recent successful write and read operations
	lastWrite uint32
	lastRead  uint32

	// whether operations are logged
	log logger.Permission
}

// New is the preferred method of initialisation for the Device type. There is
// no communication with the device until the first read or write operation.
func New(bus Bus, pins Pins) *Device {
	return &Device{
		bus:        bus,
		busAddress: pins.Address(),
		log:        logger.Allow,
	}
}

// Release returns the Bus. The Device can not be used after the call to
// Release(). Any attempt to do so will fail with a DeviceReleased error.
func (dev *Device) Release() Bus {
	bus := dev.bus
	dev.bus = nil
	return bus
}

// SetLogging changes the logging permission for the device. Logging is
// allowed by default.
func (dev *Device) SetLogging(perm logger.Permission) {
	dev.log = perm
}

// BusAddress returns the bus address of the read/write function.
func (dev *Device) BusAddress() uint8 {
	return dev.busAddress
}

// PreviousWriteAddress returns the address of the most recent successful
// write operation. Zero if there has been no write.
func (dev *Device) PreviousWriteAddress() uint32 {
	return dev.lastWrite
}

// PreviousReadAddress returns the address of the most recent successful read
// operation. Zero if there has been no read.
func (dev *Device) PreviousReadAddress() uint32 {
	return dev.lastRead
}

func (dev *Device) String() string {
	return fmt.Sprintf("34c04 at %#02x", dev.busAddress)
}
