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

package sim

import (
	"fmt"

	"github.com/jetsetilly/ee34c04/curated"
	"github.com/jetsetilly/ee34c04/eeprom"
	"github.com/jetsetilly/ee34c04/logger"
	"github.com/lpabon/godbc"
)

// Error patterns returned by the simulated device.
const (
	NoAcknowledge   = "sim: no acknowledge from %#02x"
	InjectedFailure = "sim: injected failure (%#02x)"
)

const logTag = "sim"

// the size of the device's page write buffer
const writeBufferSize = 16

// EEPROM represents the simulated device.
type EEPROM struct {
	// bus address of the read/write function
	Address uint8

	// amend Data only through Poke() or a bus write
	Data [eeprom.Size]uint8

	// the data as it is on disk. Data is mutable and we need a way of
	// comparing what's on disk with what's in memory.
	DiskData [eeprom.Size]uint8

	// the half of memory selected by the most recent page select. zero is the
	// lower half
	Page uint8

	// word address pointer within the selected half
	Pointer uint8

	// number of exchanges before an injected failure. negative value means no
	// failure will be injected
	failAfter int

	log logger.Permission
}

// NewEEPROM is the preferred method of initialisation for the EEPROM type. The
// device will respond to the read/write bus address indicated by the pins.
func NewEEPROM(pins eeprom.Pins) *EEPROM {
	ee := &EEPROM{
		Address:   pins.Address(),
		failAfter: -1,
		log:       logger.Allow,
	}

	// a new device is filled with 0xff
	for i := range ee.Data {
		ee.Data[i] = 0xff
	}
	ee.DiskData = ee.Data

	return ee
}

func (ee *EEPROM) String() string {
	return fmt.Sprintf("sim 34c04 at %#02x: page %d pointer %#02x", ee.Address, ee.Page, ee.Pointer)
}

// SetLogging changes the logging permission for the simulated device.
func (ee *EEPROM) SetLogging(perm logger.Permission) {
	ee.log = perm
}

// FailAfter injects a failure into the n'th bus exchange from now. A value of
// zero will cause the very next exchange to fail. A negative value removes any
// pending failure.
func (ee *EEPROM) FailAfter(n int) {
	ee.failAfter = n
}

// exchange is called at the start of every bus exchange and returns an error
// if a failure has been injected.
func (ee *EEPROM) exchange(address uint8) error {
	if ee.failAfter < 0 {
		return nil
	}
	if ee.failAfter == 0 {
		ee.failAfter = -1
		logger.Logf(ee.log, logTag, "injected failure at %#02x", address)
		return curated.Errorf(InjectedFailure, address)
	}
	ee.failAfter--
	return nil
}

// index returns the index into Data for the current pointer.
func (ee *EEPROM) index() int {
	godbc.Require(ee.Page < 2, "page select out of range", ee.Page)
	return int(ee.Page)<<8 | int(ee.Pointer)
}

// selectPage handles the set page address functions. returns false if the bus
// address is not a page select address.
func (ee *EEPROM) selectPage(address uint8) bool {
	switch address {
	case eeprom.PageSelectBase:
		ee.Page = 0
	case eeprom.PageSelectBase | 1:
		ee.Page = 1
	default:
		return false
	}
	logger.Logf(ee.log, logTag, "page %d selected", ee.Page)
	return true
}

// Write implements the eeprom.Bus interface.
func (ee *EEPROM) Write(address uint8, data []uint8) error {
	if err := ee.exchange(address); err != nil {
		return err
	}

	if ee.selectPage(address) {
		// data sent to the page select functions is ignored
		return nil
	}

	if address != ee.Address {
		return curated.Errorf(NoAcknowledge, address)
	}

	// a write with no data sets nothing
	if len(data) == 0 {
		return nil
	}

	ee.Pointer = data[0]
	for _, v := range data[1:] {
		ee.put(v)
	}

	if len(data) > 1 {
		logger.Logf(ee.log, logTag, "written %d bytes", len(data)-1)
	}

	return nil
}

// WriteRead implements the eeprom.Bus interface.
func (ee *EEPROM) WriteRead(address uint8, data []uint8, buffer []uint8) error {
	if err := ee.exchange(address); err != nil {
		return err
	}

	if address != ee.Address {
		return curated.Errorf(NoAcknowledge, address)
	}

	// only the word address is meaningful in the write part of a combined
	// transaction
	if len(data) > 0 {
		ee.Pointer = data[0]
	}

	for i := range buffer {
		buffer[i] = ee.get()
	}

	logger.Logf(ee.log, logTag, "read %d bytes", len(buffer))

	return nil
}

// put writes the value at the pointer. the pointer wraps at the end of the
// write buffer.
func (ee *EEPROM) put(v uint8) {
	ee.Data[ee.index()] = v
	ee.Pointer = (ee.Pointer &^ (writeBufferSize - 1)) | ((ee.Pointer + 1) & (writeBufferSize - 1))
}

// get returns the value at the pointer. the pointer wraps at the end of the
// selected half of memory.
func (ee *EEPROM) get() uint8 {
	v := ee.Data[ee.index()]
	ee.Pointer++
	return v
}

// Peek returns the value at the linear address without affecting the state
// of the device.
func (ee *EEPROM) Peek(address uint32) uint8 {
	return ee.Data[address%eeprom.Size]
}

// Poke a value into the linear address without affecting the state of the
// device.
func (ee *EEPROM) Poke(address uint32, data uint8) {
	ee.Data[address%eeprom.Size] = data
}
