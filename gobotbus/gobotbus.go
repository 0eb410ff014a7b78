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

// Package gobotbus connects the eeprom package to real hardware through the
// I2C support in the gobot framework. Any gobot adaptor that implements the
// i2c.Connector interface can be used. For example, the raspi adaptor:
//
//	r := raspi.NewAdaptor()
//	if err := r.Connect(); err != nil {
//		return err
//	}
//	bus := gobotbus.New(r, -1)
//	defer bus.Close()
//
//	dev := eeprom.New(bus, eeprom.Pins{})
//
// The 34C04 responds on three bus addresses: the read/write function and the
// two set page address functions. A gobot connection is bound to a single
// address so the Bus type opens a connection for each address when it is first
// used.
package gobotbus

import (
	"sort"

	"github.com/jetsetilly/ee34c04/curated"
	"github.com/jetsetilly/ee34c04/logger"
	"gobot.io/x/gobot/v2/drivers/i2c"
)

// Error patterns returned by the Bus type.
const (
	ConnectionError = "gobot: connection to %#02x: %v"
	WriteError      = "gobot: write to %#02x: %v"
	ReadError       = "gobot: read from %#02x: %v"
	ShortWrite      = "gobot: short write to %#02x (%d of %d bytes)"
	ShortRead       = "gobot: short read from %#02x (%d of %d bytes)"
)

const logTag = "gobot"

// the largest read that can be made with an i2c block read
const maxBlockRead = 32

// Bus implements the eeprom.Bus interface for a gobot i2c.Connector.
type Bus struct {
	connector i2c.Connector
	busNr     int

	// connections are opened when an address is first used
	conns map[uint8]i2c.Connection

	log logger.Permission
}

// New is the preferred method of initialisation for the Bus type. If busNr is
// negative then the default bus for the connector is used.
func New(connector i2c.Connector, busNr int) *Bus {
	if busNr < 0 {
		busNr = connector.DefaultI2cBus()
	}
	return &Bus{
		connector: connector,
		busNr:     busNr,
		conns:     make(map[uint8]i2c.Connection),
		log:       logger.Allow,
	}
}

// SetLogging changes the logging permission for the bus.
func (b *Bus) SetLogging(perm logger.Permission) {
	b.log = perm
}

// BusNumber returns the I2C bus being used.
func (b *Bus) BusNumber() int {
	return b.busNr
}

func (b *Bus) connection(address uint8) (i2c.Connection, error) {
	if c, ok := b.conns[address]; ok {
		return c, nil
	}

	c, err := b.connector.GetI2cConnection(int(address), b.busNr)
	if err != nil {
		return nil, curated.Errorf(ConnectionError, address, err)
	}
	b.conns[address] = c

	logger.Logf(b.log, logTag, "connected to %#02x on bus %d", address, b.busNr)

	return c, nil
}

// Write implements the eeprom.Bus interface.
func (b *Bus) Write(address uint8, data []uint8) error {
	c, err := b.connection(address)
	if err != nil {
		return err
	}

	n, err := c.Write(data)
	if err != nil {
		return curated.Errorf(WriteError, address, err)
	}
	if n != len(data) {
		return curated.Errorf(ShortWrite, address, n, len(data))
	}

	return nil
}

// WriteRead implements the eeprom.Bus interface.
//
// A write of a single byte followed by a read of no more than 32 bytes is
// made with an i2c block read, which does not release the bus between the
// write and the read. Other combinations are made with separate write and read
// transactions.
func (b *Bus) WriteRead(address uint8, data []uint8, buffer []uint8) error {
	c, err := b.connection(address)
	if err != nil {
		return err
	}

	if len(data) == 1 && len(buffer) > 0 && len(buffer) <= maxBlockRead {
		err = c.ReadBlockData(data[0], buffer)
		if err != nil {
			return curated.Errorf(ReadError, address, err)
		}
		return nil
	}

	if len(data) > 0 {
		n, err := c.Write(data)
		if err != nil {
			return curated.Errorf(WriteError, address, err)
		}
		if n != len(data) {
			return curated.Errorf(ShortWrite, address, n, len(data))
		}
	}

	if len(buffer) > 0 {
		n, err := c.Read(buffer)
		if err != nil {
			return curated.Errorf(ReadError, address, err)
		}
		if n != len(buffer) {
			return curated.Errorf(ShortRead, address, n, len(buffer))
		}
	}

	return nil
}

// Close all connections. The first error encountered is returned but all
// connections are closed regardless.
func (b *Bus) Close() error {
	// close in address order so that the order of log entries is predictable
	addresses := make([]int, 0, len(b.conns))
	for a := range b.conns {
		addresses = append(addresses, int(a))
	}
	sort.Ints(addresses)

	var rerr error
	for _, a := range addresses {
		err := b.conns[uint8(a)].Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(ConnectionError, a, err)
		}
		logger.Logf(b.log, logTag, "closed connection to %#02x", a)
	}
	clear(b.conns)

	return rerr
}
