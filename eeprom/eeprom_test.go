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

package eeprom_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/ee34c04/curated"
	"github.com/jetsetilly/ee34c04/eeprom"
	"github.com/jetsetilly/ee34c04/i2c"
	"github.com/jetsetilly/ee34c04/logger"
	"github.com/jetsetilly/ee34c04/sim"
	"github.com/jetsetilly/ee34c04/test"
)

// newDevice returns a device attached to a simulated EEPROM through a trace
func newDevice(pins eeprom.Pins) (*eeprom.Device, *sim.EEPROM, *i2c.Trace) {
	ee := sim.NewEEPROM(pins)
	ee.SetLogging(logger.Deny)
	tr := i2c.NewTrace("", ee)
	dev := eeprom.New(tr, pins)
	dev.SetLogging(logger.Deny)
	return dev, ee, tr
}

func TestPins(t *testing.T) {
	test.ExpectEquality(t, eeprom.Pins{}.Address(), 0x50)
	test.ExpectEquality(t, eeprom.Pins{A2: true}.Address(), 0x54)
	test.ExpectEquality(t, eeprom.Pins{A1: true}.Address(), 0x52)
	test.ExpectEquality(t, eeprom.Pins{A0: true}.Address(), 0x51)
	test.ExpectEquality(t, eeprom.Pins{A2: true, A1: true, A0: true}.Address(), 0x57)

	p, err := eeprom.ParsePins("011")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, eeprom.Pins{A2: false, A1: true, A0: true})
	test.ExpectEquality(t, p.String(), "011")

	_, err = eeprom.ParsePins("01")
	test.ExpectFailure(t, err)
	_, err = eeprom.ParsePins("012")
	test.ExpectFailure(t, err)
}

func TestConstruction(t *testing.T) {
	pins := eeprom.Pins{A2: true, A0: true}
	dev, _, tr := newDevice(pins)

	test.ExpectEquality(t, dev.BusAddress(), 0x55)
	test.ExpectEquality(t, dev.PreviousWriteAddress(), 0)
	test.ExpectEquality(t, dev.PreviousReadAddress(), 0)

	// construction and release never touch the bus
	bus := dev.Release()
	test.ExpectEquality(t, len(tr.Transactions()), 0)
	test.ExpectEquality(t, bus, eeprom.Bus(tr))

	// device can't be used after release
	err := dev.WriteByte(0x00, 0x00)
	test.ExpectSuccess(t, curated.Is(err, eeprom.DeviceReleased))
	_, err = dev.ReadByte(0x00)
	test.ExpectSuccess(t, curated.Is(err, eeprom.DeviceReleased))
	err = dev.ReadByteArray(0x00, make([]uint8, 2))
	test.ExpectSuccess(t, curated.Is(err, eeprom.DeviceReleased))
	err = dev.WriteByteArray(0x00, make([]uint8, 2))
	test.ExpectSuccess(t, curated.Is(err, eeprom.DeviceReleased))
	test.ExpectEquality(t, len(tr.Transactions()), 0)
}

func TestWriteByteSequence(t *testing.T) {
	dev, ee, tr := newDevice(eeprom.Pins{})

	test.DemandSuccess(t, dev.WriteByte(0x123, 0xab))
	test.ExpectEquality(t, tr.String(), "37 W [00 00]\n50 W [23 ab]\n")
	test.ExpectEquality(t, ee.Peek(0x123), 0xab)
	test.ExpectEquality(t, dev.PreviousWriteAddress(), 0x123)
}

func TestReadByteSequence(t *testing.T) {
	dev, ee, tr := newDevice(eeprom.Pins{A1: true})
	ee.Poke(0x042, 0x99)

	v, err := dev.ReadByte(0x042)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, 0x99)
	test.ExpectEquality(t, tr.String(), "36 W [00 00]\n52 WR [42] [99]\n")
	test.ExpectEquality(t, dev.PreviousReadAddress(), 0x042)
}

func TestReadByteArraySequence(t *testing.T) {
	dev, ee, tr := newDevice(eeprom.Pins{})
	for i := uint32(0); i < 4; i++ {
		ee.Poke(0x1a0+i, uint8(i+1))
	}

	buf := make([]uint8, 4)
	test.DemandSuccess(t, dev.ReadByteArray(0x1a0, buf))
	test.ExpectEquality(t, tr.String(), "37 W [00 00]\n50 WR [a0] [01]\n50 WR [a0] [01 02 03 04]\n")
	test.ExpectEquality(t, dev.PreviousReadAddress(), 0x1a0)

	tr.Clear()
	err := dev.ReadByteArray(0x1f8, make([]uint8, 8))
	test.ExpectSuccess(t, curated.Is(err, eeprom.PageWriteWindowOverflow))
	test.ExpectEquality(t, tr.String(), "")
	test.ExpectEquality(t, dev.PreviousReadAddress(), 0x1a0)
}

func TestWriteByteArraySequence(t *testing.T) {
	dev, ee, tr := newDevice(eeprom.Pins{})

	test.DemandSuccess(t, dev.WriteByteArray(0x80, []uint8{0x01, 0x02}))
	test.ExpectEquality(t, tr.String(), "36 W [00 00]\n50 W [80 01 02]\n")
	test.ExpectEquality(t, ee.Peek(0x80), 0x01)
	test.ExpectEquality(t, ee.Peek(0x81), 0x02)
	test.ExpectEquality(t, dev.PreviousWriteAddress(), 0x80)
}

func TestWriteByteArrayLengths(t *testing.T) {
	dev, ee, _ := newDevice(eeprom.Pins{})

	for _, n := range []int{2, 4, 8, 16} {
		data := make([]uint8, n)
		for i := range data {
			data[i] = uint8(n)
		}
		test.ExpectSuccess(t, dev.WriteByteArray(0x100, data), n)
		test.ExpectEquality(t, ee.Peek(0x100+uint32(n)-1), uint8(n), n)
	}

	for _, n := range []int{0, 1, 3, 5, 7, 15} {
		err := dev.WriteByteArray(0x00, make([]uint8, n))
		test.ExpectSuccess(t, curated.Is(err, eeprom.InvalidPayloadMultiple), n)
	}

	for _, n := range []int{17, 32} {
		err := dev.WriteByteArray(0x00, make([]uint8, n))
		test.ExpectSuccess(t, curated.Is(err, eeprom.PayloadTooLarge), n)
	}

	// too large is checked before the address
	err := dev.WriteByteArray(0x200, make([]uint8, 17))
	test.ExpectSuccess(t, curated.Is(err, eeprom.PayloadTooLarge))

	err = dev.WriteByteArray(0x200, make([]uint8, 2))
	test.ExpectSuccess(t, curated.Is(err, eeprom.AddressOutOfRange))

	err = dev.WriteByteArray(0x7f, make([]uint8, 8))
	test.ExpectSuccess(t, curated.Is(err, eeprom.PageWriteWindowOverflow))

	test.ExpectEquality(t, dev.PreviousWriteAddress(), 0x100)
}

func TestInvalidMultipleSequence(t *testing.T) {
	dev, _, tr := newDevice(eeprom.Pins{})

	// the page select happens before the length of the payload is checked
	err := dev.WriteByteArray(0x10, []uint8{1, 2, 3})
	test.ExpectSuccess(t, curated.Is(err, eeprom.InvalidPayloadMultiple))
	test.ExpectEquality(t, tr.String(), "36 W [00 00]\n")
	test.ExpectEquality(t, dev.PreviousWriteAddress(), 0)
}

func TestOutOfRange(t *testing.T) {
	dev, _, tr := newDevice(eeprom.Pins{})

	err := dev.WriteByte(0x200, 0x00)
	test.ExpectSuccess(t, curated.Is(err, eeprom.AddressOutOfRange))
	_, err = dev.ReadByte(0x200)
	test.ExpectSuccess(t, curated.Is(err, eeprom.AddressOutOfRange))
	err = dev.ReadByteArray(0x200, make([]uint8, 2))
	test.ExpectSuccess(t, curated.Is(err, eeprom.AddressOutOfRange))

	test.ExpectEquality(t, len(tr.Transactions()), 0)
}

func TestRoundTrip(t *testing.T) {
	dev, _, _ := newDevice(eeprom.Pins{A2: true, A1: true, A0: true})

	for _, a := range []uint32{0x000, 0x07f, 0x080, 0x0ff, 0x100, 0x17f, 0x180, 0x1ff} {
		b := uint8(a) ^ 0x5a
		test.DemandSuccess(t, dev.WriteByte(a, b), a)
		v, err := dev.ReadByte(a)
		test.DemandSuccess(t, err, a)
		test.ExpectEquality(t, v, b, a)
		test.ExpectEquality(t, dev.PreviousWriteAddress(), a, a)
		test.ExpectEquality(t, dev.PreviousReadAddress(), a, a)
	}
}

func TestArrayRoundTrip(t *testing.T) {
	dev, _, _ := newDevice(eeprom.Pins{})

	data := []uint8{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03, 0x04}
	test.DemandSuccess(t, dev.WriteByteArray(0x188, data))

	buf := make([]uint8, len(data))
	test.DemandSuccess(t, dev.ReadByteArray(0x188, buf))
	for i := range data {
		test.ExpectEquality(t, buf[i], data[i], i)
	}
}

func TestReadIdempotence(t *testing.T) {
	dev, ee, _ := newDevice(eeprom.Pins{})
	ee.Poke(0x150, 0x42)
	test.DemandSuccess(t, dev.WriteByte(0x10, 0x01))

	for i := 0; i < 3; i++ {
		v, err := dev.ReadByte(0x150)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, v, 0x42)
		test.ExpectEquality(t, dev.PreviousReadAddress(), 0x150)
		test.ExpectEquality(t, dev.PreviousWriteAddress(), 0x10)
	}

	test.ExpectEquality(t, ee.Peek(0x150), 0x42)
}

func TestTransportFailure(t *testing.T) {
	operations := []struct {
		name      string
		exchanges int
		op        func(dev *eeprom.Device) error
	}{
		{"WriteByte", 2, func(dev *eeprom.Device) error {
			return dev.WriteByte(0x30, 0xff)
		}},
		{"ReadByte", 2, func(dev *eeprom.Device) error {
			_, err := dev.ReadByte(0x30)
			return err
		}},
		{"ReadByteArray", 3, func(dev *eeprom.Device) error {
			return dev.ReadByteArray(0x30, make([]uint8, 4))
		}},
		{"WriteByteArray", 2, func(dev *eeprom.Device) error {
			return dev.WriteByteArray(0x30, make([]uint8, 4))
		}},
	}

	for _, o := range operations {
		for step := 0; step < o.exchanges; step++ {
			dev, ee, _ := newDevice(eeprom.Pins{})

			test.DemandSuccess(t, dev.WriteByte(0x10, 0x01), o.name)
			_, err := dev.ReadByte(0x20)
			test.DemandSuccess(t, err, o.name)

			ee.FailAfter(step)
			err = o.op(dev)
			test.ExpectSuccess(t, curated.Is(err, eeprom.TransportError), o.name, step)
			test.ExpectSuccess(t, curated.Has(err, sim.InjectedFailure), o.name, step)

			// the bus error is passed through unchanged
			test.ExpectSuccess(t, curated.Is(errors.Unwrap(err), sim.InjectedFailure), o.name, step)

			test.ExpectEquality(t, dev.PreviousWriteAddress(), 0x10, o.name, step)
			test.ExpectEquality(t, dev.PreviousReadAddress(), 0x20, o.name, step)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	err := eeprom.ValidateBounds(0x200)
	test.ExpectEquality(t, err.Error(), "ee34c04: address out of range (0x200)")

	err = eeprom.ValidatePageWriteWindow(0x7f, 8)
	test.ExpectEquality(t, err.Error(), "ee34c04: access of 8 bytes at 0x7f crosses quadrant boundary")

	dev, ee, _ := newDevice(eeprom.Pins{})
	ee.FailAfter(0)
	err = dev.WriteByte(0x00, 0x00)
	test.ExpectEquality(t, err.Error(), "ee34c04: bus: sim: injected failure (0x36)")
}
