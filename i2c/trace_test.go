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

package i2c_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/ee34c04/i2c"
	"github.com/jetsetilly/ee34c04/test"
)

// echo bus fills read buffers with the address of the device
type echoBus struct {
	fail bool
}

func (b *echoBus) Write(address uint8, data []uint8) error {
	if b.fail {
		return errors.New("no ack")
	}
	return nil
}

func (b *echoBus) WriteRead(address uint8, data []uint8, buffer []uint8) error {
	if b.fail {
		return errors.New("no ack")
	}
	for i := range buffer {
		buffer[i] = address
	}
	return nil
}

func TestTrace(t *testing.T) {
	bus := &echoBus{}
	tr := i2c.NewTrace("", bus)

	test.ExpectSuccess(t, tr.Write(0x36, []uint8{0x00, 0x00}))

	buf := make([]uint8, 2)
	test.ExpectSuccess(t, tr.WriteRead(0x50, []uint8{0x10}, buf))

	test.ExpectEquality(t, tr.String(), "36 W [00 00]\n50 WR [10] [50 50]\n")

	trs := tr.Transactions()
	test.DemandEquality(t, len(trs), 2)
	test.ExpectEquality(t, trs[1].Combined, true)
	test.ExpectEquality(t, trs[1].Address, 0x50)

	// data in the trace is a copy of the data used in the transaction
	buf[0] = 0xff
	test.ExpectEquality(t, tr.Transactions()[1].Read[0], 0x50)

	tr.Clear()
	test.ExpectEquality(t, tr.String(), "")
}

func TestTraceErrors(t *testing.T) {
	bus := &echoBus{fail: true}
	tr := i2c.NewTrace("bus", bus)

	test.ExpectFailure(t, tr.Write(0x37, []uint8{0x00, 0x00}))
	test.ExpectEquality(t, tr.String(), "bus: 37 W [00 00] error: no ack\n")
}

func TestTraceLength(t *testing.T) {
	tr := i2c.NewTrace("", &echoBus{})
	for i := 0; i < 100; i++ {
		_ = tr.Write(uint8(i), nil)
	}

	trs := tr.Transactions()
	test.DemandEquality(t, len(trs), 64)

	// oldest transactions are dropped first
	test.ExpectEquality(t, trs[0].Address, 36)
	test.ExpectEquality(t, trs[63].Address, 99)
}
