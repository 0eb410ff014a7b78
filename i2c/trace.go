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

package i2c

import (
	"fmt"
	"strings"
)

// Bus is the interface to the two-wire bus. It is the same interface as
// eeprom.Bus.
type Bus interface {
	Write(address uint8, data []uint8) error
	WriteRead(address uint8, data []uint8, buffer []uint8) error
}

// Transaction is a single exchange on the bus.
type Transaction struct {
	Address uint8

	// data written to the device
	Written []uint8

	// data read from the device. only valid if Combined is true
	Read []uint8

	// whether the transaction was a WriteRead()
	Combined bool

	// the error returned by the bus, if any
	Err error
}

func (tr Transaction) String() string {
	s := strings.Builder{}
	if tr.Combined {
		s.WriteString(fmt.Sprintf("%02x WR [% 02x] [% 02x]", tr.Address, tr.Written, tr.Read))
	} else {
		s.WriteString(fmt.Sprintf("%02x W [% 02x]", tr.Address, tr.Written))
	}
	if tr.Err != nil {
		s.WriteString(fmt.Sprintf(" error: %v", tr.Err))
	}
	return s.String()
}

// the number of transactions kept by the Trace
const historyLength = 64

// Trace wraps a Bus and records the most recent transactions made through it.
//
// Trace implements the Bus interface and so can be used wherever the wrapped
// Bus is used.
type Trace struct {
	Label string

	bus Bus

	// new transactions are added to the end of the array
	history []Transaction
}

// NewTrace is the preferred method of initialisation for the Trace type.
func NewTrace(label string, bus Bus) *Trace {
	return &Trace{
		Label:   label,
		bus:     bus,
		history: make([]Transaction, 0, historyLength),
	}
}

func (tr *Trace) add(t Transaction) {
	if len(tr.history) >= historyLength {
		tr.history = tr.history[1:]
	}
	tr.history = append(tr.history, t)
}

// Write implements the Bus interface.
func (tr *Trace) Write(address uint8, data []uint8) error {
	err := tr.bus.Write(address, data)
	tr.add(Transaction{
		Address: address,
		Written: clone(data),
		Err:     err,
	})
	return err
}

// WriteRead implements the Bus interface.
func (tr *Trace) WriteRead(address uint8, data []uint8, buffer []uint8) error {
	err := tr.bus.WriteRead(address, data, buffer)
	tr.add(Transaction{
		Address:  address,
		Written:  clone(data),
		Read:     clone(buffer),
		Combined: true,
		Err:      err,
	})
	return err
}

// Unwrap returns the Bus that the Trace is wrapping.
func (tr *Trace) Unwrap() Bus {
	return tr.bus
}

// Transactions returns a copy of the recorded transactions, oldest first.
func (tr *Trace) Transactions() []Transaction {
	cp := make([]Transaction, len(tr.history))
	copy(cp, tr.history)
	return cp
}

// Clear the transaction history.
func (tr *Trace) Clear() {
	tr.history = tr.history[:0]
}

// String returns the transaction history, one transaction per line.
func (tr *Trace) String() string {
	s := strings.Builder{}
	for _, t := range tr.history {
		if tr.Label != "" {
			s.WriteString(tr.Label)
			s.WriteString(": ")
		}
		s.WriteString(t.String())
		s.WriteString("\n")
	}
	return s.String()
}

func clone(b []uint8) []uint8 {
	if b == nil {
		return nil
	}
	c := make([]uint8, len(b))
	copy(c, b)
	return c
}
