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
	"io"
	"time"

	"github.com/jetsetilly/ee34c04/curated"
)

// DefaultWriteCycle is the maximum length of the device's internal write cycle
// according to the datasheet.
const DefaultWriteCycle = 5 * time.Millisecond

// Error patterns specific to the Stream type.
const (
	StreamInvalidWhence = "ee34c04: stream: invalid whence (%d)"
	StreamInvalidSeek   = "ee34c04: stream: seek to %d is outside of the eeprom"
)

// the size of the device's write buffer. a write operation that crosses the
// end of a device page will wrap around to the start of the page.
const devicePage = MaxPayload

// Stream presents the Device as an io.Reader, io.Writer and io.Seeker. Reads
// and writes are divided into operations that the device will accept.
type Stream struct {
	dev *Device
	pos uint32

	// how long to wait after every write operation. a value of zero means no
	// waiting at all
	writeCycle time.Duration

	// sleep function can be replaced for testing
	sleep func(time.Duration)
}

// NewStream is the preferred method of initialisation for the Stream type.
// The writeCycle argument is the length of time to wait after every write
// operation. DefaultWriteCycle is the correct value for real hardware.
func NewStream(dev *Device, writeCycle time.Duration) *Stream {
	return &Stream{
		dev:        dev,
		writeCycle: writeCycle,
		sleep:      time.Sleep,
	}
}

// Read implements the io.Reader interface.
func (st *Stream) Read(p []byte) (int, error) {
	if st.pos >= Size {
		return 0, io.EOF
	}

	n := uint32(len(p))
	if n > Size-st.pos {
		n = Size - st.pos
	}

	var done uint32
	for done < n {
		chunk := min(n-done, WindowRemaining(st.pos))

		if chunk < 2 {
			v, err := st.dev.ReadByte(st.pos)
			if err != nil {
				return int(done), err
			}
			p[done] = v
			chunk = 1
		} else {
			err := st.dev.ReadByteArray(st.pos, p[done:done+chunk])
			if err != nil {
				return int(done), err
			}
		}

		done += chunk
		st.pos += chunk
	}

	return int(done), nil
}

// batchSize returns the largest number of bytes that can be written with a
// single call to WriteByteArray() at the current position. returns one if
// WriteByte() should be used.
func (st *Stream) batchSize(remaining uint32) uint32 {
	limit := min(remaining, WindowRemaining(st.pos), devicePage-st.pos%devicePage)
	for _, s := range []uint32{16, 8, 4, 2} {
		if s <= limit {
			return s
		}
	}
	return 1
}

// Write implements the io.Writer interface.
func (st *Stream) Write(p []byte) (int, error) {
	var done uint32
	for done < uint32(len(p)) {
		if st.pos >= Size {
			return int(done), io.EOF
		}

		s := st.batchSize(uint32(len(p)) - done)

		var err error
		if s == 1 {
			err = st.dev.WriteByte(st.pos, p[done])
		} else {
			err = st.dev.WriteByteArray(st.pos, p[done:done+s])
		}
		if err != nil {
			return int(done), err
		}

		if st.writeCycle > 0 {
			st.sleep(st.writeCycle)
		}

		done += s
		st.pos += s
	}

	return int(done), nil
}

// Seek implements the io.Seeker interface. It is not possible to seek
// outside of the EEPROM.
func (st *Stream) Seek(offset int64, whence int) (int64, error) {
	var pos int64

	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(st.pos) + offset
	case io.SeekEnd:
		pos = Size + offset
	default:
		return int64(st.pos), curated.Errorf(StreamInvalidWhence, whence)
	}

	if pos < 0 || pos > Size {
		return int64(st.pos), curated.Errorf(StreamInvalidSeek, pos)
	}

	st.pos = uint32(pos)

	return pos, nil
}
