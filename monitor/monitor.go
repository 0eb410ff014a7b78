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

package monitor

import (
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/ee34c04/eeprom"
	"github.com/pkg/term"
)

const numQuadrants = eeprom.Size / eeprom.QuadrantSize

const prompt = "[n]ext [p]rev [r]efresh [q]uit\n"

// ANSI sequence to clear the screen and move the cursor to the top left
const clearScreen = "\033[H\033[2J"

// Loop shows the current quadrant and then reads single bytes from keys until
// 'q' is read or keys is exhausted.
func Loop(st *eeprom.Stream, keys io.Reader, out io.Writer) error {
	var quadrant int
	var buf [eeprom.QuadrantSize]uint8
	var key [1]uint8

	for {
		if _, err := st.Seek(int64(quadrant*eeprom.QuadrantSize), io.SeekStart); err != nil {
			return err
		}
		if _, err := io.ReadFull(st, buf[:]); err != nil {
			return err
		}

		Render(out, quadrant, buf[:])
		io.WriteString(out, prompt)

		if _, err := keys.Read(key[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch key[0] {
		case 'n', 'N':
			quadrant = (quadrant + 1) % numQuadrants
		case 'p', 'P':
			quadrant = (quadrant + numQuadrants - 1) % numQuadrants
		case 'q', 'Q':
			return nil
		}
	}
}

// clearing wraps the output of the monitor so that each quadrant is drawn on
// a clear screen.
type clearing struct {
	out io.Writer
}

func (c clearing) Write(p []byte) (int, error) {
	if len(p) > 8 && string(p[:8]) == "quadrant" {
		io.WriteString(c.out, clearScreen)
	}
	return c.out.Write(p)
}

// Run the monitor on the controlling terminal. Output is written to out.
func Run(dev *eeprom.Device, out io.Writer) error {
	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	defer func() {
		_ = tty.Restore()
		_ = tty.Close()
	}()

	st := eeprom.NewStream(dev, eeprom.DefaultWriteCycle)
	return Loop(st, tty, clearing{out: out})
}
