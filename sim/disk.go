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
	"io"
	"os"

	"github.com/jetsetilly/ee34c04/eeprom"
	"github.com/jetsetilly/ee34c04/logger"
)

// Load EEPROM data from disk. A file that does not exist is not an error and
// the data is left unchanged.
func (ee *EEPROM) Load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Logf(ee.log, logTag, "no eeprom file at %s", filename)
			return nil
		}
		return fmt.Errorf("sim: %w", err)
	}
	defer f.Close()

	// get file info. not using Stat() on the file handle because the
	// windows version (when running under wine) does not handle that
	fs, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	if fs.Size() != eeprom.Size {
		return fmt.Errorf("sim: eeprom file is of incorrect length. %d should be %d", fs.Size(), eeprom.Size)
	}

	var d [eeprom.Size]uint8
	_, err = io.ReadFull(f, d[:])
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}

	ee.Data = d
	ee.DiskData = d

	logger.Logf(ee.log, logTag, "eeprom file loaded from %s", filename)

	return nil
}

// Save EEPROM data to disk.
func (ee *EEPROM) Save(filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("sim: %w", err)
		}
	}()

	n, err := f.Write(ee.Data[:])
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	if n != eeprom.Size {
		return fmt.Errorf("sim: eeprom file has been truncated during write. %d should be %d", n, eeprom.Size)
	}

	// copy of data that's just been written to disk
	ee.DiskData = ee.Data

	logger.Logf(ee.log, logTag, "eeprom file saved to %s", filename)

	return nil
}

// IsSaved returns true if disk data is the same as data.
func (ee *EEPROM) IsSaved() bool {
	return ee.Data == ee.DiskData
}
