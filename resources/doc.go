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

// Package resources resolves the location of files used by the application.
// The image file of the simulated EEPROM is the main example.
//
// Resources are found in the ".ee34c04" directory in the current working
// directory if it exists. This is the "portable" location. Otherwise
// resources are found in the "ee34c04" directory in the user's configuration
// directory, as returned by os.UserConfigDir().
package resources
