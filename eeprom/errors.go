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

// Error patterns for curated errors returned by the package. Use curated.Is()
// to check for them.
const (
	// the error from the Bus implementation is the single value in the error
	// and can be retrieved with errors.Unwrap() or errors.As()
	TransportError = "ee34c04: bus: %v"

	AddressOutOfRange        = "ee34c04: address out of range (%#x)"
	AddressConversionFailure = "ee34c04: address cannot be converted (%#x)"
	PageWriteWindowOverflow  = "ee34c04: access of %d bytes at %#x crosses quadrant boundary"
	PayloadTooLarge          = "ee34c04: payload too large (%d bytes)"
	InvalidPayloadMultiple   = "ee34c04: payload must be 2, 4, 8 or 16 bytes (not %d)"
	DeviceReleased           = "ee34c04: device has been released"
)
