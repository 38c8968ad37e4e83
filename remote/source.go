// This file is part of Clipdeck.
//
// Clipdeck is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Clipdeck is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Clipdeck.  If not, see <https://www.gnu.org/licenses/>.

package remote

// Decoded is what the decoder hands over for every recognised transmission:
// the command code and whether the transmission was a repeat code.
type Decoded struct {
	Code   Code
	Repeat bool
}

// CodeSource is the stream of decoded transmissions from the IR receiver.
// Implementations wrap whatever decoder hardware or driver is in use; the
// demodulation itself is outside the scope of this project.
type CodeSource interface {
	// NextCode returns false if no transmission is pending. It must never
	// block.
	NextCode() (Decoded, bool)

	// Flush discards any pending transmissions. Used when entering a new
	// session so that stale presses don't leak into the log.
	Flush()
}
