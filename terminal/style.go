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

package terminal

// Style is used by the Output interface to indicate the category of text
// being sent. How (or whether) styles are differentiated is up to the
// implementation.
type Style int

// List of terminal styles.
const (
	// general feedback from the device: confirmations, prompts for the next
	// piece of input, etc.
	StyleFeedback Style = iota

	// an accepted event echoed as a script line.
	StyleScript

	// help text from the command router.
	StyleHelp

	// file transfer framing lines.
	StyleTransfer

	// error messages. implementations should display these even when every
	// other style is suppressed.
	StyleError
)
