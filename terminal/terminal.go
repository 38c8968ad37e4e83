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

import "io"

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead blocks until a line of input is available and returns it
	// without the line ending. An io.EOF error indicates the control channel
	// has closed.
	TermRead(prompt Prompt) (string, error)
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required of the control channel.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations need to do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for example,
	// making sure the terminal is returned to canonical mode.
	CleanUp()

	// TransferOutput returns the writer to use for raw file-transfer byte
	// streams. Transfer framing lines go through TermPrintLine() as normal.
	TransferOutput() io.Writer
}
