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

// Package plainterm implements the terminal.Terminal interface in the
// simplest way possible. It keeps the tty in whatever mode it started,
// probably cooked mode, which makes it equally usable over a pipe or a
// serial link.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/davidmay/clipdeck/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic control channel implementation.
type PlainTerminal struct {
	input     io.Reader
	output    io.Writer
	scanner   *bufio.Scanner
	realInput bool
}

// Initialise performs any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	pt.input = os.Stdin
	pt.output = os.Stdout
	pt.scanner = bufio.NewScanner(pt.input)
	pt.realInput = term.IsTerminal(int(os.Stdin.Fd()))
	return nil
}

// InitialiseWith sets up the terminal over the supplied reader/writer rather
// than the process's stdin/stdout. Useful for tests and for driving the
// channel over something other than a tty.
func (pt *PlainTerminal) InitialiseWith(input io.Reader, output io.Writer) error {
	pt.input = input
	pt.output = output
	pt.scanner = bufio.NewScanner(input)
	pt.realInput = false
	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	}

	pt.output.Write([]byte(s))
	pt.output.Write([]byte("\n"))
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	// only show the prompt when a human is on the other end. over a pipe or
	// serial link the prompt is just noise
	if pt.realInput {
		pt.output.Write([]byte(prompt.String()))
	}

	if !pt.scanner.Scan() {
		if err := pt.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return pt.scanner.Text(), nil
}

// TransferOutput implements the terminal.Terminal interface.
func (pt *PlainTerminal) TransferOutput() io.Writer {
	return pt.output
}
