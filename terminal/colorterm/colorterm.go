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

// Package colorterm implements the terminal.Terminal interface for posix
// terminals. The terminal is run in cbreak mode and output is differentiated
// with ANSI colours.
package colorterm

import (
	"io"
	"os"

	"github.com/davidmay/clipdeck/terminal"
	"github.com/davidmay/clipdeck/terminal/colorterm/easyterm"
	"github.com/davidmay/clipdeck/terminal/colorterm/easyterm/ansi"
)

// ColorTerminal implements the terminal.Terminal interface.
type ColorTerminal struct {
	easyterm.Terminal

	input  *os.File
	output *os.File
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	ct.input = os.Stdin
	ct.output = os.Stdout

	if err := ct.Terminal.Initialise(ct.input, ct.output); err != nil {
		return err
	}

	ct.Terminal.CBreakMode()

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.Terminal.Print(ansi.NormalPen)
	ct.Terminal.CleanUp()
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	ct.Terminal.Print("\r")

	switch style {
	case terminal.StyleFeedback:
		ct.Terminal.Print(ansi.DimPens["white"])
	case terminal.StyleScript:
		ct.Terminal.Print(ansi.Pens["yellow"])
	case terminal.StyleHelp:
		ct.Terminal.Print(ansi.DimPens["white"])
	case terminal.StyleTransfer:
		ct.Terminal.Print(ansi.Pens["cyan"])
	case terminal.StyleError:
		ct.Terminal.Print(ansi.Pens["red"])
		ct.Terminal.Print("* ")
	}

	ct.Terminal.Print(s)
	ct.Terminal.Print(ansi.NormalPen)
	ct.Terminal.Print("\n")
}

// TermRead implements the terminal.Input interface. It provides rudimentary
// line editing: backspace and ctrl-u (kill line).
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	line := make([]byte, 0, 255)
	buf := make([]byte, 1)

	showPrompt := func() {
		ct.Terminal.Print("\r")
		ct.Terminal.Print(ansi.ClearLine)
		ct.Terminal.Print(ansi.DimPens["white"])
		ct.Terminal.Print(prompt.String())
		ct.Terminal.Print(ansi.NormalPen)
		ct.Terminal.Print("%s", string(line))
	}

	showPrompt()

	for {
		n, err := ct.input.Read(buf)
		if err != nil {
			return "", err
		}
		if n == 0 {
			return "", io.EOF
		}

		switch buf[0] {
		case '\n', '\r':
			ct.Terminal.Print("\n")
			return string(line), nil

		case 0x7f, 0x08: // backspace
			if len(line) > 0 {
				line = line[:len(line)-1]
				showPrompt()
			}

		case 0x15: // ctrl-u
			line = line[:0]
			showPrompt()

		case 0x04: // ctrl-d
			if len(line) == 0 {
				ct.Terminal.Print("\n")
				return "", io.EOF
			}

		default:
			// printable characters only
			if buf[0] >= 0x20 && buf[0] < 0x7f {
				line = append(line, buf[0])
				ct.Terminal.Print("%c", buf[0])
			}
		}
	}
}

// TransferOutput implements the terminal.Terminal interface. Raw transfer
// bytes bypass styling entirely.
func (ct *ColorTerminal) TransferOutput() io.Writer {
	return ct.output
}
