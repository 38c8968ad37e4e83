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

package files

import (
	"fmt"
	"io"

	"github.com/davidmay/clipdeck/terminal"
)

// the literal framing recognised by the receiving side of the control
// channel. one frame per file; the "all" variant wraps repeated single
// frames.
const (
	startTransfer    = "START_FILE_TRANSFER:%s"
	endTransfer      = "END_FILE_TRANSFER"
	startAllTransfer = "START_ALL_FILE_TRANSFER"
	endAllTransfer   = "END_ALL_FILE_TRANSFER"
)

func (rt *Router) sendOne(argument string, out terminal.Output) {
	name, ok := rt.resolve(argument)
	if !ok {
		out.TermPrintLine(terminal.StyleError, "Invalid file number.")
		return
	}

	rt.send(name, out)
}

func (rt *Router) sendAll(out terminal.Output) {
	if len(rt.snapshot) == 0 {
		out.TermPrintLine(terminal.StyleFeedback, "No files to send.")
		return
	}

	out.TermPrintLine(terminal.StyleTransfer, startAllTransfer)
	for _, name := range rt.snapshot {
		rt.send(name, out)
	}
	out.TermPrintLine(terminal.StyleTransfer, endAllTransfer)
}

// send one file inside its framing lines. the file's raw bytes go to the
// transfer writer untouched.
func (rt *Router) send(name string, out terminal.Output) {
	f, err := rt.store.OpenRead(name)
	if err != nil {
		out.TermPrintLine(terminal.StyleError, "Failed to open file for reading")
		return
	}
	defer f.Close()

	out.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("Sending: %s", name))
	out.TermPrintLine(terminal.StyleTransfer, fmt.Sprintf(startTransfer, name))

	n, err := io.Copy(rt.transfer, f)
	if err == nil && n > 0 {
		// make sure the end frame starts on its own line, even for files
		// that don't end with a newline
		_, err = rt.transfer.Write([]byte("\n"))
	}
	if err != nil {
		out.TermPrintLine(terminal.StyleError, fmt.Sprintf("transfer interrupted: %v", err))
	}

	out.TermPrintLine(terminal.StyleTransfer, endTransfer)
}
