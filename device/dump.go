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

package device

import (
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/davidmay/clipdeck/terminal"
)

// the filename of the state graph dump, written to the working directory.
const dumpFile = "clipdeck_state.dot"

// dump writes a graphviz representation of the device state to the working
// directory. A development aid, reachable with the "dump" command from the
// menu and while recording.
func (d *Device) dump() {
	f, err := os.Create(dumpFile)
	if err != nil {
		d.term.TermPrintLine(terminal.StyleError, err.Error())
		return
	}
	defer f.Close()

	memviz.Map(f, d)
	d.term.TermPrintLine(terminal.StyleFeedback, "State graph written to "+dumpFile)
}
