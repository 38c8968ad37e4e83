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

package easyterm

import (
	"os"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/davidmay/clipdeck/test"
)

// the attribute fields must be of the type the termios package operates on.
// these assignments fail to compile if the types drift apart.
func TestTermiosAttributeType(t *testing.T) {
	var trm Terminal
	var _ *unix.Termios = &trm.canAttr
	var _ *unix.Termios = &trm.cbreakAttr
}

func TestInitialiseRequiresFiles(t *testing.T) {
	var trm Terminal
	test.ExpectedFailure(t, trm.Initialise(nil, os.Stdout))
	test.ExpectedFailure(t, trm.Initialise(os.Stdin, nil))
}
