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

package logger_test

import (
	"testing"

	"github.com/davidmay/clipdeck/logger"
	"github.com/davidmay/clipdeck/test"
)

func TestCentral(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}

	logger.Log("session", "session started")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("session: session started\n"))

	tw.Clear()
	logger.Log("storage", "append failed")
	logger.Tail(tw, 1)
	test.ExpectedSuccess(t, tw.Compare("storage: append failed\n"))
}

func TestRepeatCoalescing(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}

	logger.Log("hid", "keyboard not connected")
	logger.Log("hid", "keyboard not connected")
	logger.Log("hid", "keyboard not connected")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("hid: keyboard not connected (repeat x3)\n"))
}

func TestEcho(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}
	logger.SetEcho(tw)
	defer logger.SetEcho(nil)

	logger.Logf("files", "deleted %s", "/premiere_log.txt")
	test.ExpectedSuccess(t, tw.Compare("files: deleted /premiere_log.txt\n"))
}
