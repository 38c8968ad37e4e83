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

// Package files is the command router for file management mode. It dispatches
// trimmed command lines against a small fixed grammar:
//
//	list                 list stored files with 1-based indices
//	delete               delete all stored files
//	delete <n>           delete one file by number
//	send <n>             send one file over the control channel
//	send all             send every file
//	setbase <name>       change the log file base for future sessions
//	menu                 return to mode selection
//
// Numeric arguments are resolved against the snapshot taken by the most
// recent list command. The snapshot is an ordered sequence of any length,
// rebuilt in full on every list.
package files

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davidmay/clipdeck/logger"
	"github.com/davidmay/clipdeck/storage"
	"github.com/davidmay/clipdeck/terminal"
)

// Preferences is the subset of the device preferences that the router
// consults and mutates.
type Preferences interface {
	// LogBase returns the current log file base.
	LogBase() string

	// SetLogBase changes the log file base and persists it immediately. It
	// takes effect for subsequently created sessions only.
	SetLogBase(string) error
}

// Outcome of a dispatched command.
type Outcome int

// List of Outcome values.
const (
	// the command has been handled; stay in file management mode.
	Handled Outcome = iota

	// the user asked to return to mode selection.
	ReturnToMenu
)

// Router dispatches file management commands against the log store.
type Router struct {
	store storage.Store
	prefs Preferences

	// raw byte stream for file transfers. framing lines go through the
	// styled output as normal
	transfer io.Writer

	// names as of the most recent list command. indices given to delete and
	// send are resolved against this, not against the live store
	snapshot []string
}

// NewRouter is the preferred method of initialisation for the Router type.
// The transfer writer carries the raw bytes of sent files; everything else
// the router says goes through the styled output given to Dispatch().
func NewRouter(store storage.Store, prefs Preferences, transfer io.Writer) *Router {
	return &Router{
		store:    store,
		prefs:    prefs,
		transfer: transfer,
	}
}

// Dispatch one trimmed command line. Keywords are case insensitive. Unknown
// commands produce the help text; they are user errors, not program errors,
// and never change state.
func (rt *Router) Dispatch(command string, out terminal.Output) Outcome {
	command = strings.TrimSpace(command)
	keyword, argument, _ := strings.Cut(command, " ")
	argument = strings.TrimSpace(argument)

	switch strings.ToLower(keyword) {
	case "menu":
		return ReturnToMenu

	case "list":
		rt.list(out)

	case "delete":
		if argument == "" {
			rt.deleteAll(out)
		} else {
			rt.deleteOne(argument, out)
		}

	case "send":
		if strings.EqualFold(argument, "all") {
			rt.sendAll(out)
		} else {
			rt.sendOne(argument, out)
		}

	case "setbase":
		rt.setBase(argument, out)

	default:
		rt.help(out)
	}

	return Handled
}

// List prints the stored files with their 1-based indices and rebuilds the
// snapshot used by numeric arguments. Exported because the device runs a
// list automatically on entering file management mode.
func (rt *Router) List(out terminal.Output) {
	rt.list(out)
}

func (rt *Router) list(out terminal.Output) {
	names, err := rt.store.List()
	if err != nil {
		out.TermPrintLine(terminal.StyleError, err.Error())
		return
	}

	rt.snapshot = names

	if len(names) == 0 {
		out.TermPrintLine(terminal.StyleFeedback, "No files found.")
		return
	}

	for i, n := range names {
		out.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("[%d] %s", i+1, n))
	}
}

// resolve a numeric argument against the snapshot. an empty string, a
// non-numeric string or an out of range number all mean the same thing to
// the user: an invalid file number.
func (rt *Router) resolve(argument string) (string, bool) {
	n, err := strconv.Atoi(argument)
	if err != nil || n < 1 || n > len(rt.snapshot) {
		return "", false
	}
	return rt.snapshot[n-1], true
}

func (rt *Router) deleteAll(out terminal.Output) {
	names, err := rt.store.List()
	if err != nil {
		out.TermPrintLine(terminal.StyleError, err.Error())
		return
	}

	for _, n := range names {
		if err := rt.store.Remove(n); err != nil {
			out.TermPrintLine(terminal.StyleError, fmt.Sprintf("Failed to delete file: %s", n))
		}
	}
	rt.snapshot = rt.snapshot[:0]

	out.TermPrintLine(terminal.StyleFeedback, "All files deleted.")
}

func (rt *Router) deleteOne(argument string, out terminal.Output) {
	name, ok := rt.resolve(argument)
	if !ok {
		out.TermPrintLine(terminal.StyleError, "Invalid file number.")
		return
	}

	if err := rt.store.Remove(name); err != nil {
		out.TermPrintLine(terminal.StyleError, fmt.Sprintf("Failed to delete file: %s", name))
		return
	}

	logger.Logf("files", "deleted %s", name)
	out.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("Deleted file: %s", name))

	// show the renumbered listing straight away
	rt.list(out)
}

func (rt *Router) setBase(argument string, out terminal.Output) {
	if argument == "" {
		out.TermPrintLine(terminal.StyleError, "Invalid base name.")
		return
	}

	if err := rt.prefs.SetLogBase(argument); err != nil {
		out.TermPrintLine(terminal.StyleError, err.Error())
		return
	}

	out.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("Log file base changed to: %s", rt.prefs.LogBase()))
}

func (rt *Router) help(out terminal.Output) {
	out.TermPrintLine(terminal.StyleHelp, "Unknown command. Available commands:")
	out.TermPrintLine(terminal.StyleHelp, "  list                 - List all stored files with numbers")
	out.TermPrintLine(terminal.StyleHelp, "  delete               - Delete all stored files")
	out.TermPrintLine(terminal.StyleHelp, "  delete <num>         - Delete a specific file by number")
	out.TermPrintLine(terminal.StyleHelp, "  send <num>           - Send a specific file by number")
	out.TermPrintLine(terminal.StyleHelp, "  send all             - Send all files")
	out.TermPrintLine(terminal.StyleHelp, "  setbase <new_base>   - Change the log file base")
	out.TermPrintLine(terminal.StyleHelp, "  menu                 - Return to the main menu")
}
