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
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/davidmay/clipdeck/curated"
	"github.com/davidmay/clipdeck/files"
	"github.com/davidmay/clipdeck/hid"
	"github.com/davidmay/clipdeck/logger"
	"github.com/davidmay/clipdeck/remote"
	"github.com/davidmay/clipdeck/session"
	"github.com/davidmay/clipdeck/storage"
	"github.com/davidmay/clipdeck/terminal"
)

// Mode is the top-level state of the device. Exactly one mode is current at
// any time and every input is interpreted against it.
type Mode int

// List of Mode values.
const (
	ModeMenu Mode = iota
	ModeAwaitingName
	ModeRecording
	ModeConfirmingEnd
	ModeFileManagement
	ModePairing
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeAwaitingName:
		return "awaiting name"
	case ModeRecording:
		return "recording"
	case ModeConfirmingEnd:
		return "confirming end"
	case ModeFileManagement:
		return "file management"
	case ModePairing:
		return "pairing"
	}
	return "unknown mode"
}

// GraceWindow is how long the device waits after a session has ended before
// offering a new session. A "menu" command during the window returns to mode
// selection instead.
const GraceWindow = 3 * time.Second

// how often pending work (decoded codes, deadlines, HID state) is serviced.
const pollInterval = 10 * time.Millisecond

// Device is the top-level state machine, tying the control channel, the
// decoded-button source, the log store and the HID keyboard together.
//
// Execution is single threaded. One goroutine pumps lines from the control
// channel into a queue; the Run() loop is the only thing that touches device
// state.
type Device struct {
	term     terminal.Terminal
	source   remote.CodeSource
	store    storage.Store
	keyboard hid.Keyboard
	prefs    *Preferences

	mode Mode

	hold   *remote.HoldDetector
	rec    *session.Recorder
	router *files.Router

	// non-zero while the post-session grace window is open. only meaningful
	// in ModeAwaitingName
	grace time.Time

	// whether the name prompt has been printed since entering
	// ModeAwaitingName
	namePrompted bool

	// whether the current pairing-mode visit has reported a connection
	pairReported bool

	// read by the line pump to decorate the prompt
	recording atomic.Bool

	lines chan string
}

// NewDevice is the preferred method of initialisation for the Device type.
//
// The detector argument selects the hold detection strategy. A nil detector
// means the default threshold heuristic.
func NewDevice(term terminal.Terminal, source remote.CodeSource, store storage.Store,
	keyboard hid.Keyboard, prf *Preferences, detector remote.RepeatDetector) *Device {

	d := &Device{
		term:     term,
		source:   source,
		store:    store,
		keyboard: keyboard,
		prefs:    prf,
		hold:     remote.NewHoldDetector(detector),
		lines:    make(chan string),
	}
	d.router = files.NewRouter(store, prf, term.TransferOutput())

	return d
}

// Mode returns the current top-level state of the device.
func (d *Device) Mode() Mode {
	return d.mode
}

// Run the device until the control channel closes. The error return is for
// failures of the control channel itself; everything else is reported on the
// channel and the loop carries on.
func (d *Device) Run() error {
	readErr := make(chan error, 1)
	go d.pump(readErr)

	tck := time.NewTicker(pollInterval)
	defer tck.Stop()

	d.enterMenu()

	for {
		select {
		case input, ok := <-d.lines:
			if !ok {
				err := <-readErr
				if err == io.EOF {
					return nil
				}
				return curated.Errorf("device: %v", err)
			}
			d.Dispatch(input, time.Now())

		case <-tck.C:
			d.Service(time.Now())
		}
	}
}

// pump lines from the control channel into the line queue. runs in its own
// goroutine; the queue is closed when the channel can no longer be read.
func (d *Device) pump(readErr chan error) {
	for {
		input, err := d.term.TermRead(terminal.Prompt{
			Content:   "clipdeck",
			Recording: d.recording.Load(),
		})
		if err != nil {
			readErr <- err
			close(d.lines)
			return
		}
		d.lines <- input
	}
}

// Dispatch one line of input against the current mode. Run() calls this for
// every line read from the control channel; it can equally be driven
// directly, with Service(), when the device is embedded without one.
func (d *Device) Dispatch(input string, now time.Time) {
	input = strings.TrimSpace(input)

	// the state graph dump is available wherever it can't collide with
	// another grammar
	if strings.EqualFold(input, "dump") && (d.mode == ModeMenu || d.mode == ModeRecording) {
		d.dump()
		return
	}

	switch d.mode {
	case ModeMenu:
		d.menuSelect(input)

	case ModeAwaitingName:
		d.nameInput(input, now)

	case ModeRecording:
		if strings.EqualFold(input, "end") {
			d.endSession(now)
		}
		// anything else on the control channel during recording is noise

	case ModeConfirmingEnd:
		d.confirmEnd(input, now)

	case ModeFileManagement:
		if d.router.Dispatch(input, d.term) == files.ReturnToMenu {
			d.enterMenu()
		}

	case ModePairing:
		if strings.EqualFold(input, "menu") {
			d.keyboard.Stop()
			d.enterMenu()
		}
	}
}

// Service pending work between lines of input: decoded codes while
// recording, the grace window deadline, the HID connection state. Run()
// calls this on every poll tick.
func (d *Device) Service(now time.Time) {
	switch d.mode {
	case ModeRecording:
		d.serviceCodes(now)

	case ModeAwaitingName:
		if !d.grace.IsZero() && now.After(d.grace) {
			d.grace = time.Time{}
		}
		if d.grace.IsZero() && !d.namePrompted {
			d.term.TermPrintLine(terminal.StyleFeedback,
				"Enter file name for new session (or type 'menu' to return to menu):")
			d.namePrompted = true
		}

	case ModePairing:
		d.servicePairing()
	}
}

// drain the decoded-button source through the classifier, the hold detector
// and the recorder.
func (d *Device) serviceCodes(now time.Time) {
	for {
		dec, ok := d.source.NextCode()
		if !ok {
			return
		}

		button := remote.Classify(dec.Code)
		if button == remote.ButtonNone {
			// unknown codes are not errors
			continue
		}

		ev, ok := d.hold.Process(remote.Observation{
			Button: button,
			At:     now,
			Flag:   dec.Repeat,
		})
		if !ok {
			continue
		}

		if err := d.rec.RecordEvent(ev); err != nil {
			d.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}
}

// one iteration of pairing-mode housekeeping.
func (d *Device) servicePairing() {
	if !d.keyboard.IsConnected() || d.pairReported {
		return
	}

	d.pairReported = true
	if err := d.prefs.SetPaired(true); err != nil {
		d.term.TermPrintLine(terminal.StyleError, err.Error())
	}
	d.term.TermPrintLine(terminal.StyleFeedback, "Keyboard is connected.")
}

// enterMenu prints the mode-selection menu and makes ModeMenu current.
func (d *Device) enterMenu() {
	d.mode = ModeMenu
	d.recording.Store(false)

	d.term.TermPrintLine(terminal.StyleFeedback, "")
	d.term.TermPrintLine(terminal.StyleFeedback, "========== MENU ==========")
	d.term.TermPrintLine(terminal.StyleFeedback, "Select Mode:")
	d.term.TermPrintLine(terminal.StyleFeedback, "1 - IR Mode (Record IR signals)")
	d.term.TermPrintLine(terminal.StyleFeedback, "2 - File Management Mode")
	d.term.TermPrintLine(terminal.StyleFeedback, "3 - HID Connect/Pair")
	d.term.TermPrintLine(terminal.StyleFeedback, "Enter your choice:")
}

// menuSelect interprets a line of input as a mode selection.
func (d *Device) menuSelect(input string) {
	if input == "" {
		return
	}

	switch input[0] {
	case '1':
		d.term.TermPrintLine(terminal.StyleFeedback, "IR Mode selected.")
		d.enterAwaitingName(time.Time{})

	case '2':
		d.term.TermPrintLine(terminal.StyleFeedback, "File Management Mode selected.")
		d.term.TermPrintLine(terminal.StyleFeedback,
			"Current log file base is: "+d.prefs.LogBase())
		d.term.TermPrintLine(terminal.StyleHelp, "Available commands:")
		d.term.TermPrintLine(terminal.StyleHelp,
			"  list, delete, delete <num>, send <num>, send all, setbase <new_base>, menu")
		d.term.TermPrintLine(terminal.StyleHelp, "Type 'menu' to return to main menu.")
		d.mode = ModeFileManagement
		d.router.List(d.term)

	case '3':
		d.term.TermPrintLine(terminal.StyleFeedback, "HID Connect/Pair selected.")
		if d.prefs.Paired() {
			d.term.TermPrintLine(terminal.StyleFeedback, "A previously paired host is on record.")
		}
		if err := d.keyboard.Start(); err != nil {
			d.term.TermPrintLine(terminal.StyleError, err.Error())
			d.enterMenu()
			return
		}
		d.term.TermPrintLine(terminal.StyleFeedback, "Waiting for a host to connect...")
		d.term.TermPrintLine(terminal.StyleHelp, "Type 'menu' to return to main menu.")
		d.mode = ModePairing
		d.pairReported = false

	default:
		d.term.TermPrintLine(terminal.StyleError, "Invalid selection. Defaulting to IR Mode.")
		d.enterAwaitingName(time.Time{})
	}
}

// enterAwaitingName makes ModeAwaitingName current. A non-zero grace opens
// the post-session grace window; the name prompt waits until it has elapsed.
func (d *Device) enterAwaitingName(grace time.Time) {
	d.mode = ModeAwaitingName
	d.recording.Store(false)
	d.grace = grace
	d.namePrompted = false
}

// nameInput interprets a line of input as a session name.
func (d *Device) nameInput(input string, now time.Time) {
	if !d.grace.IsZero() {
		// only a return to the menu interrupts the grace window
		if strings.EqualFold(input, "menu") {
			d.enterMenu()
		}
		return
	}

	if strings.EqualFold(input, "menu") {
		d.enterMenu()
		return
	}

	if input == "" {
		return
	}

	if input[0] != '/' {
		input = "/" + input
	}

	d.startSession(input, now)
}

// startSession opens the log target and makes ModeRecording current. A log
// target that cannot be opened is reported but does not stop the session;
// recording continues best-effort with every event echoed and none
// persisted.
func (d *Device) startSession(name string, now time.Time) {
	sess := session.NewSession(name, now)

	var err error
	d.rec, err = session.NewRecorder(sess, d.store, d.term)
	if err != nil {
		d.term.TermPrintLine(terminal.StyleError, err.Error())
		d.term.TermPrintLine(terminal.StyleError,
			"Recording will not be saved to a file.")
	}

	d.hold.Reset()
	d.mode = ModeRecording
	d.recording.Store(true)

	logger.Logf("device", "session started: %s", sess.LogTarget())
	d.term.TermPrintLine(terminal.StyleFeedback, "Session started: "+sess.LogTarget())

	d.sendVolumeUp()

	// stale presses must not leak into the new session
	d.source.Flush()
}

// endSession stops accepting button events and asks about the log target's
// fate.
func (d *Device) endSession(_ time.Time) {
	d.recording.Store(false)
	d.term.TermPrintLine(terminal.StyleFeedback,
		"Session ended: "+d.rec.Session.LogTarget())

	d.sendVolumeUp()

	d.term.TermPrintLine(terminal.StyleFeedback,
		"Do you want to save the recorded file? (y/n) or type 'menu' to return to main menu")
	d.mode = ModeConfirmingEnd
}

// confirmEnd resolves the keep/discard question. Anything other than an
// explicit "y" discards the log target; "menu" additionally skips the grace
// window and returns straight to mode selection.
func (d *Device) confirmEnd(input string, now time.Time) {
	keep := strings.EqualFold(input, "y")
	toMenu := strings.EqualFold(input, "menu")

	err := d.rec.End(keep)
	d.rec = nil

	if keep {
		d.term.TermPrintLine(terminal.StyleFeedback, "File saved.")
	} else if err != nil {
		d.term.TermPrintLine(terminal.StyleError, "Error deleting file.")
		logger.Log("device", err.Error())
	} else {
		d.term.TermPrintLine(terminal.StyleFeedback, "File deleted.")
	}

	if toMenu {
		d.enterMenu()
		return
	}

	d.term.TermPrintLine(terminal.StyleFeedback,
		"Type 'menu' to return to main menu, or press Enter to start a new session.")
	d.enterAwaitingName(now.Add(GraceWindow))
}

// sendVolumeUp fires the volume-up media key at the paired host, if one is
// connected. Fired once at session start and once at session end.
func (d *Device) sendVolumeUp() {
	if !d.keyboard.IsConnected() {
		d.term.TermPrintLine(terminal.StyleFeedback,
			"Keyboard not connected; cannot send Volume Up.")
		return
	}

	d.term.TermPrintLine(terminal.StyleFeedback, "Sending Volume Up...")
	if err := d.keyboard.SendKey(hid.KeyVolumeUp); err != nil {
		d.term.TermPrintLine(terminal.StyleError, err.Error())
		return
	}
	d.term.TermPrintLine(terminal.StyleFeedback, "Volume Up sent.")
}
