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

package device_test

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/davidmay/clipdeck/device"
	"github.com/davidmay/clipdeck/hid"
	"github.com/davidmay/clipdeck/remote"
	"github.com/davidmay/clipdeck/storage"
	"github.com/davidmay/clipdeck/storage/flatfile"
	"github.com/davidmay/clipdeck/terminal"
	"github.com/davidmay/clipdeck/test"
)

// mockTerm is a control channel for driving the device directly, without a
// Run() loop.
type mockTerm struct {
	lines    []string
	transfer test.Writer
}

func (m *mockTerm) TermRead(_ terminal.Prompt) (string, error) {
	return "", io.EOF
}

func (m *mockTerm) TermPrintLine(_ terminal.Style, s string) {
	m.lines = append(m.lines, s)
}

func (m *mockTerm) Initialise() error {
	return nil
}

func (m *mockTerm) CleanUp() {
}

func (m *mockTerm) TransferOutput() io.Writer {
	return &m.transfer
}

func (m *mockTerm) contains(s string) bool {
	for _, l := range m.lines {
		if strings.Contains(l, s) {
			return true
		}
	}
	return false
}

func (m *mockTerm) clear() {
	m.lines = m.lines[:0]
}

// mockSource queues decoded transmissions for the device to drain.
type mockSource struct {
	pending []remote.Decoded
}

func (m *mockSource) NextCode() (remote.Decoded, bool) {
	if len(m.pending) == 0 {
		return remote.Decoded{}, false
	}
	d := m.pending[0]
	m.pending = m.pending[1:]
	return d, true
}

func (m *mockSource) Flush() {
	m.pending = m.pending[:0]
}

func (m *mockSource) push(code remote.Code) {
	m.pending = append(m.pending, remote.Decoded{Code: code})
}

// mockKeyboard records every key sent to it.
type mockKeyboard struct {
	connected bool
	started   bool
	sent      []hid.Key
}

func (m *mockKeyboard) Start() error {
	m.started = true
	return nil
}

func (m *mockKeyboard) Stop() {
	m.started = false
}

func (m *mockKeyboard) IsConnected() bool {
	return m.connected
}

func (m *mockKeyboard) SendKey(k hid.Key) error {
	m.sent = append(m.sent, k)
	return nil
}

type harness struct {
	dev      *device.Device
	term     *mockTerm
	source   *mockSource
	keyboard *mockKeyboard
	store    storage.Store
	prefs    *device.Preferences
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		term:     &mockTerm{},
		source:   &mockSource{},
		keyboard: &mockKeyboard{},
	}

	var err error
	h.store, err = flatfile.NewStore(t.TempDir())
	test.ExpectedSuccess(t, err)

	h.prefs, err = device.NewPreferences(filepath.Join(t.TempDir(), "clipdeck.prefs"))
	test.ExpectedSuccess(t, err)

	h.dev = device.NewDevice(h.term, h.source, h.store, h.keyboard, h.prefs, nil)
	return h
}

// startRecording drives the device from the menu into an active session.
func (h *harness) startRecording(t *testing.T, name string, now time.Time) {
	t.Helper()
	h.dev.Dispatch("1", now)
	h.dev.Service(now)
	h.dev.Dispatch(name, now)
	test.Equate(t, h.dev.Mode() == device.ModeRecording, true)
}

func TestMenuSelection(t *testing.T) {
	h := newHarness(t)
	now := time.Now()

	h.dev.Dispatch("2", now)
	test.Equate(t, h.dev.Mode() == device.ModeFileManagement, true)
	test.ExpectedSuccess(t, h.term.contains("Current log file base is: /premiere_log"))
	test.ExpectedSuccess(t, h.term.contains("No files found."))

	h.dev.Dispatch("menu", now)
	test.Equate(t, h.dev.Mode() == device.ModeMenu, true)

	// invalid selections default to IR mode
	h.dev.Dispatch("x", now)
	test.Equate(t, h.dev.Mode() == device.ModeAwaitingName, true)
	test.ExpectedSuccess(t, h.term.contains("Invalid selection. Defaulting to IR Mode."))
}

func TestSessionLifecycle(t *testing.T) {
	h := newHarness(t)
	now := time.Now()

	h.startRecording(t, "holiday", now)
	test.ExpectedSuccess(t, h.term.contains("Session started: /holiday.txt"))

	// first press at t+0. a second, distinct press outside the regroup
	// threshold stays on track one
	h.source.push(25)
	h.dev.Service(now)
	test.ExpectedSuccess(t, h.term.contains(
		`app.project.activeSequence.videoTracks[1].insertClip("ok.mp4", 0.000);`))

	h.source.push(21)
	h.dev.Service(now.Add(1500 * time.Millisecond))
	test.ExpectedSuccess(t, h.term.contains(
		`app.project.activeSequence.videoTracks[1].insertClip("up.mp4", 1.500);`))

	h.dev.Dispatch("end", now.Add(2*time.Second))
	test.Equate(t, h.dev.Mode() == device.ModeConfirmingEnd, true)
	test.ExpectedSuccess(t, h.term.contains("Session ended: /holiday.txt"))

	h.dev.Dispatch("y", now.Add(3*time.Second))
	test.ExpectedSuccess(t, h.term.contains("File saved."))
	test.Equate(t, h.dev.Mode() == device.ModeAwaitingName, true)

	// the kept log target has both lines
	f, err := h.store.OpenRead("/holiday.txt")
	test.ExpectedSuccess(t, err)
	b, err := io.ReadAll(f)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, f.Close())
	test.Equate(t, strings.Count(string(b), "insertClip"), 2)
}

func TestBurstGrouping(t *testing.T) {
	h := newHarness(t)
	now := time.Now()
	h.startRecording(t, "burst", now)
	h.term.clear()

	// code 25 at t=0 -> track 1. the same code 200ms later is within the
	// hold threshold: exactly one hold event, stacked on track 2. a third
	// repeat 100ms after that is suppressed entirely. a distinct button
	// 1500ms later starts a fresh group on track 1
	h.source.push(25)
	h.dev.Service(now)
	h.source.push(25)
	h.dev.Service(now.Add(200 * time.Millisecond))
	h.source.push(25)
	h.dev.Service(now.Add(300 * time.Millisecond))
	h.source.push(22)
	h.dev.Service(now.Add(1800 * time.Millisecond))

	var script []string
	for _, l := range h.term.lines {
		if strings.Contains(l, "insertClip") {
			script = append(script, l)
		}
	}

	test.Equate(t, len(script), 3)
	test.Equate(t, script[0],
		`app.project.activeSequence.videoTracks[1].insertClip("ok.mp4", 0.000);`)
	test.Equate(t, script[1],
		`app.project.activeSequence.videoTracks[2].insertClip("ok_hold.mp4", 0.200);`)
	test.Equate(t, script[2],
		`app.project.activeSequence.videoTracks[1].insertClip("down.mp4", 1.800);`)
}

func TestDiscardSession(t *testing.T) {
	h := newHarness(t)
	now := time.Now()
	h.startRecording(t, "scratch", now)

	h.source.push(25)
	h.dev.Service(now)

	h.dev.Dispatch("end", now.Add(time.Second))
	h.dev.Dispatch("n", now.Add(2*time.Second))
	test.ExpectedSuccess(t, h.term.contains("File deleted."))

	names, err := h.store.List()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(names), 0)
}

func TestConfirmEndToMenu(t *testing.T) {
	h := newHarness(t)
	now := time.Now()
	h.startRecording(t, "scratch", now)

	h.dev.Dispatch("end", now)
	h.dev.Dispatch("menu", now)

	// "menu" discards the file and skips the grace window
	test.Equate(t, h.dev.Mode() == device.ModeMenu, true)
	names, err := h.store.List()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(names), 0)
}

func TestGraceWindow(t *testing.T) {
	h := newHarness(t)
	now := time.Now()
	h.startRecording(t, "one", now)
	h.dev.Dispatch("end", now)
	h.dev.Dispatch("y", now)
	test.Equate(t, h.dev.Mode() == device.ModeAwaitingName, true)

	// inside the window a session name is not accepted and the device
	// stays where it is
	h.dev.Dispatch("two", now.Add(time.Second))
	test.Equate(t, h.dev.Mode() == device.ModeAwaitingName, true)
	h.term.clear()

	// after the window the name prompt reappears and names are accepted
	// again
	h.dev.Service(now.Add(device.GraceWindow + time.Second))
	h.dev.Service(now.Add(device.GraceWindow + time.Second))
	test.ExpectedSuccess(t, h.term.contains("Enter file name for new session"))
	h.dev.Dispatch("two", now.Add(device.GraceWindow+2*time.Second))
	test.Equate(t, h.dev.Mode() == device.ModeRecording, true)
}

func TestGraceWindowMenu(t *testing.T) {
	h := newHarness(t)
	now := time.Now()
	h.startRecording(t, "one", now)
	h.dev.Dispatch("end", now)
	h.dev.Dispatch("y", now)

	h.dev.Dispatch("menu", now.Add(time.Second))
	test.Equate(t, h.dev.Mode() == device.ModeMenu, true)
}

func TestVolumeUpOnSessionBoundaries(t *testing.T) {
	h := newHarness(t)
	h.keyboard.connected = true
	now := time.Now()

	h.startRecording(t, "clips", now)
	test.Equate(t, len(h.keyboard.sent), 1)
	test.Equate(t, h.keyboard.sent[0] == hid.KeyVolumeUp, true)

	h.dev.Dispatch("end", now.Add(time.Second))
	test.Equate(t, len(h.keyboard.sent), 2)
}

func TestPairing(t *testing.T) {
	h := newHarness(t)
	now := time.Now()

	h.dev.Dispatch("3", now)
	test.Equate(t, h.dev.Mode() == device.ModePairing, true)
	test.Equate(t, h.keyboard.started, true)
	test.Equate(t, h.prefs.Paired(), false)

	h.dev.Service(now)
	test.Equate(t, h.prefs.Paired(), false)

	h.keyboard.connected = true
	h.dev.Service(now)
	test.Equate(t, h.prefs.Paired(), true)
	test.ExpectedSuccess(t, h.term.contains("Keyboard is connected."))

	// leaving the mode stops the keyboard
	h.dev.Dispatch("menu", now)
	test.Equate(t, h.dev.Mode() == device.ModeMenu, true)
	test.Equate(t, h.keyboard.started, false)

	// a later visit mentions the pairing on record
	h.term.clear()
	h.dev.Dispatch("3", now)
	test.ExpectedSuccess(t, h.term.contains("A previously paired host is on record."))
}

func TestBestEffortRecording(t *testing.T) {
	h := newHarness(t)
	now := time.Now()

	// the name resolves to a log target the store refuses to open. the
	// session must still start; events are echoed but nothing persists
	h.dev.Dispatch("1", now)
	h.dev.Service(now)
	h.dev.Dispatch("bad/name", now)
	test.Equate(t, h.dev.Mode() == device.ModeRecording, true)
	test.ExpectedSuccess(t, h.term.contains("Recording will not be saved to a file."))

	h.source.push(25)
	h.dev.Service(now)
	test.ExpectedSuccess(t, h.term.contains("insertClip"))

	h.dev.Dispatch("end", now.Add(time.Second))
	h.dev.Dispatch("menu", now.Add(time.Second))
	test.Equate(t, h.dev.Mode() == device.ModeMenu, true)
}

func TestUnknownCodesDropped(t *testing.T) {
	h := newHarness(t)
	now := time.Now()
	h.startRecording(t, "clips", now)
	h.term.clear()

	h.source.push(99)
	h.dev.Service(now)
	test.Equate(t, len(h.term.lines), 0)
}
