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

package session

import (
	"io"

	"github.com/davidmay/clipdeck/curated"
	"github.com/davidmay/clipdeck/logger"
	"github.com/davidmay/clipdeck/remote"
	"github.com/davidmay/clipdeck/storage"
	"github.com/davidmay/clipdeck/terminal"
)

// Recorder owns the active session and its open log target. It routes every
// accepted button event through the track allocator and the script emitter,
// appending the result to the log and echoing it to the control channel.
type Recorder struct {
	Session *Session

	store storage.Store
	out   terminal.Output

	// nil when the log target could not be opened. the recorder then runs in
	// best-effort mode: every event is still echoed but nothing persists
	log io.WriteCloser
}

// NewRecorder opens the log target for the named session and returns a
// Recorder ready to accept events.
//
// If the log target cannot be opened the Recorder is still returned,
// alongside the error, and the session proceeds in best-effort mode. The
// session is considered active either way.
func NewRecorder(sess *Session, store storage.Store, out terminal.Output) (*Recorder, error) {
	rec := &Recorder{
		Session: sess,
		store:   store,
		out:     out,
	}

	var err error
	rec.log, err = store.OpenAppend(sess.LogTarget())
	if err != nil {
		rec.log = nil
		return rec, curated.Errorf("session: log open: %v", err)
	}

	return rec, nil
}

// Persisting reports whether the recorder has a log target to write to. It
// is false only when the log open failed at session start.
func (rec *Recorder) Persisting() bool {
	return rec.log != nil
}

// RecordEvent allocates a track and clip time for the event, appends the
// script line to the session log and echoes it to the control channel.
//
// The persisted append happens first, then the echo. A failed append is
// reported as an error and the line is dropped from the log, but the echo
// still happens; the event is never silently lost from the live channel.
func (rec *Recorder) RecordEvent(ev remote.Event) error {
	clipTime, track := rec.Session.Allocate(ev.At)
	line := ScriptLine(track, ev.Label(), clipTime)

	var err error
	if rec.log == nil {
		err = curated.Errorf("session: no log target for this session")
	} else if _, werr := io.WriteString(rec.log, line+"\n"); werr != nil {
		err = curated.Errorf("session: log write: %v", werr)
	}

	rec.out.TermPrintLine(terminal.StyleScript, line)

	return err
}

// End the session. If keep is false the log target is removed from the
// store. The Recorder must not be used after End.
func (rec *Recorder) End(keep bool) error {
	if rec.log != nil {
		if err := rec.log.Close(); err != nil {
			logger.Logf("session", "log close: %v", err)
		}
		rec.log = nil
	}

	if keep {
		return nil
	}

	if err := rec.store.Remove(rec.Session.LogTarget()); err != nil {
		return curated.Errorf("session: %v", err)
	}
	return nil
}
