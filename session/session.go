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
	"time"
)

// RegroupThreshold decides when track numbering restarts. Events arriving
// closer together than this are stacked on ascending tracks; a gap of at
// least this length starts a fresh group on track one.
//
// Tuned independently of the hold threshold in the remote package. There is
// no relationship between the two values.
const RegroupThreshold = 1000 * time.Millisecond

// Session is one continuous recording interval between an explicit start
// and end.
type Session struct {
	// the name supplied by the user, with the leading path separator. the
	// log target is this name with a ".txt" extension
	Name string

	// when the session started. clip times are relative to this
	StartedAt time.Time

	// rolling state for the track allocator
	lastClipTime time.Duration
	track        int
}

// NewSession is the preferred method of initialisation for the Session type.
func NewSession(name string, now time.Time) *Session {
	return &Session{
		Name:      name,
		StartedAt: now,
		track:     1,

		// backdating the rolling clip time means the first event of the
		// session always lands on track one, even when it arrives within
		// the regroup threshold of the session start
		lastClipTime: -RegroupThreshold,
	}
}

// LogTarget is the name of the session's file in the log store.
func (s *Session) LogTarget() string {
	return s.Name + ".txt"
}

// Allocate computes the clip time and timeline track for an accepted event.
// Near-simultaneous events (inter-arrival below RegroupThreshold) are placed
// on ascending tracks to avoid collisions on a single editing lane; any
// longer gap restarts the group at track one.
//
// The allocation is greedy and order dependent. It must be called exactly
// once per accepted event.
func (s *Session) Allocate(now time.Time) (time.Duration, int) {
	clipTime := now.Sub(s.StartedAt)

	if clipTime-s.lastClipTime < RegroupThreshold {
		s.track++
	} else {
		s.track = 1
	}
	s.lastClipTime = clipTime

	return clipTime, s.track
}
