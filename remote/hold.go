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

package remote

import (
	"fmt"
	"time"
)

// HoldThreshold is how soon after the previous observation a repeated button
// code is considered a continuation of the same press. Used by the
// ThresholdRepeat strategy; decoders that flag repeats themselves make their
// own judgement.
//
// Note that this value is tuned independently of the track regrouping
// threshold in the session package. There is no relationship between the two.
const HoldThreshold = 700 * time.Millisecond

// Observation is a single classified button sighting, before hold filtering.
type Observation struct {
	Button Button
	At     time.Time

	// the decoder's own opinion on whether this is a repeat code. only
	// meaningful with the FlagRepeat strategy
	Flag bool
}

// Event is an accepted button event, after hold filtering. At most one Event
// with Hold set is produced for an entire continuous hold of a button.
type Event struct {
	Button Button
	Hold   bool
	At     time.Time
}

// Label returns the clip label for the event. eg. "ok" or "ok_hold".
func (ev Event) Label() string {
	if ev.Hold {
		return fmt.Sprintf("%s_hold", ev.Button)
	}
	return ev.Button.String()
}

// RepeatDetector decides whether an observation is a continuation of the
// previous one. Two implementations exist: FlagRepeat and ThresholdRepeat.
// Both are interchangeable; which one to use depends on whether the decoder
// in front of the program reports repeat codes itself.
type RepeatDetector interface {
	IsRepeat(prev Observation, cur Observation) bool
}

// FlagRepeat trusts the repeat flag supplied by the decoder.
type FlagRepeat struct{}

// IsRepeat implements the RepeatDetector interface.
func (FlagRepeat) IsRepeat(_ Observation, cur Observation) bool {
	return cur.Flag
}

// ThresholdRepeat derives the repeat condition heuristically: the same button
// seen again within HoldThreshold of the previous observation.
type ThresholdRepeat struct {
	// Threshold overrides HoldThreshold when greater than zero.
	Threshold time.Duration
}

// IsRepeat implements the RepeatDetector interface.
func (r ThresholdRepeat) IsRepeat(prev Observation, cur Observation) bool {
	threshold := r.Threshold
	if threshold <= 0 {
		threshold = HoldThreshold
	}
	return cur.Button == prev.Button && cur.At.Sub(prev.At) < threshold
}

// HoldDetector filters a stream of Observations into a stream of Events,
// reporting a sustained hold of a button exactly once per continuous run.
type HoldDetector struct {
	detector RepeatDetector

	// rolling state. updated on every observation, whether or not an event
	// is emitted
	prev         Observation
	seen         bool
	holdReported bool
}

// NewHoldDetector is the preferred method of initialisation for the
// HoldDetector type. A nil RepeatDetector defaults to ThresholdRepeat.
func NewHoldDetector(detector RepeatDetector) *HoldDetector {
	if detector == nil {
		detector = ThresholdRepeat{}
	}
	return &HoldDetector{detector: detector}
}

// Reset forgets all rolling state. The next observation is treated as a
// fresh press.
func (hd *HoldDetector) Reset() {
	hd.prev = Observation{}
	hd.seen = false
	hd.holdReported = false
}

// Process one observation. The returned boolean is false if the observation
// has been suppressed (a repeat beyond the first of a hold run).
//
// Observations of ButtonNone must be dropped by the caller before reaching
// the HoldDetector.
func (hd *HoldDetector) Process(cur Observation) (Event, bool) {
	repeat := hd.seen && hd.detector.IsRepeat(hd.prev, cur)

	// rolling state updates on every observation, not only on emission
	hd.prev = cur
	hd.seen = true

	if repeat {
		if hd.holdReported {
			return Event{}, false
		}
		hd.holdReported = true
		return Event{Button: cur.Button, Hold: true, At: cur.At}, true
	}

	hd.holdReported = false
	return Event{Button: cur.Button, At: cur.At}, true
}
