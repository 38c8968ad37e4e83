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

package remote_test

import (
	"testing"
	"time"

	"github.com/davidmay/clipdeck/remote"
	"github.com/davidmay/clipdeck/test"
)

// a fixed epoch for observation times. the hold detector only ever compares
// durations so any base time will do.
var epoch = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func obs(b remote.Button, ms int) remote.Observation {
	return remote.Observation{Button: b, At: epoch.Add(time.Duration(ms) * time.Millisecond)}
}

func TestSinglePress(t *testing.T) {
	hd := remote.NewHoldDetector(nil)

	ev, ok := hd.Process(obs(remote.ButtonOK, 0))
	test.ExpectedSuccess(t, ok)
	test.Equate(t, ev.Hold, false)
	test.Equate(t, ev.Label(), "ok")
}

// an arbitrarily long continuous hold yields exactly one hold event.
func TestContinuousHold(t *testing.T) {
	hd := remote.NewHoldDetector(nil)

	_, ok := hd.Process(obs(remote.ButtonOK, 0))
	test.ExpectedSuccess(t, ok)

	// first repeat within the threshold becomes the one hold event
	ev, ok := hd.Process(obs(remote.ButtonOK, 200))
	test.ExpectedSuccess(t, ok)
	test.Equate(t, ev.Hold, true)
	test.Equate(t, ev.Label(), "ok_hold")

	// every subsequent repeat is suppressed
	for ms := 300; ms < 5000; ms += 100 {
		_, ok = hd.Process(obs(remote.ButtonOK, ms))
		test.ExpectedFailure(t, ok)
	}
}

// a distinct button immediately resets hold tracking.
func TestDistinctButtonResets(t *testing.T) {
	hd := remote.NewHoldDetector(nil)

	hd.Process(obs(remote.ButtonOK, 0))
	hd.Process(obs(remote.ButtonOK, 200))

	// a different button is a plain event even though it arrives within the
	// hold threshold
	ev, ok := hd.Process(obs(remote.ButtonUp, 300))
	test.ExpectedSuccess(t, ok)
	test.Equate(t, ev.Hold, false)
	test.Equate(t, ev.Label(), "up")

	// and the hold state has been re-armed
	ev, ok = hd.Process(obs(remote.ButtonUp, 400))
	test.ExpectedSuccess(t, ok)
	test.Equate(t, ev.Hold, true)
}

// the same button after a gap longer than the threshold is a fresh press.
func TestGapBetweenPresses(t *testing.T) {
	hd := remote.NewHoldDetector(nil)

	hd.Process(obs(remote.ButtonOK, 0))

	ev, ok := hd.Process(obs(remote.ButtonOK, 800))
	test.ExpectedSuccess(t, ok)
	test.Equate(t, ev.Hold, false)
}

// rolling state must update even for suppressed observations. a suppressed
// repeat followed quickly by another repeat is still part of the same run.
func TestRollingStateOnSuppression(t *testing.T) {
	hd := remote.NewHoldDetector(nil)

	hd.Process(obs(remote.ButtonOK, 0))
	hd.Process(obs(remote.ButtonOK, 500))

	// 1100ms is outside the threshold of the first observation but inside
	// the threshold of the suppressed second one
	_, ok := hd.Process(obs(remote.ButtonOK, 1100))
	test.ExpectedFailure(t, ok)
}

func TestFlagRepeat(t *testing.T) {
	hd := remote.NewHoldDetector(remote.FlagRepeat{})

	ev, ok := hd.Process(remote.Observation{Button: remote.ButtonOK, At: epoch})
	test.ExpectedSuccess(t, ok)
	test.Equate(t, ev.Hold, false)

	// the decoder's flag is trusted regardless of timing
	ev, ok = hd.Process(remote.Observation{Button: remote.ButtonOK, At: epoch.Add(2 * time.Second), Flag: true})
	test.ExpectedSuccess(t, ok)
	test.Equate(t, ev.Hold, true)

	_, ok = hd.Process(remote.Observation{Button: remote.ButtonOK, At: epoch.Add(3 * time.Second), Flag: true})
	test.ExpectedFailure(t, ok)
}

func TestReset(t *testing.T) {
	hd := remote.NewHoldDetector(nil)

	hd.Process(obs(remote.ButtonOK, 0))
	hd.Reset()

	// after a reset the same button within the threshold is a fresh press
	ev, ok := hd.Process(obs(remote.ButtonOK, 100))
	test.ExpectedSuccess(t, ok)
	test.Equate(t, ev.Hold, false)
}
