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

// Package remote interprets the decoded output of an infrared receiver.
//
// Classify() turns a numeric command code into a symbolic Button. The
// HoldDetector then filters the stream of classified Observations so that a
// sustained press of one button is reported exactly once, as a hold Event,
// no matter how long the button is held for.
//
// Repeat codes are identified by a RepeatDetector. Decoders that report the
// repeat condition themselves are served by the FlagRepeat strategy; for
// everything else ThresholdRepeat infers the condition from the time between
// observations of the same button.
package remote
