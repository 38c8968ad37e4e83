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

// Package session turns accepted button events into timestamped insertClip
// script lines for a non-linear editor.
//
// A Session tracks the time of the last accepted event and the current
// timeline track. The Allocate() function implements burst grouping: events
// arriving faster than RegroupThreshold stack on ascending tracks, a longer
// pause restarts numbering at track one.
//
// The Recorder wraps a Session together with its open log target, appending
// each script line to the log and echoing it to the control channel.
package session
