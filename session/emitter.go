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
	"fmt"
	"time"
)

// ScriptLine formats one insertClip command for the editing application's
// scripting console. Pure formatting; persisting and echoing the line is the
// Recorder's job.
func ScriptLine(track int, clipLabel string, clipTime time.Duration) string {
	return fmt.Sprintf("app.project.activeSequence.videoTracks[%d].insertClip(%q, %.3f);",
		track, clipLabel+".mp4", clipTime.Seconds())
}
