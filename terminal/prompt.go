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

package terminal

import (
	"strings"
)

// Prompt specifies the prompt text and the prompt style.
type Prompt struct {
	// the content. may be empty, in which case nothing is printed
	Content string

	// whether a recording session is in progress
	Recording bool
}

// String returns the prompt with "standard" decoration. Good for terminals
// with no styling capability at all.
func (p Prompt) String() string {
	if p.Content == "" && !p.Recording {
		return ""
	}

	s := strings.Builder{}
	s.WriteString("[ ")
	if p.Recording {
		s.WriteString("(rec) ")
	}
	s.WriteString(strings.TrimSpace(p.Content))
	s.WriteString(" ] ")
	return s.String()
}
