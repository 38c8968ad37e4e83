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

// Package ansi defines the ANSI control codes used by the colorterm package.
package ansi

import "fmt"

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// ClearLine erases the current line without moving the cursor.
const ClearLine = "\033[2K"

// Pens is the table of bright colours to be used for text.
var Pens map[string]string

// DimPens is the table of faint colours to be used for text.
var DimPens map[string]string

func init() {
	colours := map[string]int{
		"black":   0,
		"red":     1,
		"green":   2,
		"yellow":  3,
		"blue":    4,
		"magenta": 5,
		"cyan":    6,
		"white":   7,
	}

	Pens = make(map[string]string)
	DimPens = make(map[string]string)

	for name, col := range colours {
		Pens[name] = fmt.Sprintf("\033[1;3%dm", col)
		DimPens[name] = fmt.Sprintf("\033[2;3%dm", col)
	}
}
