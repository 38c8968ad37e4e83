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

// Code is the decoded numeric command from one press of the remote control.
// Decoding from the raw IR pulse train happens outside of this project.
type Code uint32

// Button identifies one of the keys on the remote control.
type Button int

// The closed set of buttons this program knows about. ButtonNone indicates a
// code with no mapping; callers must drop it silently.
const (
	ButtonNone Button = iota
	ButtonOK
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonHome
	ButtonSettings
	ButtonBack
	ButtonTV
	ButtonPower
)

func (b Button) String() string {
	switch b {
	case ButtonOK:
		return "ok"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonHome:
		return "home"
	case ButtonSettings:
		return "settings"
	case ButtonBack:
		return "back"
	case ButtonTV:
		return "tv"
	case ButtonPower:
		return "power"
	}
	return "none"
}

// the fixed code table for the remote control unit this program is tuned to.
var codeTable = map[Code]Button{
	25: ButtonOK,
	21: ButtonUp,
	22: ButtonDown,
	23: ButtonLeft,
	24: ButtonRight,
	71: ButtonHome,
	16: ButtonSettings,
	72: ButtonBack,
	50: ButtonTV,
	12: ButtonPower,
}

// Classify maps a decoded code to its Button. It is a total function; codes
// with no entry in the table map to ButtonNone. No event is fabricated for
// unknown codes and there are no side effects.
func Classify(code Code) Button {
	if b, ok := codeTable[code]; ok {
		return b
	}
	return ButtonNone
}
