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

// Package device is the top-level state machine of the program. It owns the
// current Mode and interprets every input against it:
//
//	ModeMenu            mode selection (1, 2 or 3)
//	ModeAwaitingName    waiting for a session name, or in the grace window
//	ModeRecording       button events become script lines in the session log
//	ModeConfirmingEnd   keep or discard the just-ended session
//	ModeFileManagement  commands are dispatched to the files package
//	ModePairing         waiting for a HID host to connect
//
// There are no package-level mode flags; transitions happen in exactly one
// place per mode, on the Device instance.
//
// The Run() loop is cooperative. Lines from the control channel are pumped
// into a queue by a single goroutine and consumed between poll ticks; the
// poll tick services the decoded-button source, the grace-window deadline
// and the HID connection state. Waiting for input never blocks the tick.
package device
