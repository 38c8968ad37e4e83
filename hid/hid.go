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

// Package hid abstracts the bluetooth keyboard that the device presents to
// its paired host. The device sends media keys only, never text.
//
// Implementations of the Keyboard interface wrap whatever transport is
// available. The Disconnected type is the null implementation, used when no
// host is in range or the platform has no bluetooth support. Key sends
// against it are dropped without error; a keypress that nobody receives is
// not a fault.
package hid

// Key identifies a media key in the consumer control page.
type Key int

// List of Key values.
const (
	KeyVolumeUp Key = iota
	KeyVolumeDown
	KeyMute
	KeyPlayPause
)

func (k Key) String() string {
	switch k {
	case KeyVolumeUp:
		return "volume up"
	case KeyVolumeDown:
		return "volume down"
	case KeyMute:
		return "mute"
	case KeyPlayPause:
		return "play/pause"
	}
	return "unknown key"
}

// Keyboard is the connection to the paired host.
type Keyboard interface {
	// Start begins advertising the keyboard to nearby hosts. It is called
	// on entry to pairing mode and is idempotent.
	Start() error

	// Stop withdraws the keyboard. Called when pairing mode is left.
	Stop()

	// IsConnected returns true if a host is currently connected.
	IsConnected() bool

	// SendKey sends a single media keypress to the host. Sending while no
	// host is connected is a silent no-op, not an error.
	SendKey(Key) error
}

// Disconnected is a Keyboard with no transport behind it.
type Disconnected struct{}

// Start implements the Keyboard interface.
func (d Disconnected) Start() error {
	return nil
}

// Stop implements the Keyboard interface.
func (d Disconnected) Stop() {
}

// IsConnected implements the Keyboard interface.
func (d Disconnected) IsConnected() bool {
	return false
}

// SendKey implements the Keyboard interface.
func (d Disconnected) SendKey(_ Key) error {
	return nil
}
