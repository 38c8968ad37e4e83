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

package device

import (
	"github.com/davidmay/clipdeck/curated"
	"github.com/davidmay/clipdeck/prefs"
	"github.com/davidmay/clipdeck/resources"
)

// the default log file base for newly created sessions.
const defaultLogBase = "/premiere_log"

// Preferences are the durable settings of the device. Loaded once at
// startup and saved on every change.
type Preferences struct {
	dsk *prefs.Disk

	// the base used to name session log files. changed with the setbase
	// command; takes effect for subsequently created sessions only
	logBase prefs.String

	// whether a HID host has ever confirmed a pairing
	paired prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path means the default location under the
// user's configuration directory.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	var err error

	if path == "" {
		path, err = resources.JoinPath(prefs.DefaultPrefsFile)
		if err != nil {
			return nil, curated.Errorf("device: %v", err)
		}
	}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, curated.Errorf("device: %v", err)
	}

	err = p.dsk.Add("clipdeck.logbase", &p.logBase)
	if err != nil {
		return nil, curated.Errorf("device: %v", err)
	}

	err = p.dsk.Add("clipdeck.hid.paired", &p.paired)
	if err != nil {
		return nil, curated.Errorf("device: %v", err)
	}

	err = p.logBase.Set(defaultLogBase)
	if err != nil {
		return nil, curated.Errorf("device: %v", err)
	}

	err = p.dsk.Load(false)
	if err != nil {
		return nil, curated.Errorf("device: %v", err)
	}

	return p, nil
}

// LogBase returns the current log file base.
func (p *Preferences) LogBase() string {
	return p.logBase.String()
}

// SetLogBase changes the log file base and persists it immediately.
func (p *Preferences) SetLogBase(base string) error {
	if err := p.logBase.Set(base); err != nil {
		return curated.Errorf("device: %v", err)
	}
	if err := p.dsk.Save(); err != nil {
		return curated.Errorf("device: %v", err)
	}
	return nil
}

// Paired returns true if a HID host has ever confirmed a pairing.
func (p *Preferences) Paired() bool {
	return p.paired.Get().(bool)
}

// SetPaired records the pairing-confirmed flag and persists it immediately.
func (p *Preferences) SetPaired(paired bool) error {
	if err := p.paired.Set(paired); err != nil {
		return curated.Errorf("device: %v", err)
	}
	if err := p.dsk.Save(); err != nil {
		return curated.Errorf("device: %v", err)
	}
	return nil
}
