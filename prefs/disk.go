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

// Package prefs is the preferences system for the program. Preference values
// are registered against a Disk instance and are loaded/saved as simple
// "key :: value" lines in a plain text file.
//
// Many Disk instances can point to the same file. Saving through one instance
// will not clobber keys registered with another.
package prefs

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/davidmay/clipdeck/curated"
)

// WarningBoilerPlate is the first line in a prefs file. A file without this
// line will not be read.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// DefaultPrefsFile is the default filename of the main prefs file,
// relative to the resources path.
const DefaultPrefsFile = "clipdeck.prefs"

// the string that separates the key from the value in a prefs file.
const keySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// path is the location of the prefs file. The file does not need to exist.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// String returns a summary of the Disk instance.
func (dsk Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.sortedKeys() {
		s.WriteString(k)
		s.WriteString(keySep)
		s.WriteString(dsk.entries[k].String())
		s.WriteString("\n")
	}
	return s.String()
}

// Add a preference value to the Disk instance under the specified key.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) {
		return curated.Errorf("prefs: invalid key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: duplicate key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

func (dsk Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// read the prefs file into a map of raw key/value strings. a missing file is
// not an error, it is treated as an empty map.
func (dsk Disk) readFile() (map[string]string, error) {
	raw := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return raw, nil
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file before proceeding
	if scanner.Scan() {
		if scanner.Text() != WarningBoilerPlate {
			return nil, curated.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
		}
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) == 2 {
			raw[kv[0]] = kv[1]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return raw, nil
}

// Save all registered preference values to disk. Keys in the file that have
// not been registered with this Disk instance are preserved.
func (dsk *Disk) Save() error {
	// load existing file contents so that unregistered keys survive the save
	raw, err := dsk.readFile()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		raw[k] = p.String()
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, WarningBoilerPlate+"\n"); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	for _, k := range keys {
		if _, err := io.WriteString(f, k+keySep+raw[k]+"\n"); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}

	return nil
}

// Load registered preference values from disk. Keys found in the file but
// not registered with this Disk instance are ignored.
//
// If strict is false then a missing prefs file is not an error; registered
// values simply keep whatever value they already have.
func (dsk *Disk) Load(strict bool) error {
	if strict {
		if _, err := os.Stat(dsk.path); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}

	raw, err := dsk.readFile()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := raw[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return nil
}
