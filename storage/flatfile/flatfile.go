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

// Package flatfile implements the storage.Store interface over a single
// directory on the host filesystem. There are no sub-directories; the store
// is as flat as the SPIFFS partition it stands in for.
package flatfile

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/davidmay/clipdeck/curated"
)

// Store implements the storage.Store interface.
type Store struct {
	dir string
}

// NewStore is the preferred method of initialisation for the Store type. The
// directory is created if it does not exist. An error here means the store
// is unusable and should be treated as fatal by the caller.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, curated.Errorf("storage: %v", err)
	}

	// make sure the directory is actually usable before declaring success
	info, err := os.Stat(dir)
	if err != nil {
		return nil, curated.Errorf("storage: %v", err)
	}
	if !info.IsDir() {
		return nil, curated.Errorf("storage: not a directory (%s)", dir)
	}

	return &Store{dir: dir}, nil
}

// convert a device style name ("/session.txt") to a host path, refusing
// anything that would escape the store directory.
func (st *Store) hostPath(name string) (string, error) {
	name = strings.TrimPrefix(name, "/")
	if name == "" || name != filepath.Base(name) {
		return "", curated.Errorf("storage: invalid name (%s)", name)
	}
	return filepath.Join(st.dir, name), nil
}

// OpenAppend implements the storage.Store interface.
func (st *Store) OpenAppend(name string) (io.WriteCloser, error) {
	p, err := st.hostPath(name)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(p, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, curated.Errorf("storage: %v", err)
	}
	return f, nil
}

// OpenRead implements the storage.Store interface.
func (st *Store) OpenRead(name string) (io.ReadCloser, error) {
	p, err := st.hostPath(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if err != nil {
		return nil, curated.Errorf("storage: %v", err)
	}
	return f, nil
}

// List implements the storage.Store interface. Names are returned in
// lexical order, with the leading "/" of the device style.
func (st *Store) List() ([]string, error) {
	entries, err := os.ReadDir(st.dir)
	if err != nil {
		return nil, curated.Errorf("storage: %v", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, "/"+e.Name())
	}
	sort.Strings(names)

	return names, nil
}

// Remove implements the storage.Store interface.
func (st *Store) Remove(name string) error {
	p, err := st.hostPath(name)
	if err != nil {
		return err
	}

	if err := os.Remove(p); err != nil {
		return curated.Errorf("storage: %v", err)
	}
	return nil
}
