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

// Package storage defines the primitives the program requires of its durable
// session-log store. Names are device style paths with a leading "/", eg.
// "/premiere_log.txt".
//
// The flatfile sub-package is the implementation used in practice, backed by
// a directory on the host filesystem.
package storage

import "io"

// Store is the set of primitives required of the log store. Implementations
// need not be safe for concurrent use; the program has a single thread of
// control.
type Store interface {
	// OpenAppend opens the named file for appending, creating it if
	// necessary.
	OpenAppend(name string) (io.WriteCloser, error)

	// OpenRead opens the named file for reading.
	OpenRead(name string) (io.ReadCloser, error)

	// List returns the names of all stored files in a stable order. The
	// returned slice is a fresh snapshot and grows without limit.
	List() ([]string, error)

	// Remove deletes the named file.
	Remove(name string) error
}
