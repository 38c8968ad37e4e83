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

// Package resources resolves paths to the files the program keeps between
// runs: the prefs file and the session log store.
package resources

import (
	"os"
	"path/filepath"
	"strings"
)

// environment variable that overrides the resource base path. useful during
// development and in tests.
const envOverride = "CLIPDECK_RESOURCES"

// the name of the directory, under the user's config directory, where
// resources are kept.
const resourceDir = "clipdeck"

func basePath() (string, error) {
	if p := os.Getenv(envOverride); p != "" {
		return p, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, resourceDir), nil
}

// JoinPath prepends the supplied path with the OS specific base path for the
// program's resources. All folders necessary to reach the end of the path are
// created. The file itself is not touched or created.
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(path...)

	b, err := basePath()
	if err != nil {
		return "", err
	}

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}
