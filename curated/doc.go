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

// Package curated offers a way of creating and identifying errors without the
// need for sentinel values or bespoke error types. An error is created with
// the Errorf() function, which looks and feels like fmt.Errorf():
//
//	err := curated.Errorf("recorder: %v", err)
//
// The difference is that the pattern string doubles as the error's identity.
// Deep in the calling chain the error can be recognised with the Is() and
// Has() functions without the two packages sharing anything but the pattern
// string.
//
// When error messages are chained together the Error() function removes
// adjacent duplicate message parts, keeping long chains readable.
package curated
