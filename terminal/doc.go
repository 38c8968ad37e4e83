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

// Package terminal defines the operations required of the control channel:
// the bidirectional text link over which commands, confirmations and file
// transfers travel.
//
// The transport itself is an external concern. Two implementations are
// provided: plainterm, which leaves the tty in whatever mode it started in
// and works over any pipe or serial link, and colorterm, which drives a
// posix terminal in cbreak mode and differentiates output styles with ANSI
// colours.
package terminal
