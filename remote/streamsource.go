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

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/davidmay/clipdeck/logger"
)

// how many decoded transmissions can queue before the oldest are dropped.
const streamBacklog = 64

// StreamSource adapts a line-oriented byte stream (a FIFO fed by an external
// IR decoder, for example) to the CodeSource interface. One transmission per
// line: the command code in decimal, optionally followed by the word
// "repeat".
type StreamSource struct {
	codes chan Decoded
}

// NewStreamSource is the preferred method of initialisation for the
// StreamSource type. Reading continues until the underlying stream is
// closed.
func NewStreamSource(r io.Reader) *StreamSource {
	src := &StreamSource{
		codes: make(chan Decoded, streamBacklog),
	}

	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			fields := strings.Fields(scanner.Text())
			if len(fields) == 0 {
				continue
			}

			code, err := strconv.ParseUint(fields[0], 10, 32)
			if err != nil {
				logger.Logf("remote", "unreadable code (%s)", fields[0])
				continue
			}

			dec := Decoded{Code: Code(code)}
			if len(fields) > 1 && strings.EqualFold(fields[1], "repeat") {
				dec.Repeat = true
			}

			select {
			case src.codes <- dec:
			default:
				// a full backlog means the consumer has stalled. dropping
				// is better than blocking the decoder
				logger.Log("remote", "backlog full, transmission dropped")
			}
		}
	}()

	return src
}

// NextCode implements the CodeSource interface.
func (src *StreamSource) NextCode() (Decoded, bool) {
	select {
	case dec := <-src.codes:
		return dec, true
	default:
		return Decoded{}, false
	}
}

// Flush implements the CodeSource interface.
func (src *StreamSource) Flush() {
	for {
		select {
		case <-src.codes:
		default:
			return
		}
	}
}

// NullSource is a CodeSource that never produces a transmission. Used when
// no decoder has been attached.
type NullSource struct{}

// NextCode implements the CodeSource interface.
func (NullSource) NextCode() (Decoded, bool) {
	return Decoded{}, false
}

// Flush implements the CodeSource interface.
func (NullSource) Flush() {
}
