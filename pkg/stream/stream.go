// Package stream provides a push-back rune stream over an io.Reader.
package stream

import (
	"bufio"
	"io"
)

// Stream is a single-pass, lazy sequence of runes with an unbounded
// LIFO push-back buffer and a sticky end-of-stream flag.
type Stream struct {
	reader *bufio.Reader
	buffer []rune
	eof    bool
}

// New wraps r in a Stream.
func New(r io.Reader) *Stream {
	return &Stream{reader: bufio.NewReader(r)}
}

// Get returns the next rune, or ok=false at end of stream.
func (s *Stream) Get() (r rune, ok bool) {
	if n := len(s.buffer); n > 0 {
		r = s.buffer[n-1]
		s.buffer = s.buffer[:n-1]
		return r, true
	}
	if s.eof {
		return 0, false
	}
	c, _, err := s.reader.ReadRune()
	if err != nil {
		s.eof = true
		return 0, false
	}
	return c, true
}

// Unget pushes c back to the front of the stream; pop order is LIFO.
func (s *Stream) Unget(c rune) {
	s.buffer = append(s.buffer, c)
}

// UngetEOF marks the stream as terminated; further reads after the
// push-back buffer drains return end-of-stream again.
func (s *Stream) UngetEOF() {
	s.eof = true
}
