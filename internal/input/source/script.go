package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/diskview/internal/input/key"
)

// Script reads key specs from text and yields one event per spec.
//
// Specs are separated by whitespace; everything after '#' on a line is a
// comment, so scripts cannot send the '#' key. The stream ends at EOF or
// at the first read or parse error, which Err then reports.
type Script struct {
	scanner *bufio.Scanner
	pending []string
	line    int
	err     error
	done    bool
}

// NewScript creates a script source reading from r.
func NewScript(r io.Reader) *Script {
	return &Script{scanner: bufio.NewScanner(r)}
}

// Next returns the event for the next spec in the script.
func (s *Script) Next() (key.Event, bool) {
	if s.done {
		return key.Event{}, false
	}

	for len(s.pending) == 0 {
		if !s.scanner.Scan() {
			s.err = s.scanner.Err()
			s.done = true
			return key.Event{}, false
		}
		s.line++
		text := s.scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		s.pending = strings.Fields(text)
	}

	spec := s.pending[0]
	s.pending = s.pending[1:]

	ev, err := key.Parse(spec)
	if err != nil {
		s.err = fmt.Errorf("script line %d: %w", s.line, err)
		s.done = true
		return key.Event{}, false
	}
	return ev, true
}

// Err returns the error that ended the script, if any.
func (s *Script) Err() error {
	return s.err
}
