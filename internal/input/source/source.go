// Package source provides blocking sequences of key events.
//
// A Source yields one event per call and signals end-of-stream by
// returning false. Sources are not restartable: once exhausted they stay
// exhausted, and no event is ever replayed.
package source

import (
	"github.com/dshills/diskview/internal/input/key"
)

// Source is a blocking pull of the next key event.
type Source interface {
	// Next blocks until an event is available. It returns false when the
	// stream has ended; every later call also returns false.
	Next() (key.Event, bool)
}

// Func adapts a function to the Source interface.
// Use Once to guarantee the stream stays ended.
type Func func() (key.Event, bool)

// Next calls f.
func (f Func) Next() (key.Event, bool) {
	return f()
}

type once struct {
	src  Source
	done bool
}

// Once wraps a source so that it yields nothing after its first end-of-stream.
func Once(src Source) Source {
	if o, ok := src.(*once); ok {
		return o
	}
	return &once{src: src}
}

func (o *once) Next() (key.Event, bool) {
	if o.done {
		return key.Event{}, false
	}
	ev, ok := o.src.Next()
	if !ok {
		o.done = true
		o.src = nil
		return key.Event{}, false
	}
	return ev, true
}

// Slice yields a fixed list of events, then ends.
type Slice struct {
	events []key.Event
	pos    int
}

// NewSlice creates a source over the given events.
func NewSlice(events ...key.Event) *Slice {
	return &Slice{events: events}
}

// Next returns the next event of the slice.
func (s *Slice) Next() (key.Event, bool) {
	if s.pos >= len(s.events) {
		return key.Event{}, false
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, true
}

// Remaining returns the number of events not yet read.
func (s *Slice) Remaining() int {
	return len(s.events) - s.pos
}

// Chan yields events received from a channel and ends when it is closed.
type Chan struct {
	ch   <-chan key.Event
	done bool
}

// NewChan creates a source reading from ch.
func NewChan(ch <-chan key.Event) *Chan {
	return &Chan{ch: ch}
}

// Next blocks until an event arrives or the channel is closed.
func (c *Chan) Next() (key.Event, bool) {
	if c.done {
		return key.Event{}, false
	}
	ev, ok := <-c.ch
	if !ok {
		c.done = true
		return key.Event{}, false
	}
	return ev, true
}
