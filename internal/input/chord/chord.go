package chord

import (
	"strings"

	"github.com/dshills/diskview/internal/input/key"
)

// Chord is the logical identity of one or more synonymous key events.
type Chord string

// Named chords.
const (
	Quit      Chord = "quit"
	Right     Chord = "right"
	Left      Chord = "left"
	Down      Chord = "down"
	Up        Chord = "up"
	ZoomIn    Chord = "zoom-in"
	ZoomOut   Chord = "zoom-out"
	ZoomReset Chord = "zoom-reset"
	Confirm   Chord = "confirm"
	Cancel    Chord = "cancel"
	Delete    Chord = "delete"
	Yes       Chord = "yes"
	No        Chord = "no"
)

const rawPrefix = "raw:"

// named lists the named chords in table order.
var named = []Chord{
	Quit, Right, Left, Down, Up,
	ZoomIn, ZoomOut, ZoomReset,
	Confirm, Cancel, Delete,
	Yes, No,
}

// Named returns every named chord.
func Named() []Chord {
	out := make([]Chord, len(named))
	copy(out, named)
	return out
}

// IsNamed returns true if c is one of the named chords.
func (c Chord) IsNamed() bool {
	for _, n := range named {
		if c == n {
			return true
		}
	}
	return false
}

// IsRaw returns true if c stands for an input outside every synonym group.
func (c Chord) IsRaw() bool {
	return strings.HasPrefix(string(c), rawPrefix)
}

// String returns the chord identifier.
func (c Chord) String() string {
	return string(c)
}

// Raw returns the distinct chord for an event that belongs to no group.
func Raw(ev key.Event) Chord {
	return Chord(rawPrefix + ev.String())
}
