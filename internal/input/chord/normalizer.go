package chord

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/diskview/internal/input/key"
)

// Normalizer errors
var (
	ErrUnknownChord     = errors.New("unknown chord")
	ErrConflictingAlias = errors.New("key already belongs to another chord")
)

// defaultGroups holds the built-in synonym groups.
var defaultGroups = map[Chord][]string{
	Quit:      {"C-c", "q"},
	Right:     {"l", "Right", "C-f"},
	Left:      {"h", "Left", "C-b"},
	Down:      {"j", "Down", "C-n"},
	Up:        {"k", "Up", "C-p"},
	ZoomIn:    {"+"},
	ZoomOut:   {"-"},
	ZoomReset: {"0"},
	Confirm:   {"Enter"},
	Cancel:    {"Esc"},
	Delete:    {"Backspace"},
	Yes:       {"y"},
	No:        {"n"},
}

// Normalizer maps raw key events to chords.
type Normalizer struct {
	// index maps a canonical event string to its chord.
	index map[string]Chord

	// members lists the canonical specs of each chord in insertion order.
	members map[Chord][]string
}

// NewNormalizer creates a normalizer with no synonym groups.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		index:   make(map[string]Chord),
		members: make(map[Chord][]string),
	}
}

// DefaultNormalizer creates a normalizer with the built-in synonym groups.
func DefaultNormalizer() *Normalizer {
	n := NewNormalizer()
	for _, c := range named {
		if err := n.Alias(c, defaultGroups[c]...); err != nil {
			panic("chord: invalid default group " + c.String() + ": " + err.Error())
		}
	}
	return n
}

// Normalize returns the chord for a raw key event.
func (n *Normalizer) Normalize(ev key.Event) Chord {
	if c, ok := n.index[ev.String()]; ok {
		return c
	}
	return Raw(ev)
}

// Alias adds key specs as synonyms of a named chord.
// Re-adding a spec to the same chord is ignored.
func (n *Normalizer) Alias(c Chord, specs ...string) error {
	if !c.IsNamed() {
		return fmt.Errorf("%w: %q", ErrUnknownChord, c)
	}

	for _, spec := range specs {
		ev, err := key.Parse(spec)
		if err != nil {
			return fmt.Errorf("alias %s: %w", c, err)
		}
		canonical := ev.String()

		if existing, ok := n.index[canonical]; ok {
			if existing == c {
				continue
			}
			return fmt.Errorf("%w: %s is bound to %s, cannot alias to %s",
				ErrConflictingAlias, canonical, existing, c)
		}

		n.index[canonical] = c
		n.members[c] = append(n.members[c], canonical)
	}
	return nil
}

// Apply adds a set of aliases, processing chords in sorted order.
func (n *Normalizer) Apply(aliases map[Chord][]string) error {
	chords := make([]Chord, 0, len(aliases))
	for c := range aliases {
		chords = append(chords, c)
	}
	sort.Slice(chords, func(i, j int) bool { return chords[i] < chords[j] })

	for _, c := range chords {
		if err := n.Alias(c, aliases[c]...); err != nil {
			return err
		}
	}
	return nil
}

// Members returns the canonical key specs bound to a chord.
func (n *Normalizer) Members(c Chord) []string {
	out := make([]string, len(n.members[c]))
	copy(out, n.members[c])
	return out
}
