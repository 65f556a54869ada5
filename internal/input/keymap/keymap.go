package keymap

import (
	"fmt"

	"github.com/dshills/diskview/internal/input/chord"
	"github.com/dshills/diskview/internal/input/mode"
)

// Keymap is the command table of one mode.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Mode is the mode this keymap applies to.
	Mode mode.Mode

	// Bindings are the chord-to-action mappings, in display order.
	Bindings []Binding

	// Default is applied for chords absent from Bindings.
	Default Action

	// CatchAll applies Default to every input, skipping chord lookup.
	CatchAll bool

	// index is built by Build for O(1) lookup.
	index map[chord.Chord]Action
}

// NewKeymap creates an empty keymap for a mode with a no-op default.
func NewKeymap(name string, m mode.Mode) *Keymap {
	return &Keymap{
		Name:     name,
		Mode:     m,
		Bindings: make([]Binding, 0),
		Default:  Noop,
	}
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(b Binding) *Keymap {
	k.Bindings = append(k.Bindings, b)
	k.index = nil
	return k
}

// WithDefault sets the action for unbound chords.
func (k *Keymap) WithDefault(a Action) *Keymap {
	k.Default = a
	return k
}

// MatchAll makes the keymap apply its default action to every input.
func (k *Keymap) MatchAll() *Keymap {
	k.CatchAll = true
	return k
}

// Validate checks that bindings are well formed and no chord is bound twice.
func (k *Keymap) Validate() error {
	if !k.Mode.Valid() {
		return fmt.Errorf("keymap %q: invalid mode %d", k.Name, k.Mode)
	}
	if err := k.Default.Validate(); err != nil {
		return fmt.Errorf("keymap %q: default: %w", k.Name, err)
	}
	if k.CatchAll && len(k.Bindings) > 0 {
		return fmt.Errorf("keymap %q: catch-all keymap cannot have bindings", k.Name)
	}

	seen := make(map[chord.Chord]int)
	for i, b := range k.Bindings {
		if len(b.Chords) == 0 {
			return fmt.Errorf("keymap %q: binding %d: no chords", k.Name, i)
		}
		if b.Action.IsNoop() {
			return fmt.Errorf("keymap %q: binding %d: empty action", k.Name, i)
		}
		if err := b.Action.Validate(); err != nil {
			return fmt.Errorf("keymap %q: binding %d: %w", k.Name, i, err)
		}
		for _, c := range b.Chords {
			if !c.IsNamed() {
				return fmt.Errorf("keymap %q: binding %d: %w: %q", k.Name, i, chord.ErrUnknownChord, c)
			}
			if prev, dup := seen[c]; dup {
				return fmt.Errorf("keymap %q: chord %s bound by bindings %d and %d", k.Name, c, prev, i)
			}
			seen[c] = i
		}
	}
	return nil
}

// Build validates the keymap and indexes its bindings.
func (k *Keymap) Build() error {
	if err := k.Validate(); err != nil {
		return err
	}
	index := make(map[chord.Chord]Action)
	for _, b := range k.Bindings {
		for _, c := range b.Chords {
			index[c] = b.Action
		}
	}
	k.index = index
	return nil
}

// Lookup returns the action bound to a chord, or the default action.
func (k *Keymap) Lookup(c chord.Chord) Action {
	if k.CatchAll {
		return k.Default
	}
	if k.index == nil {
		// Unbuilt keymaps fall back to a linear scan
		for _, b := range k.Bindings {
			for _, bc := range b.Chords {
				if bc == c {
					return b.Action
				}
			}
		}
		return k.Default
	}
	if a, ok := k.index[c]; ok {
		return a
	}
	return k.Default
}

// Bound returns true if the chord has an explicit binding.
func (k *Keymap) Bound(c chord.Chord) bool {
	for _, b := range k.Bindings {
		for _, bc := range b.Chords {
			if bc == c {
				return true
			}
		}
	}
	return false
}

// Hints returns the bindings that carry a description, grouped by category.
func (k *Keymap) Hints() []BindingCategory {
	described := make([]Binding, 0, len(k.Bindings))
	for _, b := range k.Bindings {
		if b.Description != "" {
			described = append(described, b)
		}
	}
	return GroupByCategory(described)
}
