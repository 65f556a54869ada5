package keymap

import (
	"errors"
	"fmt"

	"github.com/dshills/diskview/internal/input/chord"
	"github.com/dshills/diskview/internal/input/mode"
)

// ErrNoKeymap is returned when a mode has no registered keymap.
var ErrNoKeymap = errors.New("no keymap for mode")

// Registry holds exactly one keymap per mode.
type Registry struct {
	keymaps map[mode.Mode]*Keymap
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		keymaps: make(map[mode.Mode]*Keymap),
	}
}

// Register builds a keymap and adds it to the registry.
// Registering a second keymap for the same mode is an error.
func (r *Registry) Register(km *Keymap) error {
	if km == nil {
		return fmt.Errorf("cannot register nil keymap")
	}
	if existing, ok := r.keymaps[km.Mode]; ok {
		return fmt.Errorf("mode %s already has keymap %q", km.Mode, existing.Name)
	}
	if err := km.Build(); err != nil {
		return err
	}
	r.keymaps[km.Mode] = km
	return nil
}

// Get returns the keymap of a mode, or nil if none is registered.
func (r *Registry) Get(m mode.Mode) *Keymap {
	return r.keymaps[m]
}

// Lookup returns the action for a chord in a mode.
func (r *Registry) Lookup(m mode.Mode, c chord.Chord) (Action, error) {
	km, ok := r.keymaps[m]
	if !ok {
		return Noop, fmt.Errorf("%w: %s", ErrNoKeymap, m)
	}
	return km.Lookup(c), nil
}

// Complete returns an error naming the first mode without a keymap.
func (r *Registry) Complete() error {
	for _, m := range mode.All() {
		if _, ok := r.keymaps[m]; !ok {
			return fmt.Errorf("%w: %s", ErrNoKeymap, m)
		}
	}
	return nil
}
