package key

import (
	"strings"
	"time"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewCtrlEvent creates a Ctrl+letter key event.
func NewCtrlEvent(r rune) Event {
	return NewRuneEvent(unicode.ToLower(r), ModCtrl)
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// Canonical returns the event in the form used for comparisons.
//
// Control characters that terminals deliver as runes are folded onto their
// named keys ('\n' and '\r' become Enter, '\t' becomes Tab), Ctrl+letter
// runes are lowercased, and Shift is dropped from character events because
// it is already part of the character. The timestamp is cleared.
func (e Event) Canonical() Event {
	c := Event{Key: e.Key, Rune: e.Rune, Modifiers: e.Modifiers}
	if c.Key != KeyRune {
		c.Rune = 0
		return c
	}

	switch c.Rune {
	case '\n', '\r':
		return Event{Key: KeyEnter, Modifiers: c.Modifiers.Without(ModShift)}
	case '\t':
		return Event{Key: KeyTab, Modifiers: c.Modifiers.Without(ModShift)}
	case 0x7f, '\b':
		return Event{Key: KeyBackspace, Modifiers: c.Modifiers.Without(ModShift)}
	case 0x1b:
		return Event{Key: KeyEscape, Modifiers: c.Modifiers.Without(ModShift)}
	}

	c.Modifiers = c.Modifiers.Without(ModShift)
	if c.Modifiers.HasCtrl() {
		c.Rune = unicode.ToLower(c.Rune)
	}
	return c
}

// String returns a canonical string representation.
// Examples: "q", "+", "C-c", "Right", "Esc", "Enter", "BS"
func (e Event) String() string {
	c := e.Canonical()

	var parts []string
	if c.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if c.Modifiers.Has(ModAlt) {
		parts = append(parts, "A")
	}
	// Shift only survives canonicalisation on special keys
	if c.Modifiers.Has(ModShift) {
		parts = append(parts, "S")
	}

	var keyName string
	switch c.Key {
	case KeyRune:
		if c.Rune == ' ' {
			keyName = "Space"
		} else {
			keyName = string(c.Rune)
		}
	case KeyEscape:
		keyName = "Esc"
	case KeyBackspace:
		keyName = "BS"
	case KeyDelete:
		keyName = "Del"
	case KeyPageUp:
		keyName = "PgUp"
	case KeyPageDown:
		keyName = "PgDn"
	default:
		keyName = c.Key.String()
	}

	parts = append(parts, keyName)
	return strings.Join(parts, "-")
}

// Equals returns true if two events represent the same key press.
// Timestamps are not compared and both events are canonicalised first.
func (e Event) Equals(other Event) bool {
	a, b := e.Canonical(), other.Canonical()
	return a.Key == b.Key && a.Rune == b.Rune && a.Modifiers == b.Modifiers
}
