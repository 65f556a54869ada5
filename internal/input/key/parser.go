package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "q", "+", "0", "-"
//   - Special keys: "Enter", "Esc", "Backspace", "Right"
//   - With modifiers: "Ctrl+C", "Ctrl+F"
//   - Vim-style: "<C-c>", "<CR>", "<Esc>", "<BS>", "C-c"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	// A lone '+', '-' or '<' is a character, not notation
	if utf8.RuneCountInString(spec) == 1 {
		r, _ := utf8.DecodeRuneInString(spec)
		return NewRuneEvent(r, ModNone).Canonical(), nil
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	if strings.Contains(spec[:len(spec)-1], "+") {
		return parseModifierStyle(spec)
	}

	if strings.Contains(spec[:len(spec)-1], "-") {
		return parseVimStyle(spec)
	}

	return parseKeyWithModifiers(spec, ModNone)
}

// parseVimStyle parses Vim-style notation like "C-c", "CR", "Esc".
func parseVimStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	// "C--" is Ctrl with the '-' key
	var keyPart string
	var modParts []string
	if strings.HasSuffix(inner, "--") {
		keyPart = "-"
		modParts = strings.Split(strings.TrimSuffix(inner, "--"), "-")
	} else {
		parts := strings.Split(inner, "-")
		keyPart = parts[len(parts)-1]
		modParts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range modParts {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods = mods.With(ModCtrl)
		case "a", "m":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		default:
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+C" style notation.
func parseModifierStyle(spec string) (Event, error) {
	var keyPart string
	var modParts []string
	if strings.HasSuffix(spec, "++") {
		keyPart = "+"
		modParts = strings.Split(strings.TrimSuffix(spec, "++"), "+")
	} else {
		parts := strings.Split(spec, "+")
		keyPart = parts[len(parts)-1]
		modParts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range modParts {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseKeyWithModifiers parses a key part with already-known modifiers.
func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	switch strings.ToLower(keyPart) {
	case "space":
		return NewRuneEvent(' ', mods).Canonical(), nil
	case "lt":
		return NewRuneEvent('<', mods).Canonical(), nil
	case "gt":
		return NewRuneEvent('>', mods).Canonical(), nil
	case "nl", "newline":
		return NewSpecialEvent(KeyEnter, mods).Canonical(), nil
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods).Canonical(), nil
	}

	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(keyPart)
		return NewRuneEvent(r, mods).Canonical(), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}
