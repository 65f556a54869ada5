package mode

import (
	"fmt"
	"strings"
)

// Mode is a UI state governing which command table is active.
type Mode uint8

const (
	// Loading is active while the first scan is still running.
	Loading Mode = iota

	// Normal is the regular browsing mode.
	Normal

	// DeleteFileConfirm asks the user to confirm a deletion.
	DeleteFileConfirm

	// ErrorMessage shows an error until acknowledged.
	ErrorMessage

	// ScreenTooSmall is active while the terminal is below the minimum size.
	ScreenTooSmall

	// Exiting asks the user to confirm quitting.
	Exiting

	// WarningMessage shows a transient warning dismissed by any key.
	WarningMessage
)

var modeNames = [...]string{
	Loading:           "loading",
	Normal:            "normal",
	DeleteFileConfirm: "delete-file-confirm",
	ErrorMessage:      "error-message",
	ScreenTooSmall:    "screen-too-small",
	Exiting:           "exiting",
	WarningMessage:    "warning-message",
}

// String returns the mode identifier (e.g., "normal", "exiting").
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", m)
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return int(m) < len(modeNames)
}

// All returns every mode in declaration order.
func All() []Mode {
	modes := make([]Mode, len(modeNames))
	for i := range modeNames {
		modes[i] = Mode(i)
	}
	return modes
}

// Parse returns the mode with the given identifier (case-insensitive).
func Parse(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode: %q", s)
}
