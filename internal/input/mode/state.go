package mode

import "path/filepath"

// FileToDelete describes the entry awaiting deletion confirmation.
// The input core passes it through to the controller untouched.
type FileToDelete struct {
	// Path holds the path segments from the scan root to the entry.
	Path []string

	// Size is the size of the entry in bytes.
	Size int64

	// IsDir is true if the entry is a directory.
	IsDir bool
}

// FullPath joins the path segments with the OS separator.
func (f FileToDelete) FullPath() string {
	return filepath.Join(f.Path...)
}

// State is a snapshot of the controller's mode, read fresh on every dispatch.
type State struct {
	Mode Mode

	// FileToDelete is set while Mode is DeleteFileConfirm.
	FileToDelete *FileToDelete
}

// ChangeCallback is called when the tracked mode changes.
type ChangeCallback func(from, to Mode)

// Tracker holds the current and previous mode for a controller.
// It is not safe for concurrent use; the controller is its only writer.
type Tracker struct {
	current   Mode
	previous  Mode
	callbacks []ChangeCallback
}

// NewTracker creates a tracker starting in the given mode.
func NewTracker(initial Mode) *Tracker {
	return &Tracker{current: initial, previous: initial}
}

// Current returns the active mode.
func (t *Tracker) Current() Mode {
	return t.current
}

// Previous returns the mode that was active before the last change.
func (t *Tracker) Previous() Mode {
	return t.previous
}

// Is returns true if the current mode is any of the given modes.
func (t *Tracker) Is(modes ...Mode) bool {
	for _, m := range modes {
		if t.current == m {
			return true
		}
	}
	return false
}

// Set switches to the given mode and notifies callbacks.
// Setting the current mode again is a no-op.
func (t *Tracker) Set(m Mode) {
	if m == t.current {
		return
	}
	from := t.current
	t.previous = from
	t.current = m
	for _, cb := range t.callbacks {
		if cb != nil {
			cb(from, m)
		}
	}
}

// OnChange registers a callback for mode changes.
func (t *Tracker) OnChange(cb ChangeCallback) {
	t.callbacks = append(t.callbacks, cb)
}
