package keymap

import (
	"github.com/dshills/diskview/internal/input/chord"
	"github.com/dshills/diskview/internal/input/mode"
)

// DefaultRegistry returns a registry holding the default keymap of every mode.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	keymaps := []*Keymap{
		DefaultLoadingKeymap(),
		DefaultNormalKeymap(),
		DefaultDeleteFileKeymap(),
		DefaultErrorMessageKeymap(),
		DefaultScreenTooSmallKeymap(),
		DefaultExitingKeymap(),
		DefaultWarningMessageKeymap(),
	}
	for _, km := range keymaps {
		if err := r.Register(km); err != nil {
			panic("keymap: invalid default keymap: " + err.Error())
		}
	}
	return r
}

// browseBindings are shared by Loading and Normal. Only the delete
// binding differs between them.
func browseBindings(deleteAction Action, deleteDesc string) []Binding {
	return []Binding{
		Bind(NewAction(OpPromptExit), chord.Quit).WithDescription("quit").WithCategory("General"),
		Bind(NewAction(OpMoveRight), chord.Right).WithDescription("right").WithCategory("Movement"),
		Bind(NewAction(OpMoveLeft), chord.Left).WithDescription("left").WithCategory("Movement"),
		Bind(NewAction(OpMoveDown), chord.Down).WithDescription("down").WithCategory("Movement"),
		Bind(NewAction(OpMoveUp), chord.Up).WithDescription("up").WithCategory("Movement"),
		Bind(NewAction(OpZoomIn), chord.ZoomIn).WithDescription("zoom in").WithCategory("Zoom"),
		Bind(NewAction(OpZoomOut), chord.ZoomOut).WithDescription("zoom out").WithCategory("Zoom"),
		Bind(NewAction(OpResetZoom), chord.ZoomReset).WithDescription("reset zoom").WithCategory("Zoom"),
		Bind(NewAction(OpHandleEnter), chord.Confirm).WithDescription("open").WithCategory("Navigation"),
		Bind(deleteAction, chord.Delete).WithDescription(deleteDesc).WithCategory("Navigation"),
		Bind(NewAction(OpGoUp), chord.Cancel).WithDescription("parent").WithCategory("Navigation"),
	}
}

// DefaultLoadingKeymap returns the bindings active while scanning.
// Deletion is refused with a warning until the scan completes.
func DefaultLoadingKeymap() *Keymap {
	return &Keymap{
		Name:     "default-loading",
		Mode:     mode.Loading,
		Bindings: browseBindings(NewAction(OpShowWarningModal), "delete (after loading)"),
		Default:  Noop,
	}
}

// DefaultNormalKeymap returns the browsing bindings.
func DefaultNormalKeymap() *Keymap {
	return &Keymap{
		Name:     "default-normal",
		Mode:     mode.Normal,
		Bindings: browseBindings(NewAction(OpPromptFileDeletion), "delete"),
		Default:  Noop,
	}
}

// DefaultDeleteFileKeymap returns the deletion confirmation bindings.
func DefaultDeleteFileKeymap() *Keymap {
	return &Keymap{
		Name: "default-delete-file-confirm",
		Mode: mode.DeleteFileConfirm,
		Bindings: []Binding{
			Bind(NewAction(OpDeleteFile), chord.Yes).WithDescription("delete").WithCategory("Confirm"),
			Bind(NewAction(OpNormalMode), chord.Quit, chord.Cancel, chord.No).WithDescription("cancel").WithCategory("Confirm"),
		},
		Default: Noop,
	}
}

// DefaultErrorMessageKeymap returns the bindings of the error overlay.
func DefaultErrorMessageKeymap() *Keymap {
	return &Keymap{
		Name: "default-error-message",
		Mode: mode.ErrorMessage,
		Bindings: []Binding{
			Bind(NewAction(OpNormalMode), chord.Quit, chord.Cancel).WithDescription("dismiss").WithCategory("General"),
		},
		Default: Noop,
	}
}

// DefaultScreenTooSmallKeymap returns the bindings shown while the
// terminal is too small. Quit exits immediately, without a prompt.
func DefaultScreenTooSmallKeymap() *Keymap {
	return &Keymap{
		Name: "default-screen-too-small",
		Mode: mode.ScreenTooSmall,
		Bindings: []Binding{
			Bind(NewAction(OpExit), chord.Quit).WithDescription("quit").WithCategory("General"),
		},
		Default: Noop,
	}
}

// DefaultExitingKeymap returns the quit confirmation bindings.
//
// Restoring the previous mode does not redraw by itself, so the cancel
// action renders explicitly.
func DefaultExitingKeymap() *Keymap {
	return &Keymap{
		Name: "default-exiting",
		Mode: mode.Exiting,
		Bindings: []Binding{
			Bind(NewAction(OpExit), chord.Yes).WithDescription("quit").WithCategory("Confirm"),
			Bind(NewAction(OpResetUIMode, OpRender), chord.Quit, chord.Cancel, chord.No).WithDescription("stay").WithCategory("Confirm"),
		},
		Default: Noop,
	}
}

// DefaultWarningMessageKeymap returns the warning overlay keymap.
// Any key dismisses the warning.
func DefaultWarningMessageKeymap() *Keymap {
	return NewKeymap("default-warning-message", mode.WarningMessage).
		WithDefault(NewAction(OpResetUIMode)).
		MatchAll()
}
