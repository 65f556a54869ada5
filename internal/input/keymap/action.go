package keymap

import (
	"fmt"
	"strings"
)

// Op identifies one controller operation.
type Op uint8

const (
	OpNone Op = iota
	OpPromptExit
	OpExit
	OpGoUp
	OpHandleEnter
	OpResetUIMode
	OpNormalMode
	OpMoveLeft
	OpMoveRight
	OpMoveUp
	OpMoveDown
	OpZoomIn
	OpZoomOut
	OpResetZoom
	OpPromptFileDeletion
	OpShowWarningModal

	// OpDeleteFile takes the FileToDelete held by the current state.
	OpDeleteFile

	OpRender
)

var opNames = [...]string{
	OpNone:               "none",
	OpPromptExit:         "prompt-exit",
	OpExit:               "exit",
	OpGoUp:               "go-up",
	OpHandleEnter:        "handle-enter",
	OpResetUIMode:        "reset-ui-mode",
	OpNormalMode:         "normal-mode",
	OpMoveLeft:           "move-left",
	OpMoveRight:          "move-right",
	OpMoveUp:             "move-up",
	OpMoveDown:           "move-down",
	OpZoomIn:             "zoom-in",
	OpZoomOut:            "zoom-out",
	OpResetZoom:          "reset-zoom",
	OpPromptFileDeletion: "prompt-file-deletion",
	OpShowWarningModal:   "show-warning-modal",
	OpDeleteFile:         "delete-file",
	OpRender:             "render",
}

// String returns the operation name.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", o)
}

// Action is the result of a table lookup: the controller operations to
// invoke, in order.
type Action struct {
	// Name identifies the action in logs and legends.
	Name string

	// Ops are invoked in order. An empty list is a no-op.
	Ops []Op
}

// Noop is the default action for chords absent from a table.
var Noop = Action{Name: "noop"}

// NewAction creates an action named after its operations.
func NewAction(ops ...Op) Action {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}
	return Action{Name: strings.Join(names, "+"), Ops: ops}
}

// IsNoop returns true if the action invokes nothing.
func (a Action) IsNoop() bool {
	return len(a.Ops) == 0
}

// Has returns true if the action invokes op.
func (a Action) Has(op Op) bool {
	for _, o := range a.Ops {
		if o == op {
			return true
		}
	}
	return false
}

// EndsWith returns true if op is the last operation of the action.
func (a Action) EndsWith(op Op) bool {
	return len(a.Ops) > 0 && a.Ops[len(a.Ops)-1] == op
}

// Equal compares two actions by their operations.
func (a Action) Equal(other Action) bool {
	if len(a.Ops) != len(other.Ops) {
		return false
	}
	for i := range a.Ops {
		if a.Ops[i] != other.Ops[i] {
			return false
		}
	}
	return true
}

// Validate checks that every operation is known.
func (a Action) Validate() error {
	for i, op := range a.Ops {
		if op == OpNone || int(op) >= len(opNames) {
			return fmt.Errorf("action %q: op %d: invalid operation %s", a.Name, i, op)
		}
	}
	return nil
}
