package dispatcher

import "github.com/dshills/diskview/internal/input/mode"

// Controller is the application surface driven by the dispatcher.
//
// Operations never fail from the dispatcher's point of view; a controller
// that cannot complete one reports it through its own state, for example
// by entering the error message mode.
type Controller interface {
	// State returns the current mode and held deletion descriptor.
	State() mode.State

	PromptExit()
	Exit()
	GoUp()
	HandleEnter()
	ResetUIMode()
	NormalMode()
	MoveSelectedLeft()
	MoveSelectedRight()
	MoveSelectedUp()
	MoveSelectedDown()
	ZoomIn()
	ZoomOut()
	ResetZoom()
	PromptFileDeletion()
	ShowWarningModal()
	DeleteFile(file mode.FileToDelete)
	Render()
}

// Exiter is implemented by controllers that report whether Exit has taken
// effect. Run stops reading input once Exited returns true.
type Exiter interface {
	Exited() bool
}
