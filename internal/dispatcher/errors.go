package dispatcher

import "errors"

var (
	// ErrNilSource is returned by Run when no event source is given.
	ErrNilSource = errors.New("dispatcher: nil event source")

	// ErrNilController is returned by Run when no controller is given.
	ErrNilController = errors.New("dispatcher: nil controller")
)
