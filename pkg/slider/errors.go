package slider

import "errors"

var (
	ErrNilLayout   = errors.New("slider: layout provider is nil")
	ErrNotDragging = errors.New("slider: no drag in progress")
	ErrDisabled    = errors.New("slider: control is disabled")
)
