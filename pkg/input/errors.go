package input

import "errors"

var (
	ErrUnknownType = errors.New("input: unknown field type")
)
