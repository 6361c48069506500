package main

import "errors"

var (
	ErrInvalidFlag    = errors.New("invalid flag value")
	ErrUnknownControl = errors.New("unknown control")
	ErrUnknownEvent   = errors.New("unknown event")
	ErrEmptyScript    = errors.New("script has no events")
)
