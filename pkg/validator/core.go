package validator

import (
	"errors"
	"slices"
)

// Kind identifies the family of a validation failure. It doubles as the key
// of a Messages template.
type Kind string

const (
	KindRequired     Kind = "required"
	KindTooHigh      Kind = "tooHigh"
	KindTooLow       Kind = "tooLow"
	KindInvalidEmail Kind = "invalidEmail"
	KindCustom       Kind = "custom"
)

// ValidationError represents a single validation failure with translation support.
type ValidationError struct {
	Kind              Kind
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e *ValidationError) Error() string {
	return e.Message
}

// New returns a caller-defined validation error carrying message as-is.
func New(message string) *ValidationError {
	return &ValidationError{
		Kind:           KindCustom,
		Message:        message,
		TranslationKey: "validation.custom",
	}
}

// Func validates a single value. A nil return means the value is acceptable.
type Func[T any] func(value T) error

// Chain is an ordered validator list: built-in rules first, then the
// caller's validators. The first failure wins.
type Chain[T any] struct {
	Builtins   []Func[T]
	Validators []Func[T]
}

// NewChain builds a chain from built-ins and caller validators.
// The caller's slice is cloned so later appends on either side never alias.
func NewChain[T any](builtins []Func[T], validators []Func[T]) Chain[T] {
	return Chain[T]{
		Builtins:   slices.Clone(builtins),
		Validators: slices.Clone(validators),
	}
}

// Funcs returns the effective evaluation order as a fresh slice.
func (c Chain[T]) Funcs() []Func[T] {
	return slices.Concat(c.Builtins, c.Validators)
}

// Len reports how many validators the chain evaluates.
func (c Chain[T]) Len() int {
	return len(c.Builtins) + len(c.Validators)
}

// Validate runs the chain against value and returns the first failure.
// Validators after the first failure are not called. A panicking validator
// is not recovered.
func (c Chain[T]) Validate(value T) error {
	return First(value, c.Funcs()...)
}

// First evaluates fns in order and returns the first non-nil error.
func First[T any](value T, fns ...Func[T]) error {
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		if err := fn(value); err != nil {
			return err
		}
	}
	return nil
}

// Message returns the user-facing text of a validation outcome, "" for nil.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}

// KindOf returns the Kind of err, KindCustom for foreign errors and "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return KindCustom
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
