package input

import (
	"fmt"
	"strings"
)

// Type is the kind of text field.
type Type string

const (
	TypeText     Type = "text"
	TypeCurrency Type = "currency"
	TypeEmail    Type = "email"
)

// ParseType converts a type name to Type. Empty names mean TypeText.
func ParseType(name string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(name))); t {
	case "":
		return TypeText, nil
	case TypeText, TypeCurrency, TypeEmail:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Listener receives controller events. Nil callbacks are skipped.
// Callbacks run outside the controller lock.
type Listener struct {
	OnChange  func(value string)
	OnFocus   func(ev any)
	OnBlur    func(value string)
	OnKeyDown func(ev any)
}

// EventKind names what happened to the field.
type EventKind string

const (
	EventChange    EventKind = "change"
	EventFocus     EventKind = "focus"
	EventBlur      EventKind = "blur"
	EventKeyDown   EventKind = "keydown"
	EventValidated EventKind = "validated"
)

// Event is what Subscribe delivers. Payload carries the host event for
// focus and keydown. Validated events carry the outcome of an async round.
type Event struct {
	Kind    EventKind `json:"kind"`
	Value   string    `json:"value,omitempty"`
	Error   string    `json:"error,omitempty"`
	Payload any       `json:"payload,omitempty"`
}

// State is a snapshot of the controller.
type State struct {
	Value          string `json:"value"`
	Error          string `json:"error"`
	ValidatedAsync bool   `json:"validatedAsync"`
	Valid          bool   `json:"valid"`
	Disabled       bool   `json:"disabled"`
}
