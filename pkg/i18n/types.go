package i18n

import (
	"github.com/dmitrymomot/uiwkit/pkg/validator"
)

// Labels are accessible names the render collaborator puts on the slider.
type Labels struct {
	Slider     string `yaml:"slider" json:"slider"`
	Decrease   string `yaml:"decrease" json:"decrease"`
	InputField string `yaml:"inputField" json:"inputField"`
}

// SliderLabel returns the slider label, or "<label> - slider field." when unset.
func (l Labels) SliderLabel(label string) string {
	if l.Slider != "" {
		return l.Slider
	}
	return label + " - slider field."
}

// HandleLabel returns the handle label, or "<label> - slider handle." when unset.
func (l Labels) HandleLabel(label string) string {
	if l.Slider != "" {
		return l.Slider
	}
	return label + " - slider handle."
}

// DecreaseLabel returns the name of the step-down action, or
// "<label> - decrease." when unset.
func (l Labels) DecreaseLabel(label string) string {
	if l.Decrease != "" {
		return l.Decrease
	}
	return label + " - decrease."
}

// InputLabel returns the name of the paired number field, or
// "<label> - input field." when unset.
func (l Labels) InputLabel(label string) string {
	if l.InputField != "" {
		return l.InputField
	}
	return label + " - input field."
}

// Translations is everything one language provides for the controls.
type Translations struct {
	Errors validator.Messages
	Labels Labels
}

// entry is the on-disk shape of one language.
type entry struct {
	Error      map[string]string `yaml:"error" json:"error"`
	AriaLabels Labels            `yaml:"ariaLabels" json:"ariaLabels"`
}

func (e entry) translations() Translations {
	msgs := make(validator.Messages, len(e.Error))
	for k, v := range e.Error {
		msgs[validator.Kind(k)] = v
	}
	return Translations{Errors: msgs, Labels: e.AriaLabels}
}
