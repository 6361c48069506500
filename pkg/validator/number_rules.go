package validator

import "fmt"

// Number is a parsed numeric field value. Valid is false when the text
// could not be parsed, the NaN case of a browser number.
type Number struct {
	Value int
	Valid bool
}

// Bounds is the slider's built-in rule. It checks required, then too high,
// then too low; the three are mutually exclusive.
func Bounds(min, max int, required bool, messages Messages) Func[Number] {
	return func(n Number) error {
		switch {
		case !n.Valid && required:
			return &ValidationError{
				Kind:           KindRequired,
				Message:        messages.Get(KindRequired, "The input is required."),
				TranslationKey: "validation.required",
			}
		case n.Valid && n.Value > max:
			values := map[string]any{"max": max, "value": n.Value}
			return &ValidationError{
				Kind:              KindTooHigh,
				Message:           messages.Render(KindTooHigh, fmt.Sprintf("The maximum value is %d.", max), values),
				TranslationKey:    "validation.max",
				TranslationValues: values,
			}
		case n.Valid && n.Value < min:
			values := map[string]any{"min": min, "value": n.Value}
			return &ValidationError{
				Kind:              KindTooLow,
				Message:           messages.Render(KindTooLow, fmt.Sprintf("The minimum value is %d.", min), values),
				TranslationKey:    "validation.min",
				TranslationValues: values,
			}
		}
		return nil
	}
}
