package validator

import "regexp"

// emailRegex accepts a dot-separated local part made of alphanumerics and
// !#$%&’*+/=?^_`{|}~- , an @, and a hyphen/alphanumeric host followed by at
// least one dot-separated label.
var emailRegex = regexp.MustCompile("^[a-zA-Z0-9!#$%&’*+/=?^_`{|}~-]+(\\.[a-zA-Z0-9!#$%&’*+/=?^_`{|}~-]+)*@[a-zA-Z0-9-]+(\\.[a-zA-Z0-9-]+)+$")

// Required fails for the empty string.
func Required(messages Messages) Func[string] {
	return func(value string) error {
		if value != "" {
			return nil
		}
		return &ValidationError{
			Kind:           KindRequired,
			Message:        messages.Get(KindRequired, "Value is required"),
			TranslationKey: "validation.required",
		}
	}
}

// Email fails for non-empty values that are not a plausible address.
// Empty values pass; pair it with Required to demand a value.
func Email(messages Messages) Func[string] {
	return func(value string) error {
		if value == "" || IsEmail(value) {
			return nil
		}
		return &ValidationError{
			Kind:           KindInvalidEmail,
			Message:        messages.Get(KindInvalidEmail, "Invalid email address"),
			TranslationKey: "validation.email",
		}
	}
}

// IsEmail reports whether value has the local-part@host.domain shape.
func IsEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// Custom adapts a boolean predicate into a Func with a fixed message.
func Custom(check func(string) bool, message string) Func[string] {
	return func(value string) error {
		if check(value) {
			return nil
		}
		return New(message)
	}
}
