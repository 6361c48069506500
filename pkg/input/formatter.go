package input

import "github.com/dmitrymomot/uiwkit/pkg/sanitizer"

// Formatter rewrites raw text before it is stored. It receives the bound
// field and may write to it directly. An empty result stores "".
// Formatters run under the controller lock and must not call back into it.
type Formatter func(raw string, field Field) string

// Transform builds a Formatter from plain string transforms applied in order.
func Transform(transforms ...func(string) string) Formatter {
	pipeline := sanitizer.Compose(transforms...)
	return func(raw string, _ Field) string {
		return pipeline(raw)
	}
}

// Digits keeps ASCII digits only.
var Digits = Transform(sanitizer.DigitsOnly)

// Integer formats raw text as a canonical integer, keeping a leading minus
// when allowNegative is set.
func Integer(allowNegative bool) Formatter {
	return func(raw string, _ Field) string {
		return sanitizer.SignedInteger(raw, allowNegative)
	}
}
