package validator

import (
	"fmt"
	"regexp"
)

// Messages overrides the built-in English wording per error kind.
// A missing or empty entry falls back to the default message. Overrides may
// reference the rule's translation values as %{name}, e.g. "Max. %{max}".
type Messages map[Kind]string

// Get returns the override for kind, or fallback.
func (m Messages) Get(kind Kind, fallback string) string {
	if msg, ok := m[kind]; ok && msg != "" {
		return msg
	}
	return fallback
}

// Render returns the override for kind with %{name} placeholders substituted
// from values, or fallback when no override exists.
func (m Messages) Render(kind Kind, fallback string, values map[string]any) string {
	msg, ok := m[kind]
	if !ok || msg == "" {
		return fallback
	}
	return interpolate(msg, values)
}

// Merge returns a copy of m with entries from other taking precedence.
func (m Messages) Merge(other Messages) Messages {
	out := make(Messages, len(m)+len(other))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range other {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate replaces %{name} with values[name]; unknown placeholders stay as-is.
func interpolate(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := values[match[2:len(match)-1]]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}
