package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uiwkit/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  12  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "12",
		},
		{
			name:  "applies transforms in sequence",
			input: " 0012ab ",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.DigitsOnly,
				sanitizer.CanonicalDigits,
			},
			expected: "12",
		},
		{
			name:  "order matters",
			input: "123456",
			transforms: []func(string) string{
				func(s string) string { return sanitizer.MaxLength(s, 3) },
				sanitizer.CanonicalDigits,
			},
			expected: "123",
		},
		{
			name:       "handles empty transforms slice",
			input:      "hello",
			transforms: []func(string) string{},
			expected:   "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	digits := sanitizer.Compose(sanitizer.Trim, sanitizer.DigitsOnly)
	assert.Equal(t, "10", digits(" 10a "))
	assert.Equal(t, "", digits("abc"))
}

func TestMaxLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "héll", sanitizer.MaxLength("héllo", 4))
	assert.Equal(t, "hello", sanitizer.MaxLength("hello", 0))
	assert.Equal(t, "hi", sanitizer.MaxLength("hi", 10))
}
