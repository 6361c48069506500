package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	nonDigitRegex = regexp.MustCompile(`\D`)
	leadingZeros  = regexp.MustCompile(`^0+`)
)
