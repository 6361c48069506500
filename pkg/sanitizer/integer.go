package sanitizer

import (
	"math"
	"strconv"
	"strings"
)

// DigitsOnly removes every character that is not an ASCII digit.
func DigitsOnly(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// CanonicalDigits renders a run of digits in canonical decimal form:
// leading zeros are dropped and an all-zero run becomes "0".
// Runs that overflow int64 saturate to math.MaxInt64.
func CanonicalDigits(digits string) string {
	if digits == "" {
		return ""
	}
	trimmed := leadingZeros.ReplaceAllString(digits, "")
	if trimmed == "" {
		return "0"
	}
	if _, err := strconv.ParseInt(trimmed, 10, 64); err != nil {
		return strconv.FormatInt(math.MaxInt64, 10)
	}
	return trimmed
}

// SignedInteger normalizes raw text typed into an integer field.
//
// Every non-digit is stripped. A leading "-" survives only when raw starts
// with "-", the remaining number is not zero and allowNegative is set; a
// minus without digits survives as a lone "-" so the user can keep typing.
// Input without digits otherwise maps to "", never to "0".
func SignedInteger(raw string, allowNegative bool) string {
	number := CanonicalDigits(DigitsOnly(raw))
	if allowNegative && number != "0" && strings.HasPrefix(raw, "-") {
		return "-" + number
	}
	return number
}

// ParseInteger parses a string produced by SignedInteger.
// ok is false for "" and a lone "-", the cases a browser reports as NaN.
func ParseInteger(s string) (value int, ok bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
