// Package sanitizer normalises raw text and numbers coming from form fields.
//
// The integer helpers back the slider's paired text field: SignedInteger
// strips everything that is not a digit, keeps a leading minus only when the
// caller allows negative numbers and the value is nonzero, and renders the
// result in canonical decimal form. Empty input stays empty so the field can
// show "" rather than "0".
//
//	sanitizer.SignedInteger("-00a12", true)  // "-12"
//	sanitizer.SignedInteger("-0", true)      // "0"
//	sanitizer.SignedInteger("abc", true)     // ""
//
// The generic numeric helpers (Clamp, Round, SafeDivide, NonNegative) are
// used by the geometry mapper to keep handle positions inside the track.
//
// Apply and Compose build reusable pipelines from small transforms:
//
//	digits := sanitizer.Compose(sanitizer.Trim, sanitizer.DigitsOnly)
//	digits(" 10a ") // "10"
//
// None of the helpers returns an error and none keeps state, so they are
// safe for concurrent use.
package sanitizer
