// Package validator reduces an ordered list of validators to a single
// outcome for a form field.
//
// A Func inspects one value and returns nil or an error. A Chain evaluates
// its built-in rules followed by the caller's validators and stops at the
// first failure; later validators are never called. The chain is assembled
// at evaluation time, so the caller's slice is never appended to.
//
//	chain := validator.NewChain(
//	    []validator.Func[string]{validator.Required(nil), validator.Email(nil)},
//	    callerValidators,
//	)
//	msg := validator.Message(chain.Validate(value)) // "" when valid
//
// # Built-in rules
//
//   - Bounds: the slider rule over Number (required, too high, too low).
//   - Required: empty string check for text inputs.
//   - Email: local-part@host.domain shape; empty passes.
//
// Each built-in produces a *ValidationError whose Kind selects an override
// from Messages, falling back to English text.
//
// # Asynchronous rules
//
// RunAsync starts every AsyncFunc concurrently through the async package and
// only returns once all of them have answered. The first rejection by
// completion time is reported as an *AsyncValidationError.
//
// # Error Handling
//
// Validation failures are values, not exceptional conditions: controllers
// store Message(err) as their error state. A validator that panics is a
// programming error and is not recovered.
package validator
