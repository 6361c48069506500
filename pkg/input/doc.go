// Package input implements a headless text input controller.
//
// A Controller holds the value of one text field, runs synchronous
// validators on every change and asynchronous validators on blur, and
// reports the outcome through State and IsValid. An optional Formatter
// rewrites raw text before it is stored; when formatting leaves the stored
// value unchanged the controller writes it back into the bound Field, so a
// field showing "10a" is reset to "10".
//
// # Usage
//
//	buf := &input.Buffer{}
//	c := input.New(
//		input.WithType(input.TypeEmail),
//		input.WithRequired(true),
//		input.WithField(buf),
//		input.WithAsyncValidators(checkNotTaken),
//	)
//
//	c.Change("jane@example.com")
//	if f := c.Blur(ctx); f != nil {
//		msg, _ := f.Await()
//		fmt.Println(msg, c.IsValid())
//	}
//
// # Async rounds
//
// Every blur without a synchronous error starts a round running all async
// validators concurrently. A round settles once every validator finished;
// the rejection that arrived first becomes the error. Rounds are never
// cancelled and the last one to settle wins, unless WithStaleRoundDiscard
// is set, in which case results of superseded rounds are dropped.
//
// In the default mode a round that settles after a later Change overwrites
// the error that Change produced. An accepting round started for
// "jane@example.com" therefore clears the email error of a subsequent
// "not-an-email", and IsValid reports true until the next change or blur.
// Hosts that need the displayed value and its error to always agree should
// set WithStaleRoundDiscard.
package input
