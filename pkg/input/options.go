package input

import (
	"log/slog"

	"github.com/dmitrymomot/uiwkit/pkg/config"
	"github.com/dmitrymomot/uiwkit/pkg/i18n"
	"github.com/dmitrymomot/uiwkit/pkg/validator"
)

const defaultEmailMaxLength = 320

// Option configures a Controller.
type Option func(*options)

type options struct {
	typ             Type
	required        bool
	disabled        bool
	value           string
	maxLength       int
	emailMaxLength  int
	counter         int
	formatter       Formatter
	field           Field
	messages        validator.Messages
	validators      []validator.Func[string]
	asyncValidators []validator.AsyncFunc
	listeners       []Listener
	discardStale    bool
	buffer          int
	logger          *slog.Logger
}

const defaultStreamBuffer = 16

func defaultOptions() options {
	return options{
		typ:            TypeText,
		emailMaxLength: defaultEmailMaxLength,
		field:          nopField{},
		buffer:         defaultStreamBuffer,
	}
}

// WithType selects the field type. An empty type keeps TypeText.
func WithType(t Type) Option {
	return func(o *options) {
		if t != "" {
			o.typ = t
		}
	}
}

// WithRequired rejects empty values.
func WithRequired(required bool) Option {
	return func(o *options) { o.required = required }
}

// WithDisabled starts the controller disabled. Disabled controllers ignore
// user events.
func WithDisabled(disabled bool) Option {
	return func(o *options) { o.disabled = disabled }
}

// WithValue sets the initial value. It goes through the formatter and
// synchronous validation like a change would.
func WithValue(v string) Option {
	return func(o *options) { o.value = v }
}

// WithMaxLength limits the number of characters a user can type.
// Email fields default to 320 when unset.
func WithMaxLength(n int) Option {
	return func(o *options) { o.maxLength = n }
}

// WithCounter shows a "length / n" counter.
func WithCounter(n int) Option {
	return func(o *options) { o.counter = n }
}

// WithDefaults applies host-wide defaults loaded through pkg/config.
func WithDefaults(d config.InputDefaults) Option {
	return func(o *options) {
		if d.EmailMaxLength > 0 {
			o.emailMaxLength = d.EmailMaxLength
		}
	}
}

// WithFormatter rewrites raw text before it is stored.
func WithFormatter(f Formatter) Option {
	return func(o *options) { o.formatter = f }
}

// WithField binds the rendered field that formatters and resync write to.
func WithField(f Field) Option {
	return func(o *options) {
		if f != nil {
			o.field = f
		}
	}
}

// WithMessages overrides the wording of the built-in rules.
func WithMessages(m validator.Messages) Option {
	return func(o *options) { o.messages = o.messages.Merge(m) }
}

// WithTranslations applies the error wording of one language.
func WithTranslations(t i18n.Translations) Option {
	return func(o *options) { o.messages = o.messages.Merge(t.Errors) }
}

// WithValidators appends synchronous validators. They run after the
// built-in required and email rules.
func WithValidators(fns ...validator.Func[string]) Option {
	return func(o *options) { o.validators = append(o.validators, fns...) }
}

// WithAsyncValidators appends validators run on blur.
func WithAsyncValidators(fns ...validator.AsyncFunc) Option {
	return func(o *options) { o.asyncValidators = append(o.asyncValidators, fns...) }
}

// WithListener registers callbacks for change, focus, blur and keydown.
func WithListener(l Listener) Option {
	return func(o *options) { o.listeners = append(o.listeners, l) }
}

// WithStaleRoundDiscard drops async results of rounds that were superseded
// by a later blur or change.
func WithStaleRoundDiscard() Option {
	return func(o *options) { o.discardStale = true }
}

// WithStreamBuffer sets how many events each Subscribe channel queues
// before the oldest is dropped.
func WithStreamBuffer(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.buffer = n
		}
	}
}

// WithLogger sets the logger. A nil logger keeps the discard default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
