package slider

import (
	"log/slog"

	"github.com/dmitrymomot/uiwkit/pkg/config"
	"github.com/dmitrymomot/uiwkit/pkg/geometry"
	"github.com/dmitrymomot/uiwkit/pkg/i18n"
	"github.com/dmitrymomot/uiwkit/pkg/validator"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	rng        geometry.Range
	value      int
	required   bool
	disabled   bool
	label      string
	postfix    string
	sublabel   *string
	labels     i18n.Labels
	messages   validator.Messages
	validators []validator.Func[validator.Number]
	listeners  []Listener
	buffer     int
	logger     *slog.Logger
}

const defaultStreamBuffer = 16

func defaultOptions() options {
	return options{rng: geometry.DefaultRange(), buffer: defaultStreamBuffer}
}

// WithRange sets the value domain. New rejects invalid ranges.
func WithRange(r geometry.Range) Option {
	return func(o *options) { o.rng = r }
}

// WithDefaults applies host-wide defaults loaded through pkg/config.
func WithDefaults(d config.SliderDefaults) Option {
	return func(o *options) {
		o.rng = d.Range()
		o.required = d.Required
	}
}

// WithValue sets the initial value. Values outside the range are kept as
// text and reported by validation.
func WithValue(v int) Option {
	return func(o *options) { o.value = v }
}

// WithRequired reports an error while the number field is empty.
func WithRequired(required bool) Option {
	return func(o *options) { o.required = required }
}

// WithDisabled starts the engine disabled.
func WithDisabled(disabled bool) Option {
	return func(o *options) { o.disabled = disabled }
}

// WithLabel sets the visible label, also used to build accessible names.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

// WithPostfix sets the unit shown after the number, e.g. "kg".
func WithPostfix(postfix string) Option {
	return func(o *options) { o.postfix = postfix }
}

// WithSublabel replaces the generated "(min - max)" sublabel. An empty
// string hides it.
func WithSublabel(sublabel string) Option {
	return func(o *options) { o.sublabel = &sublabel }
}

// WithMessages overrides built-in error wording per kind.
func WithMessages(m validator.Messages) Option {
	return func(o *options) { o.messages = o.messages.Merge(m) }
}

// WithTranslations applies error templates and accessible labels of one language.
func WithTranslations(t i18n.Translations) Option {
	return func(o *options) {
		o.messages = o.messages.Merge(t.Errors)
		o.labels = t.Labels
	}
}

// WithValidators appends caller validators. They run after the built-in rule.
func WithValidators(fns ...validator.Func[validator.Number]) Option {
	return func(o *options) { o.validators = append(o.validators, fns...) }
}

// WithListener registers a render listener. Nil listeners are ignored.
func WithListener(l Listener) Option {
	return func(o *options) {
		if l != nil {
			o.listeners = append(o.listeners, l)
		}
	}
}

// WithStreamBuffer sets how many notifications each Subscribe channel queues
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
