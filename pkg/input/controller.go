package input

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dmitrymomot/uiwkit/pkg/async"
	"github.com/dmitrymomot/uiwkit/pkg/bem"
	"github.com/dmitrymomot/uiwkit/pkg/broadcast"
	"github.com/dmitrymomot/uiwkit/pkg/logger"
	"github.com/dmitrymomot/uiwkit/pkg/sanitizer"
	"github.com/dmitrymomot/uiwkit/pkg/validator"
)

const block bem.Block = "uiw-input"

// Controller is the state of one text field. It is safe for concurrent use.
type Controller struct {
	id     string
	mu     sync.Mutex
	opts   options
	events *broadcast.MemoryBroadcaster[Event]
	log    *slog.Logger

	value          string
	lastValue      string
	err            string
	validatedAsync bool
	round          uint64
}

// New creates a controller. A non-empty initial value is formatted and
// validated right away.
func New(opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller{
		id:     uuid.NewString(),
		opts:   o,
		events: broadcast.NewMemoryBroadcaster[Event](o.buffer),
	}

	log := o.logger
	if log == nil {
		log = logger.Discard()
	}
	c.log = log.With(logger.Control(string(block)), logger.ControlID(c.id))

	if o.value != "" {
		c.update(o.value)
	}

	return c
}

// ID returns the instance identifier used in log records.
func (c *Controller) ID() string {
	return c.id
}

// Change handles text typed into the field.
func (c *Controller) Change(raw string) {
	c.mu.Lock()
	if c.opts.disabled {
		c.mu.Unlock()
		return
	}
	c.update(sanitizer.MaxLength(raw, c.maxLength()))
	value, errMsg := c.value, c.err
	listeners := slices.Clone(c.opts.listeners)
	c.mu.Unlock()

	for _, l := range listeners {
		if l.OnChange != nil {
			l.OnChange(value)
		}
	}
	c.events.Broadcast(Event{Kind: EventChange, Value: value, Error: errMsg})
}

// SetValue replaces the value programmatically. With a formatter the value
// takes the same path as typed text; without one it is stored as-is.
func (c *Controller) SetValue(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.opts.formatter != nil {
		c.update(v)
		return
	}
	c.value = v
}

// Blur validates synchronously and, when that passes, starts an async round.
// It returns the round's future, which resolves to the field error after the
// round ("" when valid), or nil when no round was started.
func (c *Controller) Blur(ctx context.Context) *async.Future[string] {
	c.mu.Lock()
	if c.opts.disabled {
		c.mu.Unlock()
		return nil
	}

	c.validateSync()

	var future *async.Future[string]
	switch {
	case len(c.opts.asyncValidators) == 0:
		c.validatedAsync = true
	case c.err == "":
		future = c.startRound(ctx)
	}

	value, errMsg := c.value, c.err
	listeners := slices.Clone(c.opts.listeners)
	c.mu.Unlock()

	for _, l := range listeners {
		if l.OnBlur != nil {
			l.OnBlur(value)
		}
	}
	c.events.Broadcast(Event{Kind: EventBlur, Value: value, Error: errMsg})
	return future
}

// Focus forwards a focus event to listeners.
func (c *Controller) Focus(ev any) {
	listeners, ok := c.listeners()
	if !ok {
		return
	}
	for _, l := range listeners {
		if l.OnFocus != nil {
			l.OnFocus(ev)
		}
	}
	c.events.Broadcast(Event{Kind: EventFocus, Payload: ev})
}

// KeyDown forwards a key event to listeners.
func (c *Controller) KeyDown(ev any) {
	listeners, ok := c.listeners()
	if !ok {
		return
	}
	for _, l := range listeners {
		if l.OnKeyDown != nil {
			l.OnKeyDown(ev)
		}
	}
	c.events.Broadcast(Event{Kind: EventKeyDown, Payload: ev})
}

// Subscribe returns a channel subscription to field events, including the
// settlement of async rounds. It ends when ctx is cancelled or the
// controller is closed.
func (c *Controller) Subscribe(ctx context.Context) broadcast.Subscriber[Event] {
	return c.events.Subscribe(ctx)
}

// Close ends all subscriptions. Rounds still in flight keep running.
func (c *Controller) Close() error {
	return c.events.Close()
}

// IsValid reports whether an async round (or an async-less blur) has
// completed and no error is set.
func (c *Controller) IsValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validatedAsync && c.err == ""
}

// Value returns the stored, formatted value.
func (c *Controller) Value() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Error returns the current error message, empty when valid.
func (c *Controller) Error() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// State returns a snapshot for drawing.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		Value:          c.value,
		Error:          c.err,
		ValidatedAsync: c.validatedAsync,
		Valid:          c.validatedAsync && c.err == "",
		Disabled:       c.opts.disabled,
	}
}

// Type returns the field type.
func (c *Controller) Type() Type {
	return c.opts.typ
}

// MaxLength returns the character limit, 0 for none.
func (c *Controller) MaxLength() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxLength()
}

// Counter returns the "length / limit" text, or "" when no counter is set.
func (c *Controller) Counter() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.opts.counter <= 0 {
		return ""
	}
	return fmt.Sprintf("%d / %d", utf8.RuneCountInString(c.value), c.opts.counter)
}

// SetDisabled toggles whether user events are accepted.
func (c *Controller) SetDisabled(disabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.disabled = disabled
}

// Modifiers returns the active BEM modifiers of the control.
func (c *Controller) Modifiers() bem.Modifiers {
	c.mu.Lock()
	defer c.mu.Unlock()

	return bem.Modifiers{
		"error":    c.err != "",
		"disabled": c.opts.disabled,
	}
}

// Classes returns the class list of the field root.
func (c *Controller) Classes() string {
	return block.Class(c.Modifiers())
}

// ElementClass returns the class of a field element such as "error".
func (c *Controller) ElementClass(element string) string {
	return block.Element(element)
}

// update formats and stores v, validates it and resynchronizes the field
// when the browser would otherwise keep showing the unformatted text.
func (c *Controller) update(v string) {
	if c.opts.formatter != nil {
		v = c.opts.formatter(v, c.opts.field)
	}
	c.value = v
	c.validateSync()

	if c.lastValue == "" || c.lastValue == c.value {
		c.opts.field.SetText(c.value)
	}
	c.lastValue = c.value
}

// validateSync stores the first failure of the chain, replacing any error
// left by an earlier async round.
func (c *Controller) validateSync() {
	chain := validator.NewChain(c.builtins(), c.opts.validators)
	c.err = validator.Message(chain.Validate(c.value))
}

func (c *Controller) builtins() []validator.Func[string] {
	var fns []validator.Func[string]
	if c.opts.required {
		fns = append(fns, validator.Required(c.opts.messages))
	}
	if c.opts.typ == TypeEmail {
		fns = append(fns, validator.Email(c.opts.messages))
	}
	return fns
}

func (c *Controller) maxLength() int {
	if c.opts.maxLength == 0 && c.opts.typ == TypeEmail {
		return c.opts.emailMaxLength
	}
	return c.opts.maxLength
}

// listeners reports false while the field is disabled.
func (c *Controller) listeners() ([]Listener, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.opts.disabled {
		return nil, false
	}
	return slices.Clone(c.opts.listeners), true
}

type roundInput struct {
	n     uint64
	value string
}

// startRound must be called with the lock held. The round outlives ctx
// cancellation so that its result is always written back.
func (c *Controller) startRound(ctx context.Context) *async.Future[string] {
	c.validatedAsync = false
	c.round++

	fns := slices.Clone(c.opts.asyncValidators)
	in := roundInput{n: c.round, value: c.value}
	ctx = logger.WithControl(ctx, string(block))

	c.log.DebugContext(ctx, "async validation started", logger.Round(in.n))

	return async.Async(context.WithoutCancel(ctx), in, func(_ context.Context, in roundInput) (string, error) {
		start := time.Now()
		err := validator.RunAsync(ctx, in.value, fns...)
		msg, applied := c.settle(ctx, in, err, time.Since(start))
		if applied {
			c.events.Broadcast(Event{Kind: EventValidated, Value: in.value, Error: msg})
		}
		return msg, nil
	})
}

// settle writes a round's outcome back. It reports false when the result
// was discarded as stale.
func (c *Controller) settle(ctx context.Context, in roundInput, err error, took time.Duration) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.opts.discardStale && (in.n != c.round || in.value != c.value) {
		c.log.DebugContext(ctx, "stale async result discarded", logger.Round(in.n))
		return c.err, false
	}

	msg := validator.Message(err)
	if err != nil && msg == "" {
		msg = validator.ErrAsyncValidationFailed.Error()
	}
	c.err = msg
	c.validatedAsync = true

	c.log.DebugContext(ctx, "async validation settled",
		logger.Round(in.n),
		logger.Duration(took),
		logger.Kind(string(validator.KindOf(err))),
	)
	return msg, true
}
