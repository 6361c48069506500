package slider

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/uiwkit/pkg/bem"
	"github.com/dmitrymomot/uiwkit/pkg/broadcast"
	"github.com/dmitrymomot/uiwkit/pkg/geometry"
	"github.com/dmitrymomot/uiwkit/pkg/logger"
	"github.com/dmitrymomot/uiwkit/pkg/sanitizer"
	"github.com/dmitrymomot/uiwkit/pkg/statemachine"
	"github.com/dmitrymomot/uiwkit/pkg/validator"
)

const (
	block      bem.Block = "uiw-slider"
	inputBlock bem.Block = "uiw-input"
)

// Engine is the state of one slider instance. It is safe for concurrent use.
type Engine struct {
	id      string
	mu      sync.Mutex
	opts    options
	layout  LayoutProvider
	mapper  geometry.Mapper
	gesture *gestureMachine
	events  *broadcast.MemoryBroadcaster[Notification]
	log     *slog.Logger

	value     int
	input     string
	handlePos float64
	err       string
}

// New creates an engine and positions the handle for the initial value.
func New(layout LayoutProvider, opts ...Option) (*Engine, error) {
	if layout == nil {
		return nil, ErrNilLayout
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.rng.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		id:     uuid.NewString(),
		opts:   o,
		layout: layout,
		events: broadcast.NewMemoryBroadcaster[Notification](o.buffer),
		input:  strconv.Itoa(o.value),
	}

	log := o.logger
	if log == nil {
		log = logger.Discard()
	}
	e.log = log.With(logger.Control(string(block)), logger.ControlID(e.id))
	e.gesture = newGesture(e)

	e.remeasure()
	e.place(o.value)

	return e, nil
}

// ID returns the instance identifier used in log records.
func (e *Engine) ID() string {
	return e.id
}

// PressBar starts a drag from a press on the track at pointer coordinate x.
// The handle jumps under the pointer.
func (e *Engine) PressBar(x float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.fire(eventPress, nil); err != nil {
		return err
	}
	e.followPointer(x)
	return nil
}

// PressHandle starts a drag from a press on the handle itself.
func (e *Engine) PressHandle() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.fire(eventPress, nil)
}

// Move follows the pointer while dragging.
func (e *Engine) Move(x float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.fire(eventMove, x)
}

// TouchMove follows a touch point. Unlike Move it needs no prior press.
func (e *Engine) TouchMove(x float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.fire(eventTouch, x)
}

// Release ends the current drag. Releasing without a drag is a no-op.
func (e *Engine) Release() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.gesture.Is(stateDragging) {
		_ = e.fire(eventRelease, nil)
	}
}

// KeyDown steps the value for "ArrowRight" and "ArrowLeft". It reports
// whether the key was consumed; the host suppresses the default action then.
func (e *Engine) KeyDown(key string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.opts.disabled {
		return false
	}

	var delta int
	switch key {
	case "ArrowRight":
		delta = e.opts.rng.Step
	case "ArrowLeft":
		delta = -e.opts.rng.Step
	default:
		return false
	}

	e.place(e.opts.rng.Shift(e.value, delta))
	e.input = strconv.Itoa(e.value)
	e.log.Debug("value stepped", logger.Event(key), logger.Value(e.value))
	return true
}

// Input takes the raw text of the number field and returns its formatted
// form, which the host writes back into the field. The handle follows the
// parsed number, or the start of the range when nothing parses.
func (e *Engine) Input(raw string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.opts.disabled {
		return e.input
	}

	e.input = sanitizer.SignedInteger(raw, e.opts.rng.AllowsNegative())
	e.sync()
	return e.input
}

// SetValue replaces the value programmatically.
func (e *Engine) SetValue(v int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.input = strconv.Itoa(v)
	e.place(v)
}

// SetRange replaces the value domain and repositions the handle.
func (e *Engine) SetRange(r geometry.Range) error {
	if err := r.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.rng = r
	e.remeasure()
	e.sync()
	return nil
}

// SetDisabled toggles the disabled state. Disabling ends an active drag.
func (e *Engine) SetDisabled(disabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.disabled = disabled
	if disabled {
		e.gesture.Reset()
	}
}

// Resize re-reads the layout and moves the handle to where the current
// value belongs. The value and an ongoing drag are kept.
func (e *Engine) Resize() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.remeasure()
	e.handlePos = e.mapper.ValueToPosition(e.value)
}

// Render validates the current text, stores the error and notifies every
// listener and subscriber. It notifies on every call.
func (e *Engine) Render() Notification {
	n, listeners := e.evaluate()
	for _, l := range listeners {
		l(n)
	}
	e.events.Broadcast(n)
	return n
}

// Subscribe returns a channel subscription to render notifications. It ends
// when ctx is cancelled or the engine is closed.
func (e *Engine) Subscribe(ctx context.Context) broadcast.Subscriber[Notification] {
	return e.events.Subscribe(ctx)
}

// Close ends all subscriptions. The engine stays usable.
func (e *Engine) Close() error {
	return e.events.Close()
}

func (e *Engine) evaluate() (Notification, []Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()

	number, ok := sanitizer.ParseInteger(e.input)
	chain := validator.NewChain(
		[]validator.Func[validator.Number]{
			validator.Bounds(e.opts.rng.Min, e.opts.rng.Max, e.opts.required, e.opts.messages),
		},
		e.opts.validators,
	)

	err := chain.Validate(validator.Number{Value: number, Valid: ok})
	e.err = validator.Message(err)
	if err != nil {
		e.log.Debug("validation failed", logger.Kind(string(validator.KindOf(err))), logger.Value(e.input))
	}

	return Notification{Input: e.input, Error: e.err}, slices.Clone(e.opts.listeners)
}

// State returns a snapshot for drawing.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return State{
		Value:     e.value,
		Input:     e.input,
		HandlePos: e.handlePos,
		Fill:      e.mapper.FillWidth(e.handlePos),
		Error:     e.err,
		Dragging:  e.gesture.Is(stateDragging),
		Disabled:  e.opts.disabled,
	}
}

// Range returns the current value domain.
func (e *Engine) Range() geometry.Range {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts.rng
}

// Modifiers returns the presentation modifiers of the control.
func (e *Engine) Modifiers() bem.Modifiers {
	e.mu.Lock()
	defer e.mu.Unlock()

	return bem.Modifiers{
		"error":    e.err != "",
		"disabled": e.opts.disabled,
	}
}

// Classes returns the class list of the slider root.
func (e *Engine) Classes() string {
	return block.Class(e.Modifiers())
}

// InputClasses returns the class list of the paired number field.
func (e *Engine) InputClasses() string {
	return inputBlock.Class(e.Modifiers())
}

// ElementClass returns the class of a slider element such as "handle".
func (e *Engine) ElementClass(element string) string {
	return block.Element(element)
}

// Label returns the visible label of the slider.
func (e *Engine) Label() string { return e.opts.label }

// Postfix returns the unit shown after the value, such as "km".
func (e *Engine) Postfix() string { return e.opts.postfix }

// Sublabel returns "(min - max)" with the postfix appended when set, unless
// a custom sublabel was configured.
func (e *Engine) Sublabel() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.opts.sublabel != nil {
		return *e.opts.sublabel
	}
	postfix := ""
	if e.opts.postfix != "" {
		postfix = " " + e.opts.postfix
	}
	return fmt.Sprintf("(%d - %d%s)", e.opts.rng.Min, e.opts.rng.Max, postfix)
}

// InputWidth is the width of the number field in characters: room for the
// longer bound plus three.
func (e *Engine) InputWidth() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return max(len(strconv.Itoa(e.opts.rng.Min)), len(strconv.Itoa(e.opts.rng.Max))) + 3
}

// SliderLabel is the accessible name of the track.
func (e *Engine) SliderLabel() string {
	return e.opts.labels.SliderLabel(e.opts.label)
}

// HandleLabel is the accessible name of the handle.
func (e *Engine) HandleLabel() string {
	return e.opts.labels.HandleLabel(e.opts.label)
}

// DecreaseLabel names the step-down action bound to ArrowLeft.
func (e *Engine) DecreaseLabel() string {
	return e.opts.labels.DecreaseLabel(e.opts.label)
}

// InputLabel is the accessible name of the paired number field.
func (e *Engine) InputLabel() string {
	return e.opts.labels.InputLabel(e.opts.label)
}

func (e *Engine) fire(event gestureEvent, data any) error {
	err := e.gesture.Fire(context.Background(), event, data)
	switch {
	case err == nil:
		return nil
	case statemachine.IsTransitionRejectedError(err):
		return ErrDisabled
	case statemachine.IsNoTransitionAvailableError(err):
		return ErrNotDragging
	}
	return err
}

func (e *Engine) remeasure() {
	e.mapper = geometry.NewMapper(e.opts.rng, measure(e.layout))
}

// place clamps v into the range and moves the handle to it.
func (e *Engine) place(v int) {
	e.value = e.opts.rng.Clamp(v)
	e.handlePos = e.mapper.ValueToPosition(e.value)
}

// sync repositions the handle from the displayed text.
func (e *Engine) sync() {
	n, _ := sanitizer.ParseInteger(e.input)
	e.place(n)
}

// followPointer moves the handle under x. A collapsed track over a real
// range, such as a hidden slider, keeps the current value.
func (e *Engine) followPointer(x float64) {
	if e.mapper.Geometry.Slidable() == 0 && e.opts.rng.Span() > 0 {
		e.handlePos = e.mapper.ValueToPosition(e.value)
		return
	}
	pos, v := e.mapper.ClampAndMap(x)
	e.handlePos = pos
	e.value = e.opts.rng.Clamp(v)
	e.input = strconv.Itoa(e.value)
}
