package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uiwkit/pkg/input"
	"github.com/dmitrymomot/uiwkit/pkg/slider"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Replay a scripted event sequence against a control",
	Long:  `Reads a YAML script describing one control and a list of events, applies them in order and prints the control state after each one. Use "-" to read the script from stdin.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")
		timeout, _ := cmd.Flags().GetDuration("async-timeout")

		script, err := readScript(cmd, args[0])
		if err != nil {
			return err
		}

		r := &replayer{
			out:     newPrinter(cmd.OutOrStdout(), jsonMode),
			timeout: timeout,
		}
		return r.run(cmd.Context(), script)
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().Bool("json", false, "print one JSON object per step (NDJSON)")
	replayCmd.Flags().Duration("async-timeout", 5*time.Second, "how long a blur waits for async validators")
}

func readScript(cmd *cobra.Command, path string) (*Script, error) {
	if path == "-" {
		return parseScript(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return parseScript(f)
}

// Step is the state of the control after one replayed event.
type Step struct {
	N            int                  `json:"step"`
	Event        string               `json:"event"`
	Slider       *slider.State        `json:"slider,omitempty"`
	Notification *slider.Notification `json:"notification,omitempty"`
	Input        *input.State         `json:"input,omitempty"`
	Field        *string              `json:"field,omitempty"`
	Emitted      []string             `json:"emitted,omitempty"`
	Err          string               `json:"err,omitempty"`
}

type printer struct {
	w    io.Writer
	json bool
	enc  *jsoniter.Encoder
}

func newPrinter(w io.Writer, jsonMode bool) *printer {
	return &printer{
		w:    w,
		json: jsonMode,
		enc:  jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w),
	}
}

func (p *printer) print(s Step) error {
	if p.json {
		return p.enc.Encode(s)
	}

	line := fmt.Sprintf("%3d %-13s", s.N, s.Event)
	switch {
	case s.Slider != nil:
		line += fmt.Sprintf(" value=%d input=%q handle=%.1f fill=%.1f dragging=%t error=%q",
			s.Slider.Value, s.Slider.Input, s.Slider.HandlePos, s.Slider.Fill, s.Slider.Dragging, s.Slider.Error)
	case s.Input != nil:
		line += fmt.Sprintf(" value=%q valid=%t validated=%t error=%q",
			s.Input.Value, s.Input.Valid, s.Input.ValidatedAsync, s.Input.Error)
		if s.Field != nil {
			line += fmt.Sprintf(" field=%q", *s.Field)
		}
	}
	if len(s.Emitted) > 0 {
		line += fmt.Sprintf(" emitted=%q", s.Emitted)
	}
	if s.Err != "" {
		line += " err=" + s.Err
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}

type replayer struct {
	out     *printer
	timeout time.Duration
}

func (r *replayer) run(ctx context.Context, s *Script) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.Control == controlSlider {
		return r.runSlider(s)
	}
	return r.runInput(ctx, s)
}

// scriptLayout is the slider layout of a replay. Resize events change it.
type scriptLayout struct {
	mu   sync.Mutex
	spec LayoutSpec
}

func (l *scriptLayout) BarStart() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.spec.BarStart
}

func (l *scriptLayout) BarWidth() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.spec.BarWidth
}

func (l *scriptLayout) HandleWidth() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.spec.HandleWidth
}

func (l *scriptLayout) resize(width float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.spec.BarWidth = width
}

func (r *replayer) runSlider(s *Script) error {
	spec := s.Slider
	if spec == nil {
		spec = &SliderSpec{}
	}
	required := app.slider.Required
	if spec.Required != nil {
		required = *spec.Required
	}

	layout := &scriptLayout{spec: spec.Layout}
	eng, err := slider.New(layout,
		slider.WithRange(spec.sliderRange(app.slider)),
		slider.WithValue(spec.Value),
		slider.WithRequired(required),
		slider.WithDisabled(spec.Disabled),
		slider.WithLabel(spec.Label),
		slider.WithPostfix(spec.Postfix),
		slider.WithTranslations(app.translations),
		slider.WithLogger(app.log),
	)
	if err != nil {
		return err
	}

	for i, ev := range s.Events {
		step := Step{N: i + 1, Event: ev.Type}

		var evErr error
		switch ev.Type {
		case "press-bar":
			evErr = eng.PressBar(ev.X)
		case "press-handle":
			evErr = eng.PressHandle()
		case "move":
			evErr = eng.Move(ev.X)
		case "touch-move":
			evErr = eng.TouchMove(ev.X)
		case "release":
			eng.Release()
		case "key":
			if !eng.KeyDown(ev.Key) {
				step.Err = "key not handled"
			}
		case "input":
			eng.Input(ev.Text)
		case "resize":
			layout.resize(ev.Width)
			eng.Resize()
		case "disable":
			eng.SetDisabled(true)
		case "enable":
			eng.SetDisabled(false)
		default:
			return fmt.Errorf("%w %q at step %d", ErrUnknownEvent, ev.Type, i+1)
		}
		if evErr != nil {
			step.Err = evErr.Error()
		}

		n := eng.Render()
		st := eng.State()
		step.Slider = &st
		step.Notification = &n

		if err := r.out.print(step); err != nil {
			return err
		}
	}
	return nil
}

func (r *replayer) runInput(ctx context.Context, s *Script) error {
	spec := s.Input
	if spec == nil {
		spec = &InputSpec{}
	}

	typ, err := input.ParseType(spec.Type)
	if err != nil {
		return err
	}
	formatter, err := formatterByName(spec.Formatter)
	if err != nil {
		return err
	}

	var emitted []string
	record := func(format string, args ...any) {
		emitted = append(emitted, fmt.Sprintf(format, args...))
	}

	field := &input.Buffer{}
	opts := []input.Option{
		input.WithType(typ),
		input.WithRequired(spec.Required),
		input.WithDisabled(spec.Disabled),
		input.WithMaxLength(spec.MaxLength),
		input.WithCounter(spec.Counter),
		input.WithDefaults(app.input),
		input.WithField(field),
		input.WithTranslations(app.translations),
		input.WithLogger(app.log),
		input.WithValue(spec.Value),
		input.WithListener(input.Listener{
			OnChange:  func(v string) { record("change:%s", v) },
			OnBlur:    func(v string) { record("blur:%s", v) },
			OnFocus:   func(any) { record("focus") },
			OnKeyDown: func(ev any) { record("keydown:%v", ev) },
		}),
	}
	if formatter != nil {
		opts = append(opts, input.WithFormatter(formatter))
	}
	if spec.DiscardStale {
		opts = append(opts, input.WithStaleRoundDiscard())
	}
	for _, rule := range spec.Async {
		opts = append(opts, input.WithAsyncValidators(rule.validator()))
	}
	c := input.New(opts...)

	for i, ev := range s.Events {
		emitted = nil
		step := Step{N: i + 1, Event: ev.Type}

		switch ev.Type {
		case "change":
			c.Change(ev.Text)
		case "set-value":
			c.SetValue(ev.Text)
		case "focus":
			c.Focus(ev.Type)
		case "keydown":
			c.KeyDown(ev.Key)
		case "blur":
			if future := c.Blur(ctx); future != nil {
				if _, err := future.AwaitWithTimeout(r.timeout); err != nil {
					step.Err = err.Error()
				}
			}
		case "disable":
			c.SetDisabled(true)
		case "enable":
			c.SetDisabled(false)
		default:
			return fmt.Errorf("%w %q at step %d", ErrUnknownEvent, ev.Type, i+1)
		}

		st := c.State()
		text := field.Text()
		step.Input = &st
		step.Field = &text
		step.Emitted = emitted

		if err := r.out.print(step); err != nil {
			return err
		}
	}
	return nil
}

func formatterByName(name string) (input.Formatter, error) {
	switch name {
	case "":
		return nil, nil
	case "digits":
		return input.Digits, nil
	case "integer":
		return input.Integer(false), nil
	case "signed-integer":
		return input.Integer(true), nil
	}
	return nil, fmt.Errorf("%w: formatter %q", ErrInvalidFlag, name)
}
