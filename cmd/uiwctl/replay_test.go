package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uiwkit/pkg/config"
	"github.com/dmitrymomot/uiwkit/pkg/logger"
)

func init() {
	app = env{
		log:    logger.Discard(),
		slider: config.SliderDefaults{Min: 0, Max: 1000, Step: 1},
		input:  config.InputDefaults{EmailMaxLength: 320, Language: "en"},
	}
}

func replay(t *testing.T, script string) []Step {
	t.Helper()

	s, err := parseScript(strings.NewReader(script))
	require.NoError(t, err)

	var buf bytes.Buffer
	r := &replayer{out: newPrinter(&buf, true), timeout: time.Second}
	require.NoError(t, r.run(context.Background(), s))

	var steps []Step
	dec := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(&buf)
	for dec.More() {
		var st Step
		require.NoError(t, dec.Decode(&st))
		steps = append(steps, st)
	}
	return steps
}

func TestParseScript(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		script  string
		control string
		wantErr error
	}{
		{name: "slider inferred", script: "slider: {max: 10}\nevents: [{type: release}]", control: controlSlider},
		{name: "input by default", script: "events: [{type: focus}]", control: controlInput},
		{name: "unknown control", script: "control: knob\nevents: [{type: focus}]", wantErr: ErrUnknownControl},
		{name: "no events", script: "control: input", wantErr: ErrEmptyScript},
		{name: "empty document", script: "", wantErr: ErrEmptyScript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := parseScript(strings.NewReader(tt.script))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.control, s.Control)
		})
	}

	_, err := parseScript(strings.NewReader("bogus: 1\nevents: [{type: focus}]"))
	assert.Error(t, err)
}

func TestReplaySlider(t *testing.T) {
	t.Parallel()

	steps := replay(t, `
slider:
  max: 10
  step: 2
  value: 4
  layout: {barWidth: 110, handleWidth: 10}
events:
  - {type: key, key: ArrowRight}
  - {type: press-bar, x: 25}
  - {type: move, x: 200}
  - {type: release}
  - {type: move, x: 10}
  - {type: input, text: "12"}
  - {type: resize, width: 210}
`)
	require.Len(t, steps, 7)

	assert.Equal(t, 6, steps[0].Slider.Value)
	assert.Equal(t, 2, steps[1].Slider.Value)
	assert.True(t, steps[1].Slider.Dragging)
	assert.Equal(t, 10, steps[2].Slider.Value)
	assert.False(t, steps[3].Slider.Dragging)
	assert.NotEmpty(t, steps[4].Err)
	assert.Equal(t, 10, steps[4].Slider.Value)

	assert.Equal(t, "12", steps[5].Notification.Input)
	assert.Equal(t, "The maximum value is 10.", steps[5].Notification.Error)
	assert.InDelta(t, 200, steps[6].Slider.HandlePos, 1e-9)
}

func TestReplayInput(t *testing.T) {
	t.Parallel()

	steps := replay(t, `
input:
  type: email
  required: true
  async:
    - {delay: 10ms}
    - {delay: 5ms, reject: "taken", when: "jane@example.com"}
events:
  - {type: focus}
  - {type: change, text: "jane"}
  - {type: change, text: "jane@example.com"}
  - {type: blur}
  - {type: change, text: "joe@example.com"}
  - {type: blur}
`)
	require.Len(t, steps, 6)

	assert.Equal(t, []string{"focus"}, steps[0].Emitted)
	assert.Equal(t, "Invalid email address", steps[1].Input.Error)
	assert.Empty(t, steps[2].Input.Error)

	assert.Equal(t, "taken", steps[3].Input.Error)
	assert.True(t, steps[3].Input.ValidatedAsync)
	assert.Equal(t, []string{"blur:jane@example.com"}, steps[3].Emitted)

	assert.Empty(t, steps[5].Input.Error)
	assert.True(t, steps[5].Input.Valid)
}

func TestReplayFormatterResync(t *testing.T) {
	t.Parallel()

	steps := replay(t, `
input:
  formatter: digits
events:
  - {type: change, text: "10"}
  - {type: change, text: "10a"}
`)
	require.Len(t, steps, 2)
	assert.Equal(t, "10", steps[1].Input.Value)
	assert.Equal(t, "10", *steps[1].Field)
	assert.Equal(t, []string{"change:10"}, steps[1].Emitted)
}

func TestReplayUnknownEvent(t *testing.T) {
	t.Parallel()

	s, err := parseScript(strings.NewReader("events: [{type: wiggle}]"))
	require.NoError(t, err)

	r := &replayer{out: newPrinter(&bytes.Buffer{}, false), timeout: time.Second}
	assert.ErrorIs(t, r.run(context.Background(), s), ErrUnknownEvent)
}

func TestTextPrinter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := newPrinter(&buf, false)
	field := "1"
	require.NoError(t, p.print(Step{N: 1, Event: "change", Field: &field, Emitted: []string{"change:1"}}))

	assert.Contains(t, buf.String(), "change")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestFormatterByName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"digits", "integer", "signed-integer"} {
		f, err := formatterByName(name)
		require.NoError(t, err)
		assert.NotNil(t, f)
	}

	f, err := formatterByName("")
	require.NoError(t, err)
	assert.Nil(t, f)

	_, err = formatterByName("upper")
	assert.ErrorIs(t, err, ErrInvalidFlag)
}
