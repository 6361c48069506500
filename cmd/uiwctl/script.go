package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/uiwkit/pkg/config"
	"github.com/dmitrymomot/uiwkit/pkg/geometry"
	"github.com/dmitrymomot/uiwkit/pkg/validator"
)

const (
	controlSlider = "slider"
	controlInput  = "input"
)

// Script describes one control and the events to replay against it.
//
//	control: slider
//	slider:
//	  max: 10
//	  step: 2
//	  layout: {barWidth: 110, handleWidth: 10}
//	events:
//	  - {type: press-bar, x: 65}
//	  - {type: key, key: ArrowRight}
type Script struct {
	Control string       `yaml:"control"`
	Slider  *SliderSpec  `yaml:"slider"`
	Input   *InputSpec   `yaml:"input"`
	Events  []ScriptStep `yaml:"events"`
}

// SliderSpec configures a slider. Unset bounds fall back to the host defaults.
type SliderSpec struct {
	Min      *int       `yaml:"min"`
	Max      *int       `yaml:"max"`
	Step     *int       `yaml:"step"`
	Value    int        `yaml:"value"`
	Required *bool      `yaml:"required"`
	Disabled bool       `yaml:"disabled"`
	Label    string     `yaml:"label"`
	Postfix  string     `yaml:"postfix"`
	Layout   LayoutSpec `yaml:"layout"`
}

type LayoutSpec struct {
	BarStart    float64 `yaml:"barStart"`
	BarWidth    float64 `yaml:"barWidth"`
	HandleWidth float64 `yaml:"handleWidth"`
}

type InputSpec struct {
	Type         string      `yaml:"type"`
	Required     bool        `yaml:"required"`
	Disabled     bool        `yaml:"disabled"`
	Value        string      `yaml:"value"`
	MaxLength    int         `yaml:"maxLength"`
	Counter      int         `yaml:"counter"`
	Formatter    string      `yaml:"formatter"`
	DiscardStale bool        `yaml:"discardStale"`
	Async        []AsyncRule `yaml:"async"`
}

// AsyncRule is a simulated remote check. It waits Delay and rejects with
// Reject when set, either always or only for the value When.
type AsyncRule struct {
	Delay  time.Duration `yaml:"delay"`
	Reject string        `yaml:"reject"`
	When   string        `yaml:"when"`
}

// ScriptStep is one host event. Which fields matter depends on Type.
type ScriptStep struct {
	Type  string  `yaml:"type"`
	X     float64 `yaml:"x"`
	Key   string  `yaml:"key"`
	Text  string  `yaml:"text"`
	Width float64 `yaml:"width"`
}

func parseScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}
		return nil, fmt.Errorf("parse script: %w", err)
	}

	if s.Control == "" {
		s.Control = controlInput
		if s.Slider != nil {
			s.Control = controlSlider
		}
	}
	switch s.Control {
	case controlSlider, controlInput:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownControl, s.Control)
	}
	if len(s.Events) == 0 {
		return nil, ErrEmptyScript
	}
	return &s, nil
}

// sliderRange overlays the script's bounds on the host defaults.
func (s *SliderSpec) sliderRange(d config.SliderDefaults) geometry.Range {
	r := d.Range()
	if s.Min != nil {
		r.Min = *s.Min
	}
	if s.Max != nil {
		r.Max = *s.Max
	}
	if s.Step != nil {
		r.Step = *s.Step
	}
	return r
}

func (a AsyncRule) validator() validator.AsyncFunc {
	return func(ctx context.Context, value string) error {
		select {
		case <-time.After(a.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if a.Reject == "" || (a.When != "" && a.When != value) {
			return nil
		}
		return validator.New(a.Reject)
	}
}
