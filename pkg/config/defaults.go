package config

import (
	"errors"

	"github.com/dmitrymomot/uiwkit/pkg/geometry"
)

// SliderDefaults holds host-wide slider defaults.
type SliderDefaults struct {
	Min      int  `env:"UIW_SLIDER_MIN" envDefault:"0"`
	Max      int  `env:"UIW_SLIDER_MAX" envDefault:"1000"`
	Step     int  `env:"UIW_SLIDER_STEP" envDefault:"1"`
	Required bool `env:"UIW_SLIDER_REQUIRED" envDefault:"false"`
}

// Range returns the configured value domain.
func (d SliderDefaults) Range() geometry.Range {
	return geometry.Range{Min: d.Min, Max: d.Max, Step: d.Step}
}

// Validate checks the range invariants.
func (d SliderDefaults) Validate() error {
	if err := d.Range().Validate(); err != nil {
		return errors.Join(ErrInvalidDefaults, err)
	}
	return nil
}

// InputDefaults holds host-wide text input defaults.
type InputDefaults struct {
	EmailMaxLength int    `env:"UIW_INPUT_EMAIL_MAXLENGTH" envDefault:"320"`
	Language       string `env:"UIW_LANG" envDefault:"en"`
	Translations   string `env:"UIW_TRANSLATIONS"`
}

// LogConfig selects logger behaviour.
type LogConfig struct {
	Level  string `env:"UIW_LOG_LEVEL" envDefault:"info"`
	Format string `env:"UIW_LOG_FORMAT" envDefault:"text"`
	Env    string `env:"UIW_ENV" envDefault:"development"`
}
