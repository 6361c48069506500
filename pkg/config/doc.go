// Package config loads control defaults from environment variables.
//
// Load parses a struct tagged for github.com/caarlos0/env once per type and
// caches the result; the optional .env file in the working directory is
// read through github.com/joho/godotenv on first use. LoadFile parses a
// specific dotenv file without touching the process environment, which the
// uiwctl tool uses for its --env-file flag.
//
// The package ships the structs the controls and tools need:
//
//   - SliderDefaults: UIW_SLIDER_MIN, UIW_SLIDER_MAX, UIW_SLIDER_STEP, UIW_SLIDER_REQUIRED
//   - InputDefaults:  UIW_INPUT_EMAIL_MAXLENGTH, UIW_LANG, UIW_TRANSLATIONS
//   - LogConfig:      UIW_LOG_LEVEL, UIW_LOG_FORMAT, UIW_ENV
//
//	var d config.SliderDefaults
//	if err := config.Load(&d); err != nil { ... }
//	if err := d.Validate(); err != nil { ... }
//
// # Error Handling
//
// Parsing failures are returned joined with ErrParsingConfig; use errors.Is
// to detect them.
package config
