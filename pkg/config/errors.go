package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrConfigNotLoaded is returned when a cached config is missing after loading
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to a loader
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrReadingEnvFile is returned when an explicit dotenv file cannot be read
	ErrReadingEnvFile = errors.New("failed to read env file")

	// ErrInvalidDefaults is returned when loaded defaults violate control invariants
	ErrInvalidDefaults = errors.New("invalid control defaults")
)
