package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	ErrFailedToReadFile    = errors.New("failed to read translation file")
	ErrUnsupportedFileType = errors.New("unsupported translation file type")
	ErrEmptyCatalog        = errors.New("translation catalog has no languages")
)

// ErrLanguageNotSupported indicates that the requested language is not available
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}
