package i18n

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser decodes a translation file into per-language translations.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]Translations, error)

	// SupportsFileExtension accepts extensions with or without a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")

	for _, p := range []Parser{NewJSONParser(), NewYAMLParser()} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

func toTranslations(raw map[string]entry) map[string]Translations {
	out := make(map[string]Translations, len(raw))
	for lang, e := range raw {
		if lang == "" {
			continue
		}
		out[lang] = e.translations()
	}
	return out
}
