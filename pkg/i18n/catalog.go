package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/uiwkit/pkg/cache"
	"github.com/dmitrymomot/uiwkit/pkg/logger"
)

// DefaultLanguage is used when nothing better matches.
const DefaultLanguage = "en"

const defaultNegotiationCache = 128

// Catalog holds control translations for several languages and picks the
// best one for a requested tag.
type Catalog struct {
	langs       map[string]Translations
	names       []string // sorted language codes
	ordered     []string // codes in matcher order, default first
	matcher     language.Matcher
	defaultLang string
	logger      *slog.Logger
	cacheSize   int
	negotiated  *cache.Memo[string, string] // Accept-Language header -> language code
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when matching fails.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithNegotiationCache sets how many distinct Accept-Language headers
// Negotiate remembers.
func WithNegotiationCache(size int) Option {
	return func(c *Catalog) {
		if size > 0 {
			c.cacheSize = size
		}
	}
}

// NewCatalog builds a catalog from parsed translations.
func NewCatalog(langs map[string]Translations, opts ...Option) (*Catalog, error) {
	if len(langs) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		langs:       langs,
		defaultLang: DefaultLanguage,
		logger:      logger.Discard(),
		cacheSize:   defaultNegotiationCache,
	}
	for _, opt := range opts {
		opt(c)
	}

	for name := range langs {
		c.names = append(c.names, name)
	}
	slices.Sort(c.names)

	// The matcher falls back to its first tag, so the default goes first.
	c.ordered = slices.Clone(c.names)
	if i := slices.Index(c.ordered, c.defaultLang); i > 0 {
		c.ordered = append([]string{c.defaultLang}, slices.Delete(c.ordered, i, i+1)...)
	}

	tags := make([]language.Tag, 0, len(c.ordered))
	for _, name := range c.ordered {
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("invalid language code %q: %w", name, err)
		}
		tags = append(tags, tag)
	}
	c.matcher = language.NewMatcher(tags)
	c.negotiated = cache.NewMemo[string, string](c.cacheSize)

	return c, nil
}

// Load reads a YAML or JSON catalog file.
func Load(ctx context.Context, path string, opts ...Option) (*Catalog, error) {
	parser := NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	langs, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, err
	}
	return NewCatalog(langs, opts...)
}

// Languages returns the catalog's language codes, sorted.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.names)
}

// Get returns translations for an exact language code.
func (c *Catalog) Get(lang string) (Translations, error) {
	t, ok := c.langs[lang]
	if !ok {
		return Translations{}, &ErrLanguageNotSupported{Lang: lang}
	}
	return t, nil
}

// Match returns the closest language for lang (e.g. "de-AT" → "de"),
// falling back to the default language.
func (c *Catalog) Match(lang string) (string, Translations) {
	tag, err := language.Parse(lang)
	if err != nil {
		c.logger.Debug("unparsable language, using default", slog.String("lang", lang))
		return c.fallback()
	}
	return c.matchTags(tag)
}

// Negotiate picks a language from an Accept-Language header value.
// Results are remembered per header.
func (c *Catalog) Negotiate(header string) (string, Translations) {
	name := c.negotiated.Do(header, func() string {
		tags, _, err := language.ParseAcceptLanguage(header)
		if err != nil || len(tags) == 0 {
			name, _ := c.fallback()
			return name
		}
		name, _ := c.matchTags(tags...)
		return name
	})
	hits, misses := c.negotiated.Stats()
	c.logger.Debug("language negotiated",
		slog.String("lang", name),
		slog.Uint64("cache_hits", hits),
		slog.Uint64("cache_misses", misses),
	)
	return name, c.langs[name]
}

func (c *Catalog) matchTags(tags ...language.Tag) (string, Translations) {
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		c.logger.Debug("no language match, using default", slog.Any("tags", tags))
		return c.fallback()
	}
	name := c.ordered[idx]
	return name, c.langs[name]
}

func (c *Catalog) fallback() (string, Translations) {
	if t, ok := c.langs[c.defaultLang]; ok {
		return c.defaultLang, t
	}
	return c.defaultLang, Translations{}
}
