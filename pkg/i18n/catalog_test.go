package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uiwkit/pkg/i18n"
	"github.com/dmitrymomot/uiwkit/pkg/validator"
)

const yamlCatalog = `
en:
  error:
    required: "The input is required."
de:
  error:
    required: "Eingabe erforderlich."
    tooHigh: "Höchstwert ist %{max}."
    invalidEmail: "Ungültige E-Mail-Adresse"
  ariaLabels:
    slider: "Betrag"
    decrease: "Verringern"
    inputField: "Betrag eingeben"
fr:
  error:
    tooLow: "Minimum %{min}."
`

const jsonCatalog = `{
  "en": {"error": {"tooLow": "Too small"}},
  "es": {"error": {"required": "Obligatorio"}, "ariaLabels": {"slider": "Cantidad"}}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	cat, err := i18n.Load(context.Background(), writeFile(t, "controls.yaml", yamlCatalog))
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "en", "fr"}, cat.Languages())

	de, err := cat.Get("de")
	require.NoError(t, err)
	assert.Equal(t, "Eingabe erforderlich.", de.Errors[validator.KindRequired])
	assert.Equal(t, "Ungültige E-Mail-Adresse", de.Errors[validator.KindInvalidEmail])
	assert.Equal(t, "Betrag", de.Labels.Slider)
	assert.Equal(t, "Verringern", de.Labels.Decrease)
	assert.Equal(t, "Betrag eingeben", de.Labels.InputField)

	rule := validator.Bounds(0, 10, true, de.Errors)
	assert.Equal(t, "Höchstwert ist 10.", validator.Message(rule(validator.Number{Value: 11, Valid: true})))
	assert.Equal(t, "The minimum value is 0.", validator.Message(rule(validator.Number{Value: -1, Valid: true})))
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	cat, err := i18n.Load(context.Background(), writeFile(t, "controls.json", jsonCatalog))
	require.NoError(t, err)

	es, err := cat.Get("es")
	require.NoError(t, err)
	assert.Equal(t, "Obligatorio", es.Errors[validator.KindRequired])
	assert.Equal(t, "Cantidad", es.Labels.Slider)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := i18n.Load(ctx, writeFile(t, "controls.toml", "x"))
	assert.ErrorIs(t, err, i18n.ErrUnsupportedFileType)

	_, err = i18n.Load(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)

	_, err = i18n.Load(ctx, writeFile(t, "broken.json", `{"en": {"error": }`))
	assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)

	_, err = i18n.Load(ctx, writeFile(t, "broken.yml", "en: [unclosed"))
	assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)

	_, err = i18n.Load(ctx, writeFile(t, "empty.json", `{}`))
	assert.ErrorIs(t, err, i18n.ErrEmptyCatalog)
}

func TestParseCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := i18n.NewYAMLParser().Parse(ctx, []byte(yamlCatalog))
	assert.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)

	_, err = i18n.NewJSONParser().Parse(ctx, []byte(jsonCatalog))
	assert.ErrorIs(t, err, i18n.ErrJSONParsingCancelled)
}

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("a.yml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("a.YAML"))
	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("dir/a.json"))
	assert.Nil(t, i18n.NewParserForFile("a.txt"))
	assert.Nil(t, i18n.NewParserForFile("noext"))
}

func TestCatalogMatch(t *testing.T) {
	t.Parallel()

	cat, err := i18n.Load(context.Background(), writeFile(t, "controls.yaml", yamlCatalog))
	require.NoError(t, err)

	name, tr := cat.Match("de-AT")
	assert.Equal(t, "de", name)
	assert.Equal(t, "Betrag", tr.Labels.Slider)

	name, _ = cat.Match("fr")
	assert.Equal(t, "fr", name)

	name, _ = cat.Match("ja")
	assert.Equal(t, "en", name)

	name, _ = cat.Match("not a tag!")
	assert.Equal(t, "en", name)

	_, err = cat.Get("ja")
	var unsupported *i18n.ErrLanguageNotSupported
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "ja", unsupported.Lang)
}

func TestCatalogNegotiate(t *testing.T) {
	t.Parallel()

	cat, err := i18n.Load(context.Background(), writeFile(t, "controls.yaml", yamlCatalog),
		i18n.WithDefaultLanguage("fr"))
	require.NoError(t, err)

	name, _ := cat.Negotiate("ja, de;q=0.8, en;q=0.5")
	assert.Equal(t, "de", name)

	name, _ = cat.Negotiate("")
	assert.Equal(t, "fr", name)

	name, _ = cat.Negotiate("ja")
	assert.Equal(t, "fr", name)

	again, tr := cat.Negotiate("ja, de;q=0.8, en;q=0.5")
	assert.Equal(t, "de", again)
	want, err := cat.Get("de")
	require.NoError(t, err)
	assert.Equal(t, want, tr)
}

func TestLabelsDefaults(t *testing.T) {
	t.Parallel()

	var l i18n.Labels
	assert.Equal(t, "Amount - slider field.", l.SliderLabel("Amount"))
	assert.Equal(t, "Amount - slider handle.", l.HandleLabel("Amount"))
	assert.Equal(t, "Amount - decrease.", l.DecreaseLabel("Amount"))
	assert.Equal(t, "Amount - input field.", l.InputLabel("Amount"))

	l = i18n.Labels{Slider: "Betrag", Decrease: "Weniger", InputField: "Betrag eingeben"}
	assert.Equal(t, "Betrag", l.SliderLabel("Amount"))
	assert.Equal(t, "Betrag", l.HandleLabel("Amount"))
	assert.Equal(t, "Weniger", l.DecreaseLabel("Amount"))
	assert.Equal(t, "Betrag eingeben", l.InputLabel("Amount"))
}
