// Package i18n loads localized strings for the form controls.
//
// A catalog file maps language codes to an "error" section, whose keys are
// validator kinds (required, tooHigh, tooLow, invalidEmail), and an
// "ariaLabels" section for the render collaborator:
//
//	de:
//	  error:
//	    required: "Eingabe erforderlich."
//	    tooHigh: "Höchstwert ist %{max}."
//	  ariaLabels:
//	    slider: "Betrag"
//
// YAML files are decoded with gopkg.in/yaml.v3 and JSON files with
// json-iterator. Catalog.Match and Catalog.Negotiate select the closest
// language through golang.org/x/text/language, falling back to the default
// language ("en") when nothing matches. Keys that a language leaves out fall
// back to the controls' built-in English text.
package i18n
