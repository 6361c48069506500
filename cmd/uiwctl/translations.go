package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uiwkit/pkg/i18n"
	"github.com/dmitrymomot/uiwkit/pkg/validator"
)

var translationsCmd = &cobra.Command{
	Use:   "translations <catalog>",
	Short: "Inspect a translation catalog",
	Long:  `Lists the languages of a YAML or JSON catalog and shows which one an Accept-Language header selects.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		accept, _ := cmd.Flags().GetString("accept")

		catalog, err := i18n.Load(cmd.Context(), args[0],
			i18n.WithDefaultLanguage(app.input.Language),
			i18n.WithLogger(app.log),
		)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "languages: %v\n", catalog.Languages())
		if accept == "" {
			return nil
		}

		lang, tr := catalog.Negotiate(accept)
		fmt.Fprintf(out, "selected: %s\n", lang)
		for _, kind := range sortedKinds(tr.Errors) {
			fmt.Fprintf(out, "  %s: %s\n", kind, tr.Errors[kind])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translationsCmd)

	translationsCmd.Flags().String("accept", "", "Accept-Language header to negotiate")
}

func sortedKinds(m validator.Messages) []validator.Kind {
	kinds := make([]validator.Kind, 0, len(m))
	for k := range m {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
