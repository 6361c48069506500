package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uiwkit/pkg/config"
	"github.com/dmitrymomot/uiwkit/pkg/i18n"
	"github.com/dmitrymomot/uiwkit/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:               "uiwctl",
	Short:             "Drive headless form controls from the command line",
	Long:              `uiwctl replays scripted pointer, keyboard and text events against the slider and text input controls.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// env is what every command needs after flags and configuration are resolved.
type env struct {
	log          *slog.Logger
	slider       config.SliderDefaults
	input        config.InputDefaults
	translations i18n.Translations
	lang         string
}

var app env

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("env-file", "", "dotenv file layered under the process environment")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("translations", "", "YAML or JSON translation catalog")
	rootCmd.PersistentFlags().String("lang", "", "preferred language, e.g. de or de-CH")
}

func setup(cmd *cobra.Command, _ []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")

	var logCfg config.LogConfig
	if err := loadConfig(envFile, &logCfg); err != nil {
		return err
	}
	if err := loadConfig(envFile, &app.slider); err != nil {
		return err
	}
	if err := loadConfig(envFile, &app.input); err != nil {
		return err
	}

	log, err := newLogger(cmd, logCfg)
	if err != nil {
		return err
	}
	app.log = log

	path := app.input.Translations
	if v, _ := cmd.Flags().GetString("translations"); v != "" {
		path = v
	}
	app.lang = app.input.Language
	if v, _ := cmd.Flags().GetString("lang"); v != "" {
		app.lang = v
	}
	if path == "" {
		return nil
	}

	catalog, err := i18n.Load(cmd.Context(), path, i18n.WithDefaultLanguage(app.input.Language), i18n.WithLogger(log))
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}
	app.lang, app.translations = catalog.Match(app.lang)
	log.Debug("translations loaded", slog.String("lang", app.lang), slog.Any("available", catalog.Languages()))
	return nil
}

func loadConfig[T any](envFile string, v *T) error {
	if envFile != "" {
		return config.LoadFile(envFile, v)
	}
	return config.Load(v)
}

func newLogger(cmd *cobra.Command, cfg config.LogConfig) (*slog.Logger, error) {
	format := logger.Format(cfg.Format)
	if format != logger.FormatJSON && format != logger.FormatText {
		return nil, fmt.Errorf("%w: log format %q", ErrInvalidFlag, cfg.Format)
	}

	level := cfg.Level
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		level = v
	}

	return logger.New(
		logger.WithEnvironment(cfg.Env, "uiwctl"),
		logger.WithFormat(format),
		logger.WithLevelName(level),
		logger.WithOutput(cmd.ErrOrStderr()),
	), nil
}
