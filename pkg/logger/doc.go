// Package logger builds *slog.Logger instances for the form controls and the
// uiwctl tool.
//
// New applies functional options (format, level, output, static attributes,
// per-environment defaults) and wraps the handler in LogHandlerDecorator,
// which injects attributes pulled from context.Context on every record. The
// control name stored with WithControl is always extracted, so log lines
// emitted by asynchronous validation rounds carry the control they belong to.
//
//	log := logger.New(logger.WithEnvironment("development", "uiwctl"))
//	ctx := logger.WithControl(context.Background(), "email")
//	log.DebugContext(ctx, "async round settled", logger.Round(3))
//
// Helper constructors in attr.go (Control, ControlID, Kind, Round, Value,
// Position, Error) keep attribute keys consistent. Error and Kind return an
// empty Attr for zero input, so callers can pass them unconditionally.
//
// Controllers default to Discard() when the host supplies no logger.
package logger
