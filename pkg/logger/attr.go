package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Control records the control name under the key "control".
func Control(name string) slog.Attr {
	return slog.String("control", name)
}

// ControlID records the control instance identifier under the key "control_id".
func ControlID(id string) slog.Attr {
	return slog.String("control_id", id)
}

// Event records the input event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Value records a field value under the key "value".
func Value(v any) slog.Attr {
	return slog.Any("value", v)
}

// Kind records a validation error kind under the key "kind".
// Empty kinds produce an empty Attr.
func Kind(kind string) slog.Attr {
	if kind == "" {
		return slog.Attr{}
	}
	return slog.String("kind", kind)
}

// Round records an async validation round number under the key "round".
func Round(n uint64) slog.Attr {
	return slog.Uint64("round", n)
}

// Position records a pixel position under the key "position".
func Position(px float64) slog.Attr {
	return slog.Float64("position", px)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
