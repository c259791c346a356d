package logger

import (
	"log/slog"
	"time"
)

// Error records a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Submission groups submitted form values under the key "submission".
// Keys listed through WithRedactedKeys are masked inside the group too.
func Submission(values map[string]string, order ...string) slog.Attr {
	as := make([]slog.Attr, 0, len(order))
	for _, k := range order {
		as = append(as, slog.String(k, values[k]))
	}
	return slog.Attr{Key: "submission", Value: slog.GroupValue(as...)}
}

// InvalidFields records the names of fields that failed validation.
func InvalidFields(names []string) slog.Attr {
	return slog.Any("invalid_fields", names)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Handler records the handler name under the key "handler".
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}
