package logger

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/geokit/pkg/validator"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". Nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Validation groups the messages of a validation failure by field under the key
// "validation", e.g. validation.segments[1]="segment 0 ends at ...".
// Multiple messages for one field are joined with "; ". If err carries no
// validation errors it falls back to Error.
func Validation(err error) slog.Attr {
	verrs := validator.ExtractValidationErrors(err)
	if len(verrs) == 0 {
		return Error(err)
	}

	fields := verrs.Fields()
	as := make([]slog.Attr, 0, len(fields))
	for _, field := range fields {
		msgs := verrs.Get(field)
		msg := msgs[0]
		for _, m := range msgs[1:] {
			msg += "; " + m
		}
		key := field
		if key == "" {
			key = "_"
		}
		as = append(as, slog.String(key, msg))
	}
	return slog.Attr{Key: "validation", Value: slog.GroupValue(as...)}
}

// Duration records d under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Command records the CLI command under the key "command".
func Command(name string) slog.Attr {
	return slog.String("command", name)
}

// File records a file path under the key "file".
func File(path string) slog.Attr {
	return slog.String("file", path)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
