package logging

import (
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// JSON record keys. The timestamp is RFC3339 UTC and levels are lowercase so
// records from separate runs sort and grep consistently.
const (
	jsonTimeKey   = "ts"
	jsonSourceKey = "caller"
)

func newJSONHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   addSource,
		ReplaceAttr: replaceJSONAttr,
	})
}

func replaceJSONAttr(_ []string, attr slog.Attr) slog.Attr {
	switch attr.Key {
	case slog.TimeKey:
		if attr.Value.Kind() == slog.KindTime {
			return slog.String(jsonTimeKey, attr.Value.Time().UTC().Format(time.RFC3339))
		}
		attr.Key = jsonTimeKey
	case slog.LevelKey:
		return slog.String(slog.LevelKey, strings.ToLower(attr.Value.String()))
	case slog.SourceKey:
		if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
			return slog.String(jsonSourceKey, filepath.Base(src.File)+":"+strconv.Itoa(src.Line))
		}
	}
	// Durations (elapsed, input length) read better as "1.2s" than as
	// nanosecond integers.
	if attr.Value.Kind() == slog.KindDuration {
		return slog.String(attr.Key, attr.Value.Duration().Round(time.Millisecond).String())
	}
	return attr
}
