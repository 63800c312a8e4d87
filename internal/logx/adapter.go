package logx

import (
	"io"
	"log/slog"
)

// SlogAdapter adapts the standard library slog.Logger to the logx.Logger interface.
type SlogAdapter struct {
	l *slog.Logger
}

// NewSlogAdapter returns a Logger implementation backed by the provided *slog.Logger.
func NewSlogAdapter(l *slog.Logger) Logger {
	return &SlogAdapter{l: l}
}

// NewSlog builds a JSON slog logger on w tagged with the service name.
func NewSlog(w io.Writer, level, serviceName string) Logger {
	base := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseSlogLevel(level)}))
	if serviceName != "" {
		base = base.With(slog.String("service_name", serviceName))
	}
	return NewSlogAdapter(base)
}

// ParseSlogLevel maps a level name onto slog; unknown names mean info.
func ParseSlogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (s *SlogAdapter) Debug(msg string, fields ...Field) { s.l.Debug(msg, toSlogArgs(fields)...) }
func (s *SlogAdapter) Info(msg string, fields ...Field)  { s.l.Info(msg, toSlogArgs(fields)...) }
func (s *SlogAdapter) Warn(msg string, fields ...Field)  { s.l.Warn(msg, toSlogArgs(fields)...) }
func (s *SlogAdapter) Error(msg string, fields ...Field) { s.l.Error(msg, toSlogArgs(fields)...) }

// With returns a new logger with the provided fields attached to every subsequent log entry.
func (s *SlogAdapter) With(fields ...Field) Logger {
	return &SlogAdapter{l: s.l.With(toSlogArgs(fields)...)}
}

// Sync is a no-op; slog handlers write through.
func (s *SlogAdapter) Sync() error { return nil }

// toSlogArgs converts logx fields into slog attributes. Errors are rendered as their message.
func toSlogArgs(fields []Field) []any {
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			args = append(args, slog.String(f.Key, err.Error()))
			continue
		}
		args = append(args, slog.Any(f.Key, f.Value))
	}
	return args
}
