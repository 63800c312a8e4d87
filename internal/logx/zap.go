package logx

import (
	"errors"
	"os"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapAdapter adapts a *zap.Logger to the logx.Logger interface.
type ZapAdapter struct {
	l *zap.Logger
}

// NewZapAdapter wraps an existing zap logger.
func NewZapAdapter(l *zap.Logger) Logger {
	return &ZapAdapter{l: l}
}

// NewZap builds a JSON production logger writing to stdout with ISO8601 timestamps.
func NewZap(level, serviceName string) (Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(ParseZapLevel(level))
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	if serviceName != "" {
		base = base.With(zap.String("service_name", serviceName))
	}
	return NewZapAdapter(base), nil
}

// ParseZapLevel maps a level name onto zap; unknown names mean info.
func ParseZapLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (z *ZapAdapter) Debug(msg string, fields ...Field) { z.l.Debug(msg, toZapFields(fields)...) }
func (z *ZapAdapter) Info(msg string, fields ...Field)  { z.l.Info(msg, toZapFields(fields)...) }
func (z *ZapAdapter) Warn(msg string, fields ...Field)  { z.l.Warn(msg, toZapFields(fields)...) }
func (z *ZapAdapter) Error(msg string, fields ...Field) { z.l.Error(msg, toZapFields(fields)...) }

// With returns a child logger carrying fields.
func (z *ZapAdapter) With(fields ...Field) Logger {
	return &ZapAdapter{l: z.l.With(toZapFields(fields)...)}
}

// Sync flushes buffered entries. Syncing a terminal stdout fails on some
// platforms; that error is dropped.
func (z *ZapAdapter) Sync() error {
	err := z.l.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) || errors.Is(err, os.ErrInvalid) {
		return nil
	}
	return err
}

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			out = append(out, zap.NamedError(f.Key, err))
			continue
		}
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}
