package logx

import "time"

// Logger is the structured logger used across the scheduler.
// Implementations must be safe for concurrent use.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	Sync() error
}

// Field is one key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// Any attaches a value of any type.
func Any(key string, value any) Field { return Field{Key: key, Value: value} }

// String attaches a string.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int attaches an int.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 attaches an int64, e.g. a kafka offset.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Bool attaches a bool.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

func Time(key string, value time.Time) Field { return Field{Key: key, Value: value} }

func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err attaches err under the "error" key. Backends render it as a string.
func Err(err error) Field { return Field{Key: "error", Value: err} }
