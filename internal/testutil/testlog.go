package testlog

import (
	"sync"

	"homecare-scheduler/internal/logx"
)

// Entry is a log entry
type Entry struct {
	Level  string
	Msg    string
	Fields []logx.Field
}

// Value returns the value of the field named key.
func (e Entry) Value(key string) (any, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Recorder records log entries
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// New returns a new logger
func New() *Recorder { return &Recorder{} }

// Logger returns a bound logger
func (r *Recorder) Logger() logx.Logger {
	return bound{r: r}
}

// Entries returns a copy of the log entries
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Events returns the "event" field of every entry that has one, in log order.
func (r *Recorder) Events() []string {
	var out []string
	for _, e := range r.Entries() {
		if v, ok := e.Value("event"); ok {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// ByEvent returns the entries whose "event" field equals event.
func (r *Recorder) ByEvent(event string) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if v, ok := e.Value("event"); ok && v == event {
			out = append(out, e)
		}
	}
	return out
}

func (r *Recorder) add(level, msg string, fields []logx.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := append([]logx.Field(nil), fields...)
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: cp})
}

type bound struct {
	r    *Recorder
	base []logx.Field
}

func (b bound) log(level, msg string, f []logx.Field) {
	fields := make([]logx.Field, 0, len(b.base)+len(f))
	fields = append(fields, b.base...)
	b.r.add(level, msg, append(fields, f...))
}

// Debug logs a debug message
func (b bound) Debug(msg string, f ...logx.Field) { b.log("debug", msg, f) }

// Info logs an info message
func (b bound) Info(msg string, f ...logx.Field) { b.log("info", msg, f) }

// Warn logs a warn message
func (b bound) Warn(msg string, f ...logx.Field) { b.log("warn", msg, f) }

// Error logs an error message
func (b bound) Error(msg string, f ...logx.Field) { b.log("error", msg, f) }

func (b bound) With(f ...logx.Field) logx.Logger {
	nb := bound{r: b.r, base: append([]logx.Field(nil), b.base...)}
	nb.base = append(nb.base, f...)
	return nb
}

func (b bound) Sync() error { return nil }

var _ logx.Logger = bound{}
