package log

import (
	"context"
	"fmt"
	"strings"
)

// Logger is the sink the module's diagnostics write to. Implementations
// decide rendering and destination; callers supply a level, a message, and
// typed fields.
//
// Log emits one entry. With returns a child carrying extra fields on every
// entry, WithGroup a child that prefixes subsequent field keys. Enabled lets
// callers skip building fields for levels the sink will drop, and Sync
// flushes whatever the sink buffers.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	With(fields ...Field) Logger
	WithGroup(name string) Logger
	Enabled(level Level) bool
	Sync(ctx context.Context) error
}

// Nop is the Logger that discards everything. Diagnostics that were never
// given a sink fall back to it.
type Nop struct{}

// NewNop returns a Logger that discards everything.
//
//nolint:ireturn
func NewNop() Logger { return Nop{} }

// Log drops the entry.
func (Nop) Log(context.Context, Level, string, ...Field) {}

// With returns the receiver; there is nothing to attach fields to.
//
//nolint:ireturn
func (n Nop) With(...Field) Logger { return n }

// WithGroup returns the receiver.
//
//nolint:ireturn
func (n Nop) WithGroup(string) Logger { return n }

// Enabled reports false for every level, so callers skip field construction
// entirely.
func (Nop) Enabled(Level) bool { return false }

// Sync reports success; nothing is ever buffered.
func (Nop) Sync(context.Context) error { return nil }

// Level is the severity of an entry. Severity grows as the numeric value
// shrinks: LevelError is 0, LevelDebug is 3. A sink's configured Level acts
// as a verbosity ceiling, which is why StdLogger.Enabled compares with >=:
// a sink at LevelInfo emits error, warn, and info entries and drops debug.
//
// Note the inversion relative to slog and zap, where larger numbers are more
// severe. Adapters translate at the boundary.
type Level uint8

// The four levels, most severe first.
const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = [...]string{
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
}

// String returns the level's lowercase name, or "unknown" for values outside
// the defined range.
func (level Level) String() string {
	if int(level) < len(levelNames) {
		return levelNames[level]
	}

	return "unknown"
}

var levelsByName = map[string]Level{
	"error":   LevelError,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"info":    LevelInfo,
	"debug":   LevelDebug,
}

// ParseLevel resolves a level name such as "warn" or "DEBUG", ignoring case
// and surrounding space. "warning" is accepted as an alias for LevelWarn.
func ParseLevel(name string) (Level, error) {
	if level, ok := levelsByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return level, nil
	}

	return LevelError, fmt.Errorf("log: unknown level %q", name)
}

// Field is one typed key/value attribute of an entry.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a boolean field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates the conventional "error" field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Any creates a field with an arbitrary value. Prefer the typed constructors
// where one fits; arbitrary values make it easy to log something that should
// not leave the process.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}
