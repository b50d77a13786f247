package log

import (
	"context"
	"fmt"
	stdlog "log"
	"strings"
)

// StdLogger is the standard-library (log) implementation of the Logger
// interface.
//
// Entries are rendered as a single line
//
//	[LEVEL] message key=value ...
//
// and written through the global log.Print, so callers keep control of
// destination, prefix, and flags via log.SetOutput and log.SetFlags. Keys
// attached under WithGroup are dot-qualified ("group.key"). All string
// inputs are sanitized to prevent log injection (CWE-117).
type StdLogger struct {
	// Level is the verbosity ceiling; entries less severe than it are dropped.
	Level Level

	fields []Field
	groups []string
}

// Compile-time assertion: *StdLogger implements Logger.
var _ Logger = (*StdLogger)(nil)

// NewStd creates a StdLogger with the given verbosity ceiling.
func NewStd(level Level) *StdLogger {
	return &StdLogger{Level: level}
}

// Log implements Logger. Disabled levels are dropped before rendering.
func (l *StdLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	stdlog.Print(l.render(level, msg, fields))
}

// With returns a child logger carrying additional structured fields. Field
// keys are qualified with the current group path at attach time, so fields
// added before a WithGroup call keep their unqualified keys.
//
//nolint:ireturn
func (l *StdLogger) With(fields ...Field) Logger {
	if l == nil {
		return &StdLogger{}
	}

	child := l.clone()
	for _, f := range fields {
		child.fields = append(child.fields, Field{Key: child.qualify(f.Key), Value: f.Value})
	}

	return child
}

// WithGroup returns a child logger that prefixes subsequently attached field
// keys with name and a dot. An empty name returns an equivalent logger.
//
//nolint:ireturn
func (l *StdLogger) WithGroup(name string) Logger {
	if l == nil {
		return &StdLogger{}
	}

	child := l.clone()
	if name != "" {
		child.groups = append(child.groups, name)
	}

	return child
}

// Enabled reports whether level passes the verbosity ceiling. A nil receiver
// reports false for every level.
func (l *StdLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.Level >= level
}

// Sync is a no-op: the standard logger writes unbuffered.
func (l *StdLogger) Sync(_ context.Context) error { return nil }

func (l *StdLogger) clone() *StdLogger {
	return &StdLogger{
		Level:  l.Level,
		fields: append([]Field(nil), l.fields...),
		groups: append([]string(nil), l.groups...),
	}
}

func (l *StdLogger) qualify(key string) string {
	if len(l.groups) == 0 {
		return key
	}

	return strings.Join(l.groups, ".") + "." + key
}

func (l *StdLogger) render(level Level, msg string, fields []Field) string {
	var b strings.Builder

	b.WriteString("[")
	b.WriteString(strings.ToUpper(level.String()))
	b.WriteString("] ")
	b.WriteString(sanitizeString(msg))

	// Fields attached via With were qualified when attached; call-site fields
	// are qualified against the current group path here.
	for _, f := range l.fields {
		writeField(&b, f.Key, f.Value)
	}

	for _, f := range fields {
		writeField(&b, l.qualify(f.Key), f.Value)
	}

	return b.String()
}

func writeField(b *strings.Builder, key string, value any) {
	b.WriteString(" ")
	b.WriteString(sanitizeString(key))
	b.WriteString("=")

	switch v := value.(type) {
	case string:
		b.WriteString(sanitizeString(v))
	case error:
		if v == nil {
			b.WriteString("<nil>")
			return
		}

		b.WriteString(sanitizeString(v.Error()))
	default:
		b.WriteString(sanitizeString(fmt.Sprint(v)))
	}
}
