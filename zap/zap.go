package zap

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Twon/indirect-value/log"
)

// Logger adapts a zap logger to the log.Logger contract, so an application
// that already logs through zap can hand its logger straight to diagnostics
// hooks such as indirect.NewLogReporter.
//
// The zero value and the nil pointer are usable and discard everything.
type Logger struct {
	base   *zap.Logger
	handle zap.AtomicLevel
}

// Compile-time assertion: *Logger implements log.Logger.
var _ log.Logger = (*Logger)(nil)

// Wrap adapts an existing zap logger. Verbosity stays under the caller's
// control; the handle returned by Level is not connected to base's core.
func Wrap(base *zap.Logger) *Logger {
	return &Logger{base: base, handle: zap.NewAtomicLevel()}
}

// zapper returns the wrapped logger, substituting a nop when the receiver is
// nil or was never given one.
func (l *Logger) zapper() *zap.Logger {
	if l == nil || l.base == nil {
		return zap.NewNop()
	}

	return l.base
}

// Log implements log.Logger.
func (l *Logger) Log(_ context.Context, level log.Level, msg string, fields ...log.Field) {
	l.zapper().Log(zapLevel(level), msg, zapFields(fields)...)
}

// With returns a child logger carrying additional structured fields.
//
//nolint:ireturn
func (l *Logger) With(fields ...log.Field) log.Logger {
	child := &Logger{base: l.zapper().With(zapFields(fields)...)}
	if l != nil {
		child.handle = l.handle
	}

	return child
}

// WithGroup returns a child logger that nests subsequent fields under name.
// An empty name returns the receiver.
//
//nolint:ireturn
func (l *Logger) WithGroup(name string) log.Logger {
	if name == "" {
		return l
	}

	child := &Logger{base: l.zapper().With(zap.Namespace(name))}
	if l != nil {
		child.handle = l.handle
	}

	return child
}

// Enabled reports whether the wrapped core would emit an entry at level.
func (l *Logger) Enabled(level log.Level) bool {
	return l.zapper().Core().Enabled(zapLevel(level))
}

// Sync flushes buffered output. zap's own Sync takes no context, so the
// flush runs in a goroutine; when ctx ends first the flush is abandoned and
// ctx's error returned.
func (l *Logger) Sync(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	flushed := make(chan error, 1)

	go func() {
		flushed <- l.zapper().Sync()
	}()

	select {
	case err := <-flushed:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Unwrap returns the underlying zap logger for callers that need zap's own
// API. The result is never nil.
func (l *Logger) Unwrap() *zap.Logger {
	return l.zapper()
}

// Level returns the runtime-adjustable verbosity handle. Only loggers built
// by New have a handle connected to their core; for wrapped and zero-value
// loggers adjusting it has no effect.
func (l *Logger) Level() zap.AtomicLevel {
	if l == nil || l.handle == (zap.AtomicLevel{}) {
		return zap.NewAtomicLevel()
	}

	return l.handle
}

// zapLevels maps the facade's descending severity scale onto zap's ascending
// one.
var zapLevels = [...]zapcore.Level{
	log.LevelError: zapcore.ErrorLevel,
	log.LevelWarn:  zapcore.WarnLevel,
	log.LevelInfo:  zapcore.InfoLevel,
	log.LevelDebug: zapcore.DebugLevel,
}

func zapLevel(level log.Level) zapcore.Level {
	if int(level) < len(zapLevels) {
		return zapLevels[level]
	}

	return zapcore.InfoLevel
}

func zapFields(fields []log.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}

	return out
}
