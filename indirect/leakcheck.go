package indirect

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/Twon/indirect-value/log"
)

// LeakInfo describes an owned object whose wrapper was dropped without Reset,
// leaving the finalizer backstop to run the deleter.
type LeakInfo struct {
	// TypeName is the dynamic type of the leaked object.
	TypeName string

	// Stack is the adoption-site stack. It is captured only when a reporter
	// is configured at adoption time and the process is not in production
	// mode, so it may be nil.
	Stack []byte
}

// LeakReporter receives a notification for every owned object that was
// disposed of by the finalizer backstop instead of Reset. Implementations
// run on the finalizer goroutine and must not block.
type LeakReporter interface {
	CaptureLeak(info LeakInfo)
}

var (
	leakReporterInstance LeakReporter
	leakReporterMutex    sync.RWMutex
)

var (
	// productionModeFlag suppresses adoption-site stack capture when set.
	// Stacks identify where a leaked object was adopted; in production the
	// capture cost and the detail it exposes are both unwanted.
	productionModeFlag bool
	productionModeMu   sync.RWMutex
)

// SetProductionMode enables or disables production mode for leak diagnostics.
// In production mode adoption-site stacks are never captured; leaks are still
// reported with the owned type's name.
func SetProductionMode(enabled bool) {
	productionModeMu.Lock()
	defer productionModeMu.Unlock()

	productionModeFlag = enabled
}

// IsProductionMode returns whether production mode is enabled, either
// explicitly through SetProductionMode or through the ENV / GO_ENV
// environment variables.
func IsProductionMode() bool {
	productionModeMu.RLock()
	explicit := productionModeFlag
	productionModeMu.RUnlock()

	if explicit {
		return true
	}

	if strings.EqualFold(strings.TrimSpace(os.Getenv("ENV")), "production") {
		return true
	}

	return strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), "production")
}

// SetLeakReporter installs the process-wide leak reporter. Passing nil
// disables reporting; the finalizer backstop keeps running deleters either
// way. Safe for concurrent use.
func SetLeakReporter(reporter LeakReporter) {
	leakReporterMutex.Lock()
	defer leakReporterMutex.Unlock()

	leakReporterInstance = reporter
}

// GetLeakReporter returns the process-wide leak reporter, or nil when none
// is configured. Safe for concurrent use.
func GetLeakReporter() LeakReporter {
	leakReporterMutex.RLock()
	defer leakReporterMutex.RUnlock()

	return leakReporterInstance
}

// NewLogReporter returns a LeakReporter that logs each leak at warn level
// through the given logger. A nil logger yields a reporter that drops
// everything.
func NewLogReporter(logger log.Logger) LeakReporter {
	return &logReporter{logger: logger}
}

type logReporter struct {
	logger log.Logger
}

func (r *logReporter) CaptureLeak(info LeakInfo) {
	if r == nil || r.logger == nil {
		return
	}

	fields := []log.Field{log.String("type", info.TypeName)}
	if len(info.Stack) > 0 {
		fields = append(fields, log.String("adopted_at", string(info.Stack)))
	}

	r.logger.Log(context.Background(), log.LevelWarn,
		"indirect value leaked: deleter ran via GC backstop", fields...)
}

// attachBackstop installs a finalizer on p that reports the leak (when a
// reporter is configured) and then runs the deleter. The adoption-site stack
// is captured up front only when someone is listening and the process is not
// in production mode; capturing it is far too expensive to pay by default.
func attachBackstop[T any](p *T, deleter Deleter[T]) {
	var stack []byte
	if GetLeakReporter() != nil && !IsProductionMode() {
		stack = debug.Stack()
	}

	runtime.SetFinalizer(p, func(obj *T) {
		if reporter := GetLeakReporter(); reporter != nil {
			reporter.CaptureLeak(LeakInfo{
				TypeName: fmt.Sprintf("%T", *obj),
				Stack:    stack,
			})
		}

		deleter(obj)
	})
}

// releaseBackstop detaches the finalizer before deterministic disposal so
// the deleter cannot run a second time.
func releaseBackstop[T any](p *T) {
	runtime.SetFinalizer(p, nil)
}
