package zap

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// callerSkip lifts caller attribution out of the adapter frame so entries
// point at the code that logged.
const callerSkip = 1

// Environment selects the encoder profile and default verbosity New starts
// from.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentUAT         Environment = "uat"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

func (e Environment) known() bool {
	switch e {
	case EnvironmentProduction, EnvironmentStaging, EnvironmentUAT,
		EnvironmentDevelopment, EnvironmentLocal:
		return true
	default:
		return false
	}
}

// devLike reports whether the environment gets the development profile:
// debug default verbosity and zap's development config.
func (e Environment) devLike() bool {
	return e == EnvironmentDevelopment || e == EnvironmentLocal
}

// Config drives New. Level is optional: when empty, development and local
// environments default to debug and everything else to info.
type Config struct {
	Environment Environment
	Level       string
}

// levelHandle builds the runtime-adjustable level from the configured name,
// or from the environment default when no name is set.
func (c Config) levelHandle() (zap.AtomicLevel, error) {
	name := strings.TrimSpace(c.Level)
	if name == "" {
		if c.Environment.devLike() {
			return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
		}

		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}

	parsed, err := zapcore.ParseLevel(name)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("zap: invalid level %q: %w", name, err)
	}

	return zap.NewAtomicLevelAt(parsed), nil
}

// New builds a JSON-encoded zap logger for the given environment and adapts
// it. The returned logger's Level handle adjusts verbosity at runtime.
func New(cfg Config) (*Logger, error) {
	if !cfg.Environment.known() {
		return nil, fmt.Errorf("zap: invalid environment %q", cfg.Environment)
	}

	handle, err := cfg.levelHandle()
	if err != nil {
		return nil, err
	}

	base := zap.NewProductionConfig()
	if cfg.Environment.devLike() {
		base = zap.NewDevelopmentConfig()
	}

	base.Encoding = "json"
	base.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	base.Level = handle
	base.DisableStacktrace = true

	built, err := base.Build(zap.AddCallerSkip(callerSkip))
	if err != nil {
		return nil, fmt.Errorf("zap: build logger: %w", err)
	}

	return &Logger{base: built, handle: handle}, nil
}
