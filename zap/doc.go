// Package zap bridges the module's log facade to go.uber.org/zap.
//
// Wrap adapts a zap logger the host application already runs, preserving
// structured fields, so it can be handed to indirect.NewLogReporter without
// an adapter of the host's own. New builds a fresh environment-profiled zap
// logger for programs that have none.
package zap
