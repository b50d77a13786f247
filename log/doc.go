// Package log defines the structured logging facade used by
// indirect-value's diagnostics.
//
// The ownership wrappers in package indirect never log on their own: the
// facade exists so that optional instrumentation, such as the leak reporter,
// can emit structured events through whatever backend the host application
// already runs. Two implementations ship with the module: StdLogger, which
// renders through the standard library logger, and the zap adapter in the
// sibling zap package.
package log
