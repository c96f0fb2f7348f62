package nk2

import "log"

// Logger receives diagnostic messages during parsing. It replaces the
// process-wide verbose/notify globals the C implementation this package
// is modeled on used, keeping the parser free of package-level mutable
// state.
type Logger interface {
	Debugf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}

// StdLogger adapts the standard library's log package to Logger. It is
// the concrete backend used when a caller opts into logging via
// WithLogger(StdLogger{}), matching the log.Printf call sites the
// teacher package used directly.
type StdLogger struct{}

func (StdLogger) Debugf(format string, args ...any) {
	log.Printf(format, args...)
}
