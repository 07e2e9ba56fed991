// Package logging is a small structured-logging façade over zap: named
// loggers, leveled calls carrying structured fields, and pluggable
// Appenders. trajectory.Facade takes a Logger by explicit injection
// rather than reaching for a process-wide global.
package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Logger is the structured logger used throughout this module.
type Logger struct {
	named string
	*zap.SugaredLogger
}

// NewLogger creates a logger named for its owning component, e.g.
// "trajectory" or "scurve". With no appenders it behaves like
// zap.NewProduction(); passing one or more Appenders (a ConsoleAppender,
// a NewRotatingFileAppender, ...) tees log entries to each of them
// instead, at Debug level and above.
func NewLogger(name string, appenders ...Appender) Logger {
	if len(appenders) == 0 {
		base, err := zap.NewProduction()
		if err != nil {
			base = zap.NewNop()
		}
		return Logger{named: name, SugaredLogger: base.Named(name).Sugar()}
	}

	cores := make([]zapcore.Core, len(appenders))
	for i, a := range appenders {
		cores[i] = NewCore(a, zapcore.DebugLevel)
	}
	base := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return Logger{named: name, SugaredLogger: base.Named(name).Sugar()}
}

// NewTestLogger creates a logger that writes through the test's *testing.T.
func NewTestLogger(t *testing.T) Logger {
	t.Helper()
	base := zaptest.NewLogger(t)
	return Logger{named: t.Name(), SugaredLogger: base.Sugar()}
}

// Named returns a child logger scoped under an additional name segment.
func (l Logger) Named(name string) Logger {
	return Logger{named: l.named + "." + name, SugaredLogger: l.SugaredLogger.Named(name)}
}
