package logging

import (
	"bytes"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
	"go.viam.com/test"
)

func TestConsoleAppenderWrite(t *testing.T) {
	var buf bytes.Buffer
	a := NewWriterAppender(&buf)

	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Unix(0, 0),
		LoggerName: "trajectory",
		Message:    "generated trajectory",
	}
	fields := []zapcore.Field{zapcore.Float64("duration_s", 3.0)}

	test.That(t, a.Write(entry, fields), test.ShouldBeNil)
	test.That(t, buf.String(), test.ShouldContainSubstring, "INFO")
	test.That(t, buf.String(), test.ShouldContainSubstring, "trajectory")
	test.That(t, buf.String(), test.ShouldContainSubstring, "generated trajectory")
	test.That(t, buf.String(), test.ShouldContainSubstring, "duration_s")
}

func TestConsoleAppenderSyncNoop(t *testing.T) {
	a := NewStdoutAppender()
	test.That(t, a.Sync(), test.ShouldBeNil)
}

func TestNewLoggerRoutesThroughAppender(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("motionplancli", NewWriterAppender(&buf))
	logger.Infow("generated trajectory", "duration_s", 3.0)

	test.That(t, buf.String(), test.ShouldContainSubstring, "INFO")
	test.That(t, buf.String(), test.ShouldContainSubstring, "motionplancli")
	test.That(t, buf.String(), test.ShouldContainSubstring, "generated trajectory")
	test.That(t, buf.String(), test.ShouldContainSubstring, "duration_s")
}

func TestNewLoggerFansOutToMultipleAppenders(t *testing.T) {
	var bufA, bufB bytes.Buffer
	logger := NewLogger("motionplancli", NewWriterAppender(&bufA), NewWriterAppender(&bufB))
	logger.Debugw("relaxation search", "iteration", 2)

	test.That(t, bufA.String(), test.ShouldContainSubstring, "relaxation search")
	test.That(t, bufB.String(), test.ShouldContainSubstring, "relaxation search")
}
