package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultTimeFormatStr is the human-readable log timestamp layout.
const DefaultTimeFormatStr = "2006-01-02T15:04:05.000Z0700"

// Appender is an output for log entries, a subset of zapcore.Core.
type Appender interface {
	Write(zapcore.Entry, []zapcore.Field) error
	Sync() error
}

// ConsoleAppender writes tab-separated, human-readable lines to an
// io.Writer, e.g. stdout or a bring-up console.
type ConsoleAppender struct {
	io.Writer
}

// NewStdoutAppender creates an appender that prints to stdout.
func NewStdoutAppender() ConsoleAppender {
	return ConsoleAppender{os.Stdout}
}

// NewWriterAppender creates an appender that prints to the given writer.
func NewWriterAppender(w io.Writer) ConsoleAppender {
	return ConsoleAppender{w}
}

// NewRotatingFileAppender returns an Appender that writes to filename with
// size-based rotation, for diagnostics left running during bring-up. The
// returned io.Closer should be closed on shutdown.
func NewRotatingFileAppender(filename string, maxSizeMB int) (Appender, io.Closer) {
	rotator := &lumberjack.Logger{
		Filename: filename,
		MaxSize:  maxSizeMB,
	}
	return NewWriterAppender(rotator), rotator
}

// Write renders entry and fields as a single tab-separated line.
func (a ConsoleAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	parts := []string{
		entry.Time.UTC().Format(DefaultTimeFormatStr),
		strings.ToUpper(entry.Level.String()),
		entry.LoggerName,
	}
	if entry.Caller.Defined {
		parts = append(parts, fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line))
	}
	parts = append(parts, entry.Message)

	if len(fields) > 0 {
		fieldsJSON, err := fieldsToJSON(fields)
		if err != nil {
			parts = append(parts, fmt.Sprintf("logging_err=%v", err))
		} else {
			parts = append(parts, fieldsJSON)
		}
	}

	_, err := fmt.Fprintln(a.Writer, strings.Join(parts, "\t"))
	return err
}

// Sync is a no-op for ConsoleAppender.
func (a ConsoleAppender) Sync() error {
	return nil
}

// appenderCore adapts an Appender to zapcore.Core so it can be wired into
// a zap.Logger via zapcore.NewTee alongside (or instead of) zap's own
// encoders.
type appenderCore struct {
	level    zapcore.LevelEnabler
	appender Appender
	fields   []zapcore.Field
}

// NewCore wraps appender as a zapcore.Core enabled at level and above.
func NewCore(appender Appender, level zapcore.LevelEnabler) zapcore.Core {
	return &appenderCore{level: level, appender: appender}
}

func (c *appenderCore) Enabled(lvl zapcore.Level) bool {
	return c.level.Enabled(lvl)
}

func (c *appenderCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &appenderCore{level: c.level, appender: c.appender, fields: merged}
}

func (c *appenderCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return ce.AddCore(entry, c)
	}
	return ce
}

func (c *appenderCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return c.appender.Write(entry, merged)
}

func (c *appenderCore) Sync() error {
	return c.appender.Sync()
}

func fieldsToJSON(fields []zapcore.Field) (string, error) {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{SkipLineEnding: true})
	buf, err := enc.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
