package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Field is a structured logging key/value pair.
type Field struct {
	Key   string
	Value any
}

// String creates a Field with a string value.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates a Field with an int value.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a Field with a uint64 value.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a Field with a float64 value.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Dur creates a Field with a duration value.
func Dur(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err creates a Field with the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the unified logging interface used across components. It keeps
// call sites independent of the backing implementation.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string, fields ...Field)
	// Info logs a message at info level.
	Info(msg string, fields ...Field)
	// Warn logs a message at warn level.
	Warn(msg string, fields ...Field)
	// Error logs a message at error level.
	Error(msg string, fields ...Field)
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: zl}
}

// NewLogger creates a Logger writing JSON lines to out, tagged with the
// given component name.
func NewLogger(out io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(out).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{logger: zl}
}

// NewDefaultLogger creates a Logger writing to stderr with the "katarun"
// component tag.
func NewDefaultLogger() *ZerologAdapter {
	return NewLogger(os.Stderr, "katarun")
}

// ParseLevel maps a level name to a zerolog level, defaulting to info for
// unknown names.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

// Debug logs a message at debug level.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	z.emit(z.logger.Debug(), msg, fields)
}

// Info logs a message at info level.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	z.emit(z.logger.Info(), msg, fields)
}

// Warn logs a message at warn level.
func (z *ZerologAdapter) Warn(msg string, fields ...Field) {
	z.emit(z.logger.Warn(), msg, fields)
}

// Error logs a message at error level.
func (z *ZerologAdapter) Error(msg string, fields ...Field) {
	z.emit(z.logger.Error(), msg, fields)
}

// emit applies the structured fields to the event and sends it.
func (z *ZerologAdapter) emit(event *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case time.Duration:
			event = event.Dur(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		case nil:
			event = event.Interface(f.Key, nil)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	event.Msg(msg)
}

// NopLogger discards every message. Useful for quiet mode and tests.
type NopLogger struct{}

// Debug discards the message.
func (NopLogger) Debug(string, ...Field) {}

// Info discards the message.
func (NopLogger) Info(string, ...Field) {}

// Warn discards the message.
func (NopLogger) Warn(string, ...Field) {}

// Error discards the message.
func (NopLogger) Error(string, ...Field) {}
