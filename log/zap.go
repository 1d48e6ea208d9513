package log

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NilLogger is a not initialized logger it will panic if you'll call methods on it.
var NilLogger Log

// Log wraps a zap logger. Messages are logged with typed fields through With.
type Log struct {
	logger *zap.Logger
}

// Zap returns the underlying zap logger.
func (l Log) Zap() *zap.Logger {
	return l.logger
}

// Core aliases so packages can implement zap marshalers without importing zap.
type (
	ObjectEncoder   = zapcore.ObjectEncoder
	ArrayEncoder    = zapcore.ArrayEncoder
	ObjectMarshaler = zapcore.ObjectMarshaler
)

// Field is a log field holding a name and value
type Field zap.Field

// Field satisfy loggable field interface.
func (f Field) Field() Field { return f }

// String returns a string Field
func String(name, val string) Field {
	return Field(zap.String(name, val))
}

// Stringer returns a Field for a fmt.Stringer, evaluated lazily.
func Stringer(name string, val fmt.Stringer) Field {
	return Field(zap.Stringer(name, val))
}

// Int returns an int Field.
func Int(name string, val int) Field {
	return Field(zap.Int(name, val))
}

// Duration returns a duration field
func Duration(name string, val time.Duration) Field {
	return Field(zap.Duration(name, val))
}

// NodeID return a String field (key - "node_id")
func NodeID(val string) Field {
	return String("node_id", val)
}

// Err returns an error field
func Err(v error) Field {
	return Field(zap.NamedError("message", v))
}

// Inline adds all fields of the marshaler to the entry without nesting.
func Inline(v ObjectMarshaler) Field {
	return Field(zap.Inline(v))
}

// LoggableField as an interface to enable every type to be used as a log field.
type LoggableField interface {
	Field() Field
}

func unpack(fields []LoggableField) []zap.Field {
	flds := make([]zap.Field, len(fields))
	for i, f := range fields {
		flds[i] = zap.Field(f.Field())
	}
	return flds
}

// FieldLogger is a logger that only logs messages with fields. it does not support formatting.
type FieldLogger struct {
	l *zap.Logger
}

// With returns a logger object that logs fields
func (l Log) With() FieldLogger {
	return FieldLogger{l.logger}
}

// WithName returns a logger with the given name appended. It keeps the level of l.
func (l Log) WithName(prefix string) Log {
	return Log{logger: l.logger.Named(prefix)}
}

func addDynamicLevel(level *zap.AtomicLevel) zap.Option {
	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &coreWithLevel{
			Core: core,
			lvl:  level,
		}
	})
}

// coreWithLevel gates core with an atomic level. Entries that pass are
// checked by core itself, so cores that register through Check (hooks) still write.
type coreWithLevel struct {
	zapcore.Core
	lvl *zap.AtomicLevel
}

func (c *coreWithLevel) Enabled(level zapcore.Level) bool {
	return c.lvl.Enabled(level)
}

func (c *coreWithLevel) With(fields []zapcore.Field) zapcore.Core {
	return &coreWithLevel{
		Core: c.Core.With(fields),
		lvl:  c.lvl,
	}
}

func (c *coreWithLevel) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.lvl.Enabled(e.Level) {
		return ce
	}
	return c.Core.Check(e, ce)
}

// Info prints message with fields
func (fl FieldLogger) Info(msg string, fields ...LoggableField) {
	fl.l.Info(msg, unpack(fields)...)
}

// Debug prints message with fields
func (fl FieldLogger) Debug(msg string, fields ...LoggableField) {
	fl.l.Debug(msg, unpack(fields)...)
}

// Error prints message with fields
func (fl FieldLogger) Error(msg string, fields ...LoggableField) {
	fl.l.Error(msg, unpack(fields)...)
}

// Warning prints message with fields
func (fl FieldLogger) Warning(msg string, fields ...LoggableField) {
	fl.l.Warn(msg, unpack(fields)...)
}
