// Package log provides console logging for locnet-idgen on top of zap.
// Executables log to stderr, stdout is reserved for the emitted flags.
package log

import (
	"io"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	jsonLog bool
)

// JSONLog turns JSON format on or off for loggers created afterwards.
func JSONLog(b bool) {
	mu.Lock()
	defer mu.Unlock()
	jsonLog = b
}

func encoder() zapcore.Encoder {
	mu.RLock()
	defer mu.RUnlock()
	cfg := zap.NewDevelopmentEncoderConfig()
	if jsonLog {
		return zapcore.NewJSONEncoder(cfg)
	}
	return zapcore.NewConsoleEncoder(cfg)
}

// NewNop creates silent logger.
func NewNop() Log {
	return NewFromLog(zap.NewNop())
}

// NewWithWriter creates a logger writing to w, gated by level, with a set of (optional) hooks.
// Loggers derived with WithName share the level.
func NewWithWriter(w io.Writer, module string, level zap.AtomicLevel, hooks ...func(zapcore.Entry) error) Log {
	// level is the only gate, the io core accepts everything it is handed
	core := zapcore.NewCore(encoder(), zapcore.AddSync(w), zap.LevelEnablerFunc(func(zapcore.Level) bool {
		return true
	}))
	lgr := zap.New(zapcore.RegisterHooks(core, hooks...), addDynamicLevel(&level))
	if module != "" {
		lgr = lgr.Named(module)
	}
	return Log{logger: lgr}
}

// NewFromLog creates a Log from an existing zap-compatible log.
func NewFromLog(l *zap.Logger) Log {
	return Log{logger: l}
}
