package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/locnet-idgen/log"
)

// LogEncoder defines a log encoder kind.
type LogEncoder = string

const (
	defaultLoggingLevel = zapcore.WarnLevel
	// ConsoleLogEncoder represents logging with plain text.
	ConsoleLogEncoder LogEncoder = "console"
	// JSONLogEncoder represents logging with JSON.
	JSONLogEncoder LogEncoder = "json"
)

// LoggerConfig holds the diagnostics settings. Diagnostics go to stderr.
type LoggerConfig struct {
	Encoder LogEncoder `mapstructure:"log-encoder"`
	Level   string     `mapstructure:"log-level"`
}

func defaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder: ConsoleLogEncoder,
		Level:   defaultLoggingLevel.String(),
	}
}

// AtomicLevel parses Level.
func (c LoggerConfig) AtomicLevel() (zap.AtomicLevel, error) {
	lvl, err := zap.ParseAtomicLevel(strings.ToLower(c.Level))
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("parse log level %q: %w", c.Level, err)
	}
	return lvl, nil
}

// Validate checks encoder and level.
func (c LoggerConfig) Validate() error {
	switch c.Encoder {
	case ConsoleLogEncoder, JSONLogEncoder:
	default:
		return log.ErrUnsupportedFormat(c.Encoder)
	}
	_, err := c.AtomicLevel()
	return err
}
