// Package config contains locnet-idgen configuration definitions
package config

import (
	"fmt"

	"github.com/spacemeshos/locnet-idgen/geoloc"
)

// Config defines the top level configuration for locnet-idgen.
// Every section is squashed so each field maps to a single flat flag.
type Config struct {
	BaseConfig `mapstructure:",squash"`
	Geoloc     geoloc.Config `mapstructure:",squash"`
	LOGGING    LoggerConfig  `mapstructure:",squash"`
}

// BaseConfig defines output options.
type BaseConfig struct {
	// WithHost appends --host with the public address reported by the service.
	WithHost bool `mapstructure:"with-host"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Geoloc:  geoloc.DefaultConfig(),
		LOGGING: defaultLoggingConfig(),
	}
}

// Validate checks values that flag parsing cannot.
func (cfg *Config) Validate() error {
	if cfg.Geoloc.URI == "" {
		return fmt.Errorf("endpoint is empty")
	}
	if cfg.Geoloc.Timeout < 0 {
		return fmt.Errorf("negative timeout %v", cfg.Geoloc.Timeout)
	}
	return cfg.LOGGING.Validate()
}
