// Package cmd is the base package for locnet-idgen executables.
package cmd

import (
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/locnet-idgen/config"
	"github.com/spacemeshos/locnet-idgen/log"
)

const loggerName = "locnet-idgen"

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version string

	// Branch is the git branch used to build the App. Designed to be overwritten by make.
	Branch string

	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

// VersionString formats the build information for --version.
func VersionString() string {
	version := Version
	if version == "" {
		version = "(devel)"
	}
	if Branch == "" && Commit == "" {
		return version
	}
	return fmt.Sprintf("%s (branch %s, commit %s)", version, Branch, Commit)
}

// ParseConfig decodes flags and environment bound to vip on top of the defaults.
func ParseConfig(vip *viper.Viper) (*config.Config, error) {
	conf := config.DefaultConfig()
	hook := viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc())
	if err := vip.Unmarshal(&conf, hook); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &conf, nil
}

// SetupLogging builds the logger described by conf, writing to w.
func SetupLogging(conf *config.Config, w io.Writer) (log.Log, error) {
	lvl, err := conf.LOGGING.AtomicLevel()
	if err != nil {
		return log.NilLogger, err
	}
	log.JSONLog(conf.LOGGING.Encoder == config.JSONLogEncoder)
	return log.NewWithWriter(w, loggerName, lvl), nil
}

// StartupLogger reports failures that happen before the configuration is parsed.
func StartupLogger(w io.Writer) log.Log {
	return log.NewWithWriter(w, loggerName, zap.NewAtomicLevelAt(zapcore.WarnLevel))
}

// ChangedFlags lists "name=value" for every flag set on the command line.
func ChangedFlags(fs *pflag.FlagSet) []string {
	var changed []string
	fs.Visit(func(f *pflag.Flag) {
		changed = append(changed, fmt.Sprintf("%s=%s", f.Name, f.Value))
	})
	return changed
}
