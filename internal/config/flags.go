package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagRoot       = "root"
	FlagConfig     = "config"
	FlagEnvPrefix  = "env-prefix"
	FlagLogLevel   = "log-level"
	FlagLogFormat  = "log-format"
	FlagSettings   = "settings"
	FlagConfigName = "config-name"
)

// LogLevel holds a zerolog level name.
// It implements the pflag.Value interface.
type LogLevel string

// String returns the level name.
func (l *LogLevel) String() string {
	return string(*l)
}

// Set validates s against the zerolog level names and stores it.
func (l *LogLevel) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return errors.New("log level cannot be empty")
	}
	if _, err := zerolog.ParseLevel(s); err != nil {
		return fmt.Errorf("unknown log level %q", s)
	}

	*l = LogLevel(s)
	return nil
}

// Type implements pflag.Value.
func (l *LogLevel) Type() string {
	return "level"
}

// RegisterFlags adds the settings flags to fs, normally the persistent flag
// set of the root command.
//
// Flags:
//
//	--root         project root, overrides discovery
//	--config       configuration file path
//	--config-name  candidate configuration file name (repeatable)
//	--env-prefix   prefix of configuration override variables
//	--log-level    zerolog level name
//	--log-format   console or json
//	--settings     JSON settings file path
func RegisterFlags(fs *pflag.FlagSet) {
	var level LogLevel

	fs.String(FlagRoot, "", "Project root (overrides discovery)")
	fs.StringP(FlagConfig, "c", "", "Configuration file path")
	fs.StringSlice(FlagConfigName, nil, "Candidate configuration file name (repeatable)")
	fs.String(FlagEnvPrefix, "", "Prefix of configuration override variables")
	fs.Var(&level, FlagLogLevel, "Log level (trace, debug, info, warn, error)")
	fs.String(FlagLogFormat, "", "Log format (console, json)")
	fs.String(FlagSettings, "", "JSON settings file path")
}

// parseFlags collects the flags explicitly set on fs. Flags left at their
// defaults do not override other sources.
func parseFlags(fs *pflag.FlagSet) (*Settings, error) {
	cfg := &Settings{}
	if fs == nil {
		return cfg, nil
	}

	stringFlags := map[string]*string{
		FlagRoot:      &cfg.Project.Root,
		FlagConfig:    &cfg.Project.ConfigPath,
		FlagEnvPrefix: &cfg.Project.EnvPrefix,
		FlagLogLevel:  &cfg.Log.Level,
		FlagLogFormat: &cfg.Log.Format,
		FlagSettings:  &cfg.SettingsFilePath,
	}
	for name, dst := range stringFlags {
		if f := fs.Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}

	if f := fs.Lookup(FlagConfigName); f != nil && f.Changed {
		names, err := fs.GetStringSlice(FlagConfigName)
		if err != nil {
			return nil, fmt.Errorf("error reading --%s: %w", FlagConfigName, err)
		}
		cfg.Project.ConfigNames = names
	}

	return cfg, nil
}
