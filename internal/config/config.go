// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// EnvPrefix is prepended to every environment variable read into [Settings].
const EnvPrefix = "PLEASURE_"

// Settings is the top-level configuration of the pleasure tool itself (not
// the project configuration it resolves). It is populated by merging
// defaults, an optional JSON settings file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with [EnvPrefix].
type Settings struct {
	// Project holds project discovery and resolution settings.
	Project Project

	// Log holds diagnostic output settings.
	Log Log `envPrefix:"LOG_"`

	// Markdown holds defaults of the markdown pre-processor.
	Markdown Markdown `envPrefix:"MD_"`

	// Watch holds settings of the watch command.
	Watch Watch `envPrefix:"WATCH_"`

	// SettingsFilePath is the optional path to a JSON settings file.
	// When non-empty, the file is parsed and merged beneath the values
	// loaded from environment variables and flags.
	// Populated via PLEASURE_SETTINGS or the --settings flag.
	SettingsFilePath string `env:"SETTINGS"`
}

// Project controls where the project root and its configuration file are
// looked up.
type Project struct {
	// Root overrides project root discovery.
	// Env: PLEASURE_ROOT
	Root string `env:"ROOT"`

	// ConfigPath overrides the configuration file location.
	// Env: PLEASURE_CONFIG_PATH
	ConfigPath string `env:"CONFIG_PATH"`

	// RootMarker is the file whose presence marks the project root.
	// Env: PLEASURE_ROOT_MARKER
	RootMarker string `env:"ROOT_MARKER"`

	// ConfigNames are the candidate configuration file names, in order of
	// preference. Env: PLEASURE_CONFIG_NAMES (comma separated)
	ConfigNames []string `env:"CONFIG_NAMES" envSeparator:","`

	// EnvPrefix prefixes the variables that override configuration leaves.
	// Env: PLEASURE_ENV_PREFIX
	EnvPrefix string `env:"ENV_PREFIX"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (e.g. "debug", "warn").
	// Env: PLEASURE_LOG_LEVEL
	Level string `env:"LEVEL"`

	// Format is "console" or "json".
	// Env: PLEASURE_LOG_FORMAT
	Format string `env:"FORMAT"`
}

// Markdown holds markdown pre-processor defaults.
type Markdown struct {
	// Out is the output directory. Env: PLEASURE_MD_OUT
	Out string `env:"OUT"`

	// Format is "md" or "html". Env: PLEASURE_MD_FORMAT
	Format string `env:"FORMAT"`

	// Exclude lists path substrings or regular expressions to skip.
	// Env: PLEASURE_MD_EXCLUDE (comma separated)
	Exclude []string `env:"EXCLUDE" envSeparator:","`

	// LibPath is the fallback directory of @import, relative to the scanned
	// directory. Env: PLEASURE_MD_LIB_PATH
	LibPath string `env:"LIB_PATH"`

	// AssetDest is where copied assets land, relative to Out.
	// Env: PLEASURE_MD_ASSET_DEST
	AssetDest string `env:"ASSET_DEST"`
}

// Watch holds watch command settings.
type Watch struct {
	// Debounce delays the markdown rebuild after a burst of changes.
	// Env: PLEASURE_WATCH_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`
}

// GetSettings loads, merges, and validates the tool settings from all
// available sources in the following priority order (later sources win for
// non-zero fields):
//  1. Built-in defaults
//  2. JSON settings file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Command-line flags registered with [RegisterFlags]
//
// fs may be nil, in which case flags are ignored.
func GetSettings(fs *pflag.FlagSet) (*Settings, error) {
	return newSettingsBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
