package config

import (
	"errors"
	"fmt"
	"slices"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

type settingsBuilder struct {
	configs []*Settings
	err     error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		configs: make([]*Settings, 0, 4),
	}
}

func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, cfg := range b.configs {
		if err := mergo.Merge(settings, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	b.configs = append(b.configs, Defaults())
	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envCfg := &Settings{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *settingsBuilder) withFlags(fs *pflag.FlagSet) *settingsBuilder {
	flagCfg, err := parseFlags(fs)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

// withJSON loads the settings file named by any source gathered so far and
// places it right after the defaults, beneath env and flags.
func (b *settingsBuilder) withJSON() *settingsBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.SettingsFilePath != "" {
			jsonPath = cfg.SettingsFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	at := 0
	if len(b.configs) > 0 {
		at = 1
	}
	b.configs = slices.Insert(b.configs, at, jsonCfg)
	return b
}
