// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

var envPrefixPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validate checks that the final merged [Settings] satisfies all invariants
// before it is used at startup. Every failing group is reported.
func (s *Settings) validate() error {
	return errors.Join(
		s.Project.validate(),
		s.Log.validate(),
		s.Markdown.validate(),
		s.Watch.validate(),
	)
}

func (p Project) validate() error {
	if p.RootMarker == "" || strings.ContainsAny(p.RootMarker, `/\`) {
		return fmt.Errorf("%w: root marker must be a plain file name, got %q", ErrInvalidProjectSettings, p.RootMarker)
	}
	if len(p.ConfigNames) == 0 || slices.Contains(p.ConfigNames, "") {
		return fmt.Errorf("%w: configuration file names are required", ErrInvalidProjectSettings)
	}
	if !envPrefixPattern.MatchString(p.EnvPrefix) {
		return fmt.Errorf("%w: env prefix %q", ErrInvalidProjectSettings, p.EnvPrefix)
	}
	return nil
}

func (l Log) validate() error {
	if _, err := zerolog.ParseLevel(l.Level); err != nil || l.Level == "" {
		return fmt.Errorf("%w: level %q", ErrInvalidLogSettings, l.Level)
	}
	if l.Format != "console" && l.Format != "json" {
		return fmt.Errorf("%w: format %q", ErrInvalidLogSettings, l.Format)
	}
	return nil
}

func (m Markdown) validate() error {
	if m.Format != "md" && m.Format != "html" {
		return fmt.Errorf("%w: format %q", ErrInvalidMarkdownSettings, m.Format)
	}
	for _, pattern := range m.Exclude {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("%w: exclude %q: %w", ErrInvalidMarkdownSettings, pattern, err)
		}
	}
	return nil
}

func (w Watch) validate() error {
	if w.Debounce < 0 {
		return fmt.Errorf("%w: debounce %s", ErrInvalidWatchSettings, w.Debounce)
	}
	return nil
}
