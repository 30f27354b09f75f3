// Package scan lists files below a directory.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultExclude skips dependency folders.
var DefaultExclude = []string{"node_modules"}

// Options tune [DeepScanDir].
type Options struct {
	// Exclude drops every path containing one of the patterns or matching it
	// as a regular expression. Excluded directories are not descended into.
	// Nil means [DefaultExclude]; use an empty slice to exclude nothing.
	Exclude []string
	// Filter, when set, keeps only the files it accepts. Directories are
	// never filtered.
	Filter func(path string) bool
	// Skip lists directories left out with everything below them. Entries
	// are compared as paths, never as patterns, so a sibling sharing a
	// name prefix is still scanned.
	Skip []string
}

// Matcher reports whether a path is excluded.
type Matcher struct {
	substrings []string
	patterns   []*regexp.Regexp
}

// NewMatcher compiles patterns. A pattern that is not a valid regular
// expression still matches as a substring.
func NewMatcher(patterns []string) *Matcher {
	m := &Matcher{}
	for _, p := range patterns {
		if p == "" {
			continue
		}
		m.substrings = append(m.substrings, p)
		if re, err := regexp.Compile(p); err == nil {
			m.patterns = append(m.patterns, re)
		}
	}
	return m
}

// Match reports whether path contains or matches any pattern.
func (m *Matcher) Match(path string) bool {
	for _, s := range m.substrings {
		if strings.Contains(path, s) {
			return true
		}
	}
	for _, re := range m.patterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// DeepScanDir returns every file below dir, in lexical walk order, joined
// with dir. Symbolic links are reported as files and not followed.
func DeepScanDir(ctx context.Context, dir string, opts Options) ([]string, error) {
	exclude := opts.Exclude
	if exclude == nil {
		exclude = DefaultExclude
	}
	matcher := NewMatcher(exclude)

	var found []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == dir {
			return nil
		}

		if d.IsDir() {
			if Skipped(path, opts.Skip) || matcher.Match(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if opts.Filter != nil && !opts.Filter(path) {
			return nil
		}
		if matcher.Match(path) {
			return nil
		}

		found = append(found, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	return found, nil
}

// Dirs returns dir and every directory below it that [DeepScanDir] would
// descend into. Filter is ignored.
func Dirs(ctx context.Context, dir string, opts Options) ([]string, error) {
	exclude := opts.Exclude
	if exclude == nil {
		exclude = DefaultExclude
	}
	matcher := NewMatcher(exclude)

	var found []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && (Skipped(path, opts.Skip) || matcher.Match(path)) {
			return filepath.SkipDir
		}

		found = append(found, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	return found, nil
}

// Skipped reports whether path is one of dirs or lies below one of them.
func Skipped(path string, dirs []string) bool {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		dir = filepath.Clean(dir)
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
