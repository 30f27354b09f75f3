// Package project locates a project's root directory and its configuration
// file.
//
// The root is the closest ancestor of the working directory holding the
// root marker file (package.json by default) unless it is pinned through
// the settings. The configuration file is the first existing candidate name
// under the root unless its path is pinned as well.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pleasure-utils/internal/config"
	"github.com/MKhiriev/go-pleasure-utils/internal/logger"
	"github.com/MKhiriev/go-pleasure-utils/internal/source"
	"github.com/MKhiriev/go-pleasure-utils/models"
)

var ErrWorkingDir = errors.New("cannot determine working directory")

// Finder answers project discovery questions for one set of settings.
type Finder struct {
	settings config.Project
	getwd    func() (string, error)
	logger   *logger.Logger
}

// NewFinder returns a finder configured by settings. Empty marker and
// configuration names fall back to the defaults.
func NewFinder(settings config.Project, log *logger.Logger) *Finder {
	defaults := config.Defaults().Project
	if settings.RootMarker == "" {
		settings.RootMarker = defaults.RootMarker
	}
	if len(settings.ConfigNames) == 0 {
		settings.ConfigNames = defaults.ConfigNames
	}

	return &Finder{
		settings: settings,
		getwd:    os.Getwd,
		logger:   logger.OrNop(log),
	}
}

// FindMarker walks up from dir until it finds the root marker and returns
// its path. An empty dir starts at the working directory joined with the
// root override. When the filesystem root is reached without a match the
// marker path under the working directory is returned.
func (f *Finder) FindMarker(dir string) (string, error) {
	cwd, err := f.getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWorkingDir, err)
	}

	if dir == "" {
		dir = f.settings.Root
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cwd, dir)
	}
	dir = filepath.Clean(dir)

	for {
		candidate := filepath.Join(dir, f.settings.RootMarker)
		if exists(candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return filepath.Join(cwd, f.settings.RootMarker), nil
		}
		dir = parent
	}
}

// FindRoot returns the project root, resolving paths against it when given.
func (f *Finder) FindRoot(paths ...string) (string, error) {
	root := f.settings.Root
	if root == "" {
		marker, err := f.FindMarker("")
		if err != nil {
			return "", err
		}
		root = filepath.Dir(marker)
	}

	resolved, err := f.resolve(root)
	if err != nil {
		return "", err
	}
	for _, p := range paths {
		if filepath.IsAbs(p) {
			resolved = p
			continue
		}
		resolved = filepath.Join(resolved, p)
	}

	return filepath.Clean(resolved), nil
}

// FindConfig returns the configuration file path: the pinned path when set,
// otherwise the first existing candidate under the root, otherwise the first
// candidate path.
func (f *Finder) FindConfig() (string, error) {
	if f.settings.ConfigPath != "" {
		return f.resolve(f.settings.ConfigPath)
	}

	root, err := f.FindRoot()
	if err != nil {
		return "", err
	}

	for _, name := range f.settings.ConfigNames {
		candidate := filepath.Join(root, name)
		if exists(candidate) {
			return candidate, nil
		}
	}

	fallback := filepath.Join(root, f.settings.ConfigNames[0])
	f.logger.Debug().Str("path", fallback).Msg("no configuration file found")
	return fallback, nil
}

// PackageJSON returns the parsed root marker of the project, or an empty
// document when it does not exist.
func (f *Finder) PackageJSON() (models.Document, error) {
	path, err := f.FindRoot(f.settings.RootMarker)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := source.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", source.ErrDecode, path, err)
	}
	return doc, nil
}

func (f *Finder) resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	cwd, err := f.getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWorkingDir, err)
	}
	return filepath.Join(cwd, path), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
