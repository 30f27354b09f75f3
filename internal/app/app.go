// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pleasure-utils/internal/config"
	"github.com/MKhiriev/go-pleasure-utils/internal/eventbus"
	"github.com/MKhiriev/go-pleasure-utils/internal/logger"
	"github.com/MKhiriev/go-pleasure-utils/internal/mdparser"
	"github.com/MKhiriev/go-pleasure-utils/internal/override"
	"github.com/MKhiriev/go-pleasure-utils/internal/project"
	"github.com/MKhiriev/go-pleasure-utils/internal/resolver"
	"github.com/MKhiriev/go-pleasure-utils/internal/scan"
	"github.com/MKhiriev/go-pleasure-utils/internal/source"
	"github.com/MKhiriev/go-pleasure-utils/internal/validators"
	"github.com/MKhiriev/go-pleasure-utils/internal/workers"
	"github.com/MKhiriev/go-pleasure-utils/models"
)

var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrInvalidMiddleware = errors.New(MsgInvalidMiddleware)
)

// App holds the long-lived components shared by the CLI commands.
type App struct {
	Settings  config.Settings
	Bus       *eventbus.Bus
	Registry  *override.Registry
	Loader    *source.FileLoader
	Finder    *project.Finder
	Resolver  *resolver.Resolver
	Validator validators.Validator

	logger *logger.Logger
}

// New builds the application from settings.
func New(settings config.Settings, log *logger.Logger) *App {
	log = logger.OrNop(log)

	bus := eventbus.New(nil, log)
	registry := override.NewRegistry(log)
	loader := source.NewFileLoader(log)
	finder := project.NewFinder(settings.Project, log)

	return &App{
		Settings: settings,
		Bus:      bus,
		Registry: registry,
		Loader:   loader,
		Finder:   finder,
		Resolver: resolver.NewResolver(loader, finder, log,
			resolver.WithEnvPrefix(settings.Project.EnvPrefix),
			resolver.WithRegistry(registry),
		),
		Validator: validators.NewRequestValidator(),
		logger:    log,
	}
}

// ExtendFromFile parses a "scope=path" pair and registers the file at path
// as a middleware override of scope. The file is read through the shared
// cache on every resolution, so edits are seen once the cache entry is
// forgotten. A missing file contributes nothing.
func (a *App) ExtendFromFile(pair string) error {
	scope, path, ok := strings.Cut(pair, "=")
	if !ok || scope == "" || path == "" {
		return fmt.Errorf("%w: %q", ErrInvalidMiddleware, pair)
	}

	return a.Resolver.ExtendConfig(scope, override.Lazy(func() (models.Document, error) {
		doc, found, err := a.Loader.Load(path)
		if err != nil {
			return nil, err
		}
		if !found {
			return models.Document{}, nil
		}
		return doc, nil
	}))
}

// ShowConfig validates req and resolves the requested scope.
func (a *App) ShowConfig(ctx context.Context, req models.ShowConfigRequest) (models.Document, error) {
	if err := a.Validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	var opts []resolver.GetOption
	if req.Force {
		opts = append(opts, resolver.WithForceReload())
	}
	if req.NoMiddleware {
		opts = append(opts, resolver.WithoutMiddleware())
	}
	if len(req.MergeWith) > 0 {
		opts = append(opts, resolver.WithMergeWith(req.MergeWith))
	}

	return a.Resolver.GetConfig(req.Scope, opts...)
}

// MarkdownRequest returns a build request for directory filled from the
// markdown settings.
func (a *App) MarkdownRequest(directory string) models.BuildMarkdownRequest {
	md := a.Settings.Markdown
	return models.BuildMarkdownRequest{
		Directory: directory,
		Out:       md.Out,
		Format:    md.Format,
		Exclude:   md.Exclude,
	}
}

// BuildMarkdown validates req and runs the markdown pre-processor once.
func (a *App) BuildMarkdown(ctx context.Context, req models.BuildMarkdownRequest) ([]mdparser.Result, error) {
	parser, err := a.parser(ctx, req)
	if err != nil {
		return nil, err
	}
	return parser.Run(ctx, req.Directory)
}

// Watch builds the markdown of req once, then rebuilds it every time the
// configuration file or a file below req.Directory changes, until ctx is
// done. The output directory is not watched.
func (a *App) Watch(ctx context.Context, req models.BuildMarkdownRequest) error {
	parser, err := a.parser(ctx, req)
	if err != nil {
		return err
	}
	path, err := a.Finder.FindConfig()
	if err != nil {
		return err
	}

	build := func(ctx context.Context) error {
		_, err := parser.Run(ctx, req.Directory)
		return err
	}
	if err := build(ctx); err != nil {
		return err
	}

	watcher := source.NewWatcher(path, a.Loader, a.Bus, a.logger)
	tree := source.NewTreeWatcher(req.Directory, scan.Options{
		Exclude: req.Exclude,
		Skip:    []string{req.Out},
	}, a.Bus, a.logger)
	rebuilder := NewRebuilder(a.Bus, build, a.Settings.Watch.Debounce, a.logger)

	a.logger.Info().Str("config", watcher.Path()).Str("directory", tree.Dir()).Msg(MsgWatching)
	return workers.NewWorkers(watcher, tree, rebuilder).Run(ctx)
}

func (a *App) parser(ctx context.Context, req models.BuildMarkdownRequest) (*mdparser.Parser, error) {
	if err := a.Validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	format, err := mdparser.ParseFormat(req.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	md := a.Settings.Markdown
	plugins := []mdparser.Plugin{
		mdparser.NewImport(mdparser.ImportConfig{LibPath: md.LibPath}),
		mdparser.NewShowSource(),
	}
	if req.Out != "" {
		plugins = append(plugins, mdparser.NewCopyAsset(mdparser.CopyAssetConfig{Dest: md.AssetDest}))
	}

	opts := []mdparser.Option{
		mdparser.WithPlugins(plugins...),
		mdparser.WithOut(req.Out),
		mdparser.WithFormat(format),
		mdparser.WithBus(a.Bus),
	}
	if req.Exclude != nil {
		opts = append(opts, mdparser.WithExclude(req.Exclude...))
	}

	return mdparser.New(a.logger, opts...), nil
}
