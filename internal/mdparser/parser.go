package mdparser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pleasure-utils/internal/eventbus"
	"github.com/MKhiriev/go-pleasure-utils/internal/logger"
	"github.com/MKhiriev/go-pleasure-utils/internal/scan"
	"github.com/MKhiriev/go-pleasure-utils/internal/utils"
)

// Format selects the output format.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatMarkdown, FormatHTML:
		return f, nil
	case "":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Result describes one processed top-level file.
type Result struct {
	// Src is the markdown source.
	Src string
	// Dest is the written file, empty when the parser has no output
	// directory.
	Dest string
	// Content is the processed markdown.
	Content string
}

// Parser runs markdown files through a plugin pipeline.
type Parser struct {
	plugins []Plugin
	out     string
	exclude []string
	format  Format
	bus     *eventbus.Bus
	logger  *logger.Logger
}

// Option configures a [Parser].
type Option func(*Parser)

// WithPlugins sets the pipeline, applied in order.
func WithPlugins(plugins ...Plugin) Option {
	return func(p *Parser) {
		p.plugins = plugins
	}
}

// WithOut sets the output directory. Without one nothing is written.
func WithOut(dir string) Option {
	return func(p *Parser) {
		p.out = dir
	}
}

// WithExclude sets the paths skipped while scanning; see [scan.Options].
func WithExclude(patterns ...string) Option {
	return func(p *Parser) {
		p.exclude = patterns
	}
}

// WithFormat sets the output format.
func WithFormat(f Format) Option {
	return func(p *Parser) {
		p.format = f
	}
}

// WithBus announces every written file as [eventbus.MarkdownProcessed].
func WithBus(bus *eventbus.Bus) Option {
	return func(p *Parser) {
		p.bus = bus
	}
}

// New returns a parser. Without [WithPlugins] it runs the default pipeline:
// [Import], [ShowSource] and, when an output directory is set, [CopyAsset].
func New(log *logger.Logger, opts ...Option) *Parser {
	p := &Parser{
		format: FormatMarkdown,
		logger: logger.OrNop(log),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.plugins == nil {
		p.plugins = []Plugin{NewImport(ImportConfig{}), NewShowSource()}
		if p.out != "" {
			p.plugins = append(p.plugins, NewCopyAsset(CopyAssetConfig{}))
		}
	}

	return p
}

// Run processes every markdown file below directory, one after the other,
// and returns them in scan order.
func (p *Parser) Run(ctx context.Context, directory string) ([]Result, error) {
	directory, err := filepath.Abs(directory)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	mainOut := p.out
	if mainOut != "" {
		if mainOut, err = filepath.Abs(mainOut); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}

	var skip []string
	if mainOut != "" && !isWithin(directory, mainOut) {
		// keep rebuilding from picking up its own output
		skip = append(skip, mainOut)
	}

	files, err := scan.DeepScanDir(ctx, directory, scan.Options{
		Exclude: p.exclude,
		Filter:  func(path string) bool { return strings.HasSuffix(path, ".md") },
		Skip:    skip,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	results := make([]Result, 0, len(files))
	for _, src := range files {
		content, err := p.process(ctx, src, directory, directory, mainOut, false)
		if err != nil {
			return results, err
		}

		res := Result{Src: src, Content: content}
		if mainOut != "" {
			if res.Dest, err = p.write(directory, mainOut, src, content); err != nil {
				return results, err
			}
			if p.bus != nil {
				p.bus.Emit(eventbus.MarkdownProcessed, res.Src, res.Dest)
			}
		}

		p.logger.Debug().Str("src", src).Str("dest", res.Dest).Msg("markdown processed")
		results = append(results, res)
	}

	p.logger.Info().Str("directory", directory).Int("files", len(results)).Msg("markdown build finished")
	return results, nil
}

func (p *Parser) process(ctx context.Context, src, directory, parentDir, mainOut string, sub bool) (string, error) {
	if slices.Contains(utils.GetImportChainFromContext(ctx), src) {
		return "", fmt.Errorf("%w: %s", ErrImportCycle, strings.Join(append(utils.GetImportChainFromContext(ctx), src), " -> "))
	}
	ctx = utils.WithImportChain(ctx, src)

	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}

	if directory == "" {
		directory = filepath.Dir(src)
	}
	if parentDir == "" {
		parentDir = directory
	}

	f := &File{
		Src:       src,
		Content:   string(data),
		Directory: directory,
		ParentDir: parentDir,
		MainOut:   mainOut,
		SubModule: sub,
		parse: func(ctx context.Context, child, from string) (string, error) {
			return p.process(ctx, child, "", from, mainOut, true)
		},
	}

	for _, plugin := range p.plugins {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		content, err := plugin.Transform(ctx, f)
		if err != nil {
			if errors.Is(err, ErrImportCycle) || errors.Is(err, ErrPlugin) {
				return "", err
			}
			return "", fmt.Errorf("%w %T on %s: %w", ErrPlugin, plugin, src, err)
		}
		f.Content = content
	}

	return f.Content, nil
}

func (p *Parser) write(directory, mainOut, src, content string) (string, error) {
	rel, err := filepath.Rel(directory, src)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrite, err)
	}
	dest := filepath.Join(mainOut, rel)

	data := []byte(content)
	if p.format == FormatHTML {
		dest = strings.TrimSuffix(dest, filepath.Ext(dest)) + ".html"
		if data, err = RenderHTML(data); err != nil {
			return "", fmt.Errorf("%w: render %s: %w", ErrWrite, src, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return dest, nil
}

// isWithin reports whether path is dir itself or lies above it, i.e. the
// output directory contains the scanned one.
func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(path, dir)
	return err == nil && !strings.HasPrefix(rel, "..")
}
