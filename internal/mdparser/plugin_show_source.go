package mdparser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const codeFence = "```"

// ShowSourceOptions are the options accepted after the path of a
// "@show-source" directive, written as a flow mapping:
//
//	@show-source(./main.go, {displayLink: false})
type ShowSourceOptions struct {
	DisplayLink bool `yaml:"displayLink"`
}

// ShowSource embeds source files as fenced code blocks.
type ShowSource struct{}

var showSourcePattern = directivePattern("show-source")

// NewShowSource returns the show-source plugin.
func NewShowSource() *ShowSource {
	return &ShowSource{}
}

// Transform implements [Plugin]. The block is tagged with the file
// extension and, unless displayLink is false, opens with a "// path"
// comment.
func (p *ShowSource) Transform(ctx context.Context, f *File) (string, error) {
	dir := filepath.Dir(f.Src)

	return expand(ctx, f.Content, showSourcePattern, func(_ context.Context, d directive) (string, error) {
		opts, err := parseShowSourceOptions(d.options)
		if err != nil {
			return "", err
		}

		data, err := os.ReadFile(resolvePath(dir, d.file))
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrRead, err)
		}

		lines := []string{codeFence + strings.TrimPrefix(filepath.Ext(d.file), ".")}
		if opts.DisplayLink {
			lines = append(lines, "// "+d.file+"\n")
		}
		lines = append(lines, strings.TrimSpace(string(data)), codeFence)

		return strings.Join(lines, "\n"), nil
	})
}

func parseShowSourceOptions(raw string) (ShowSourceOptions, error) {
	opts := ShowSourceOptions{DisplayLink: true}
	if raw == "" {
		return opts, nil
	}
	if err := yaml.Unmarshal([]byte(raw), &opts); err != nil {
		return opts, fmt.Errorf("%w %q: %w", ErrOptions, raw, err)
	}
	return opts, nil
}
