package mdparser

import "context"

// File is the unit handed to plugins.
type File struct {
	// Src is the absolute path the content was read from.
	Src string
	// Content is the current content, as left by the previous plugin.
	Content string
	// Directory is the scanned directory for top-level files and the
	// directory of Src for sub-modules.
	Directory string
	// ParentDir is the directory of the importing file, or Directory for
	// top-level files.
	ParentDir string
	// MainOut is the output directory of the run. Empty when nothing is
	// written.
	MainOut string
	// SubModule is set when the file is being imported by another one.
	SubModule bool

	parse func(ctx context.Context, src, parentDir string) (string, error)
}

// Parse runs src through the whole pipeline as a sub-module imported from
// parentDir and returns the result.
func (f *File) Parse(ctx context.Context, src, parentDir string) (string, error) {
	return f.parse(ctx, src, parentDir)
}

// Plugin transforms the content of a file.
type Plugin interface {
	Transform(ctx context.Context, f *File) (string, error)
}

// PluginFunc adapts a function to [Plugin].
type PluginFunc func(ctx context.Context, f *File) (string, error)

// Transform calls fn(ctx, f).
func (fn PluginFunc) Transform(ctx context.Context, f *File) (string, error) {
	return fn(ctx, f)
}
