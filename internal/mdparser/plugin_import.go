package mdparser

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLibPath is the folder, relative to the scanned directory, searched
// for imports that do not exist next to the importing file.
const DefaultLibPath = "_lib"

// ImportConfig tunes [Import].
type ImportConfig struct {
	// LibPath defaults to [DefaultLibPath].
	LibPath string
	// KeepPaths disables rebasing of image paths in imported files.
	KeepPaths bool
}

// Import inlines "@import(path)" directives with the processed content of
// the referenced file.
type Import struct {
	libPath  string
	fixPaths bool
}

var importPattern = directivePattern("import")

// NewImport returns the import plugin.
func NewImport(cfg ImportConfig) *Import {
	if cfg.LibPath == "" {
		cfg.LibPath = DefaultLibPath
	}
	return &Import{libPath: cfg.LibPath, fixPaths: !cfg.KeepPaths}
}

// Transform implements [Plugin].
//
// Paths are resolved against the importing file first and against the
// library folder of the scanned directory second. Imported content is
// trimmed. Sub-modules get their local image paths rebased onto the
// importing file's directory so they still resolve once inlined.
func (p *Import) Transform(ctx context.Context, f *File) (string, error) {
	content := f.Content
	if p.fixPaths && f.SubModule {
		content = rebaseImages(content, f.ParentDir, filepath.Dir(f.Src))
	}

	dir := filepath.Dir(f.Src)
	libPath := filepath.Join(f.Directory, p.libPath)

	return expand(ctx, content, importPattern, func(ctx context.Context, d directive) (string, error) {
		load := resolvePath(dir, d.file)
		if _, err := os.Stat(load); err != nil {
			load = resolvePath(libPath, d.file)
		}

		out, err := f.Parse(ctx, load, dir)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(out), nil
	})
}

// rebaseImages rewrites local image targets of a file living in dir so that
// they are relative to parentDir.
func rebaseImages(content, parentDir, dir string) string {
	base, err := filepath.Rel(parentDir, dir)
	if err != nil || base == "." {
		return content
	}

	return imagePattern.ReplaceAllStringFunc(content, func(m string) string {
		sub := imagePattern.FindStringSubmatch(m)
		if !isLocal(sub[2]) {
			return m
		}
		return sub[1] + "(" + RebaseGarbled(sub[2], base) + ")"
	})
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
