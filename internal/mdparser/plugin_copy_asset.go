package mdparser

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
)

// CopyAssetConfig tunes [CopyAsset].
type CopyAssetConfig struct {
	// Dest is the asset folder relative to the output directory. Defaults
	// to "./".
	Dest string
}

// CopyAsset copies the images referenced by top-level files into the output
// directory and points the references at the copies.
type CopyAsset struct {
	dest string
}

var leadingNonAlnum = regexp.MustCompile(`^[^a-zA-Z0-9]+`)

// NewCopyAsset returns the copy-asset plugin.
func NewCopyAsset(cfg CopyAssetConfig) *CopyAsset {
	if cfg.Dest == "" {
		cfg.Dest = "./"
	}
	return &CopyAsset{dest: cfg.Dest}
}

// Transform implements [Plugin]. Sub-modules and runs without an output
// directory are left alone. Existing destination files are never
// overwritten and missing sources are not an error.
func (p *CopyAsset) Transform(_ context.Context, f *File) (string, error) {
	if f.SubModule || f.MainOut == "" {
		return f.Content, nil
	}
	outPath := filepath.Join(f.MainOut, p.dest)

	var copyErr error
	content := imagePattern.ReplaceAllStringFunc(f.Content, func(m string) string {
		sub := imagePattern.FindStringSubmatch(m)
		g := BreakGarbledPath(sub[2])
		if copyErr != nil || !isLocal(g.Path) {
			return m
		}

		cleanPath := leadingNonAlnum.ReplaceAllString(g.Path, "")
		srcPath := filepath.Join(filepath.Dir(f.Src), g.Path)
		destPath := filepath.Join(outPath, cleanPath)

		if err := copyIfMissing(srcPath, destPath); err != nil {
			copyErr = err
			return m
		}

		g.Path = filepath.ToSlash(filepath.Join(p.dest, cleanPath))
		return sub[1] + "(" + g.String() + ")"
	})
	if copyErr != nil {
		return "", copyErr
	}

	return content, nil
}

func copyIfMissing(src, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
