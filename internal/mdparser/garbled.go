package mdparser

import (
	"path/filepath"
	"regexp"
	"strings"
)

// imagePattern matches markdown images: group 1 is the "![alt]" tag and
// group 2 the raw target.
var imagePattern = regexp.MustCompile(`(!\[[^\]]*])\(([^)]+)\)`)

var remoteTarget = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// Garbled is an asset reference split into its path and the trailing
// "garbage" (a #fragment or a title) that follows it.
type Garbled struct {
	Path    string
	Sep     string
	Garbage string
}

// String joins the parts back together.
func (g Garbled) String() string {
	if g.Garbage == "" {
		return g.Path
	}
	return g.Path + g.Sep + g.Garbage
}

// BreakGarbledPath splits target at the first '#' or whitespace:
//
//	BreakGarbledPath("img/a.png#w=20") // {Path: "img/a.png", Sep: "#", Garbage: "w=20"}
func BreakGarbledPath(target string) Garbled {
	idx := strings.IndexFunc(target, func(r rune) bool {
		return r == '#' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if idx < 0 || idx == len(target)-1 {
		if idx >= 0 {
			target = target[:idx]
		}
		return Garbled{Path: target}
	}
	return Garbled{
		Path:    target[:idx],
		Sep:     target[idx : idx+1],
		Garbage: target[idx+1:],
	}
}

// RebaseGarbled joins base with the path of target, keeping its garbage.
func RebaseGarbled(target, base string) string {
	g := BreakGarbledPath(target)
	g.Path = filepath.ToSlash(filepath.Join(base, g.Path))
	return g.String()
}

// isLocal reports whether an asset path points into the file system tree
// rather than to a URL, a data URI or an absolute location.
func isLocal(path string) bool {
	return path != "" && !remoteTarget.MatchString(path) && !strings.HasPrefix(path, "/")
}
