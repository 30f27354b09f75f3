package mdparser

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"
)

// directive is one "@name(file, options)" occurrence.
type directive struct {
	file    string
	options string
}

func directivePattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`@` + regexp.QuoteMeta(name) + `\(([^)]+)\)`)
}

func parseDirective(args string) directive {
	if i := strings.Index(args, ","); i > 0 {
		return directive{
			file:    strings.TrimSpace(args[:i]),
			options: strings.TrimSpace(args[i+1:]),
		}
	}
	return directive{file: strings.TrimSpace(args)}
}

// expand resolves every directive matched by pattern concurrently and
// substitutes the results in order of appearance.
func expand(ctx context.Context, content string, pattern *regexp.Regexp, load func(ctx context.Context, d directive) (string, error)) (string, error) {
	matches := pattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, nil
	}

	results := make([]string, len(matches))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range matches {
		d := parseDirective(content[m[2]:m[3]])
		g.Go(func() error {
			out, err := load(gctx, d)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	var b strings.Builder
	last := 0
	for i, m := range matches {
		b.WriteString(content[last:m[0]])
		b.WriteString(results[i])
		last = m[1]
	}
	b.WriteString(content[last:])

	return b.String(), nil
}
