package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-pleasure-utils/models"
)

const (
	flagOut     = "out"
	flagFormat  = "format"
	flagExclude = "exclude"
)

func newMarkdownCommand(c *cli) *cobra.Command {
	mdCmd := &cobra.Command{
		Use:   "md",
		Short: "Pre-process markdown documentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	mdCmd.AddCommand(newMarkdownBuildCommand(c))

	return mdCmd
}

func newMarkdownBuildCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <dir>",
		Short: "Process every markdown file below a directory",
		Long: `Process every *.md file below dir, resolving @import and @show-source
directives. With --out the results are written there, keeping their relative
paths, and referenced images are copied along. Without it the processed
content is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := c.markdownRequest(cmd.Flags(), args[0])

			results, err := c.app.BuildMarkdown(cmd.Context(), req)
			if err != nil {
				return c.fail(err, "error building markdown")
			}

			w := cmd.OutOrStdout()
			for _, res := range results {
				if res.Dest != "" {
					fmt.Fprintf(w, "%s -> %s\n", res.Src, res.Dest)
					continue
				}
				fmt.Fprintln(w, res.Content)
			}
			return nil
		},
	}
	registerMarkdownFlags(cmd.Flags())

	return cmd
}

func registerMarkdownFlags(fs *pflag.FlagSet) {
	fs.String(flagOut, "", "Output directory")
	fs.String(flagFormat, "", "Output format (md, html)")
	fs.StringSlice(flagExclude, nil, "Path substring or regular expression to skip (repeatable)")
}

// markdownRequest starts from the markdown settings and applies the flags
// set on fs.
func (c *cli) markdownRequest(fs *pflag.FlagSet, dir string) models.BuildMarkdownRequest {
	req := c.app.MarkdownRequest(dir)

	if fs.Changed(flagOut) {
		req.Out, _ = fs.GetString(flagOut)
	}
	if fs.Changed(flagFormat) {
		req.Format, _ = fs.GetString(flagFormat)
	}
	if fs.Changed(flagExclude) {
		req.Exclude, _ = fs.GetStringSlice(flagExclude)
	}

	return req
}
