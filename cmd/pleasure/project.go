package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pleasure-utils/models"
)

func newRootPathCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "root [paths...]",
		Short: "Print the project root, optionally joined with paths",
		Example: `  pleasure root
  pleasure root src components`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.app.Finder.FindRoot(args...)
			if err != nil {
				return c.fail(err, "error finding project root")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), root)
			return err
		},
	}
}

func newPackageCommand(c *cli) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "package [path]",
		Short: "Print the project's package.json, or one of its fields",
		Example: `  pleasure package
  pleasure package scripts.build -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.app.Finder.PackageJSON()
			if err != nil {
				return c.fail(err, "error reading package.json")
			}

			if len(args) == 1 {
				v, ok := doc.Lookup(args[0])
				if !ok {
					return c.fail(fmt.Errorf("%q not found", args[0]), "error reading package.json")
				}
				if v.Kind() != models.KindMapping && v.Kind() != models.KindSequence {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), v.String())
					return err
				}
				doc = models.Document{args[0]: v}
			}

			return writeDocument(cmd.OutOrStdout(), doc, models.OutputFormat(output))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(models.OutputJSON), "Output format (yaml, json, text)")

	return cmd
}
