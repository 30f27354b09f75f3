package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pleasure-utils/internal/argsparser"
	"github.com/MKhiriev/go-pleasure-utils/models"
)

func newConfigCommand(c *cli) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the project configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	configCmd.AddCommand(newConfigShowCommand(c))

	return configCmd
}

func newConfigShowCommand(c *cli) *cobra.Command {
	var (
		force        bool
		noMiddleware bool
		output       string
		middleware   []string
	)

	cmd := &cobra.Command{
		Use:   "show [scope] [-- --key=value ...]",
		Short: "Print the resolved configuration of a scope",
		Long: `Print the configuration of a scope, or of the whole project when no scope
is given. Arguments after "--" are parsed like command-line options and merged
over the result, e.g.

  pleasure config show api -- --port=4000 --verbose`,
		Args: func(cmd *cobra.Command, args []string) error {
			if dash := cmd.ArgsLenAtDash(); dash > 1 || (dash < 0 && len(args) > 1) {
				return fmt.Errorf("accepts at most one scope, received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, extra := splitScope(cmd, args)

			for _, m := range middleware {
				if err := c.app.ExtendFromFile(m); err != nil {
					return c.fail(err, "error registering middleware")
				}
			}

			doc, err := c.app.ShowConfig(cmd.Context(), models.ShowConfigRequest{
				Scope:        scope,
				Output:       models.OutputFormat(output),
				Force:        force,
				NoMiddleware: noMiddleware,
				MergeWith:    argsparser.Parse(extra),
			})
			if err != nil {
				return c.fail(err, "error resolving configuration")
			}

			return writeDocument(cmd.OutOrStdout(), doc, models.OutputFormat(output))
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Re-read the configuration file")
	cmd.Flags().BoolVar(&noMiddleware, "no-middleware", false, "Skip registered overrides")
	cmd.Flags().StringVarP(&output, "output", "o", string(models.OutputYAML), "Output format (yaml, json, text)")
	cmd.Flags().StringArrayVar(&middleware, "middleware", nil, "Override file for a scope, as scope=path (repeatable)")

	return cmd
}

// splitScope separates the optional scope from the arguments given after
// "--".
func splitScope(cmd *cobra.Command, args []string) (string, []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		dash = len(args)
	}

	scope := ""
	if dash > 0 {
		scope = args[0]
	}
	return scope, args[dash:]
}
