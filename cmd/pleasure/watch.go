package main

import (
	"github.com/spf13/cobra"
)

func newWatchCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Rebuild markdown whenever its sources or the configuration change",
		Long: `Build the markdown below dir like "md build", then watch the project
configuration file and every file below dir, and rebuild after each burst
of changes until interrupted. The output directory is not watched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := c.markdownRequest(cmd.Flags(), args[0])

			if err := c.app.Watch(cmd.Context(), req); err != nil {
				return c.fail(err, "error watching")
			}
			return nil
		},
	}
	registerMarkdownFlags(cmd.Flags())

	return cmd
}
