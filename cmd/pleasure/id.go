package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pleasure-utils/internal/utils"
)

func newIDCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "id",
		Short: "Print short time-based identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for range count {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), utils.RandomUniqueID()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of identifiers")

	return cmd
}
