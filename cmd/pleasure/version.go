package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pleasure-utils/models"
)

func newVersionCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printBuildInfo(cmd.OutOrStdout(), c.info)
		},
	}
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", versionOf(info))
	fmt.Fprintf(w, "Build date: %s\n", valueOrNA(info.BuildDate()))
	fmt.Fprintf(w, "Build commit: %s\n", valueOrNA(info.BuildCommit()))
}

func versionOf(info models.AppBuildInfo) string {
	if info.IsDevelopment() {
		return "dev"
	}
	return strings.TrimSpace(info.BuildVersion())
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
