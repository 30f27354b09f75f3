package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pleasure-utils/internal/app"
	"github.com/MKhiriev/go-pleasure-utils/internal/config"
	"github.com/MKhiriev/go-pleasure-utils/internal/logger"
	"github.com/MKhiriev/go-pleasure-utils/models"
)

// cli is shared by the command constructors. app and logger are set by the
// root command before any subcommand runs.
type cli struct {
	info   models.AppBuildInfo
	app    *app.App
	logger *logger.Logger
}

// NewRootCommand returns the pleasure command tree.
func NewRootCommand(info models.AppBuildInfo) *cobra.Command {
	c := &cli{info: info}

	rootCmd := &cobra.Command{
		Use:   "pleasure",
		Short: "Project configuration and documentation tooling",
		Long: `pleasure resolves the configuration of a project and pre-processes its
markdown documentation.

The configuration file (pleasure.config.yml, .yaml or .json under the project
root) is layered with registered overrides, command-line values and
environment variables named after each leaf, e.g. PLEASURE_API_PORT.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", versionOf(info), valueOrNA(info.BuildCommit()), valueOrNA(info.BuildDate())),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newConfigCommand(c),
		newRootPathCommand(c),
		newPackageCommand(c),
		newIDCommand(),
		newMarkdownCommand(c),
		newWatchCommand(c),
		newVersionCommand(c),
	)

	return rootCmd
}

func (c *cli) setup(cmd *cobra.Command) error {
	settings, err := config.GetSettings(cmd.Flags())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "error getting settings: %v\n", err)
		return err
	}

	log := logger.NewConsoleLogger("pleasure")
	if settings.Log.Format == "json" {
		log = logger.NewLogger("pleasure")
	}
	c.logger = log.WithLevel(settings.Log.Level)
	c.logger.Debug().Any("settings", settings).Msg("received settings")

	c.app = app.New(*settings, c.logger)
	return nil
}

// fail logs err and hands it back to cobra.
func (c *cli) fail(err error, msg string) error {
	c.logger.Error().Err(err).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
