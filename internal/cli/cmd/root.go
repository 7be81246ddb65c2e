// Package cmd provides Cobra CLI commands for webshim.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/webshim/internal/cli"
	"github.com/bnema/webshim/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "webshim",
		Short: "Download and side-button bridges for embedded web views",
		Long: `webshim drives the download bridge and the synthetic mouse event bridge
against a headless page, so their behavior can be inspected without a
native web engine.

  webshim simulate download --url https://example.com/a.pdf --suggested a.pdf
  webshim simulate mouse --button 3 --phase up --x 120 --y 40
  webshim script --button 4 --phase up
  webshim history`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{ConfigFile: configFile, LogLevel: logLevel})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/webshim/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
