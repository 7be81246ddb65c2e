package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/webshim/internal/infrastructure/config"
	"github.com/bnema/webshim/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.SchemaJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file and history database paths",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config   %s\n", app.Manager.ConfigFile())
		fmt.Fprintf(out, "database %s\n", app.Config.Database.Path)
		return nil
	},
}

var configWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the effective settings each time config.toml changes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		log := logging.FromContext(logging.WithComponent(app.Ctx(), "config"))
		out := cmd.OutOrStdout()

		app.Manager.OnConfigChange(func(cfg *config.Config) {
			log.Info().Str("file", app.Manager.ConfigFile()).Msg("config reloaded")
			printSettings(out, cfg)
		})
		if err := app.Manager.Watch(); err != nil {
			return fmt.Errorf("watch config: %w", err)
		}

		printSettings(out, app.Config)
		fmt.Fprintln(out, app.Theme.Subtle.Render("Watching "+app.Manager.ConfigFile()+", Ctrl+C to stop"))

		ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()
		return nil
	},
}

func printSettings(out io.Writer, cfg *config.Config) {
	fmt.Fprintf(out, "downloads.directory          %s\n", cfg.Downloads.Directory)
	fmt.Fprintf(out, "downloads.deduplicate        %t\n", cfg.Downloads.Deduplicate)
	fmt.Fprintf(out, "downloads.report_final_path  %t\n", cfg.Downloads.ReportFinalPath)
	fmt.Fprintf(out, "mouse.guard_missing_element  %t\n", cfg.Mouse.GuardMissingElement)
	fmt.Fprintf(out, "database.path                %s\n", cfg.Database.Path)
	fmt.Fprintf(out, "logging.level                %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "logging.format               %s\n", cfg.Logging.Format)
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSchemaCmd, configPathCmd, configWatchCmd)
}
