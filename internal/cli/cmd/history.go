package cmd

import (
	"encoding/json"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/webshim/internal/cli/model"
)

var (
	historyInteractive bool
	historyJSON        bool
	historyLimit       int
)

const defaultHistoryLimit = 50

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded downloads",
	Long:  `List download lifecycle events recorded by simulate download, newest first.`,
	RunE:  runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded downloads",
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().BoolVarP(&historyInteractive, "interactive", "i", false, "browse in an interactive table")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVar(&historyLimit, "limit", defaultHistoryLimit, "maximum records to show")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	history, err := app.History(app.Ctx())
	if err != nil {
		return err
	}

	if historyInteractive {
		m := model.NewHistoryModel(app.Ctx(), app.Theme, history, historyLimit)
		_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	}

	records, err := history.ListRecent(app.Ctx(), historyLimit)
	if err != nil {
		return fmt.Errorf("list downloads: %w", err)
	}

	out := cmd.OutOrStdout()
	if historyJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No downloads recorded"))
		return nil
	}
	fmt.Fprintln(out, app.Theme.RenderDownloadTable(records))
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	history, err := app.History(app.Ctx())
	if err != nil {
		return err
	}
	if err := history.Clear(app.Ctx()); err != nil {
		return fmt.Errorf("clear downloads: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render("Download history cleared"))
	return nil
}
