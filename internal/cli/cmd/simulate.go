package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/webshim/internal/application/port"
	"github.com/bnema/webshim/internal/cli"
	"github.com/bnema/webshim/internal/domain/mouse"
	"github.com/bnema/webshim/internal/logging"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Drive a bridge against the headless engine",
}

var (
	dlScenario cli.DownloadScenario
	dlBody     string
	dlNoRecord bool
	dlDir      string
)

var simulateDownloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Promote a navigation to a download and follow its lifecycle",
	Long: `Promote a navigation to a download and follow it through the bridge:
destination decision, transfer, then finished or failed.

The host callbacks accept the proposed path unless --reject is given.
Lifecycle events are recorded in the download history unless --no-record.`,
	Example: `  webshim simulate download --url https://example.com/a.pdf --suggested a.pdf --body "hello"
  webshim simulate download --url https://example.com/a.pdf --suggested a.pdf --fail "connection reset"
  webshim simulate download --url https://example.com/a.pdf --suggested ../../etc/passwd --reject`,
	RunE: runSimulateDownload,
}

var (
	msScenario  cli.MouseScenario
	msPhase     string
	msMods      modifierFlags
	msShowCode  bool
	msGuardFlag bool
)

var simulateMouseCmd = &cobra.Command{
	Use:   "mouse",
	Short: "Press or release a side mouse button over the headless page",
	Long: `Feed one native extra-button event through the mouse bridge.

Buttons 3 (back) and 4 (forward) are turned into DOM mouse events; a release
that the page does not cancel navigates history. Any other button goes to the
default handler untouched.`,
	Example: `  webshim simulate mouse --button 3 --phase up --x 10.7 --y 20.2 --ctrl
  webshim simulate mouse --button 4 --phase up --prevent-default`,
	RunE: runSimulateMouse,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.AddCommand(simulateDownloadCmd, simulateMouseCmd)

	f := simulateDownloadCmd.Flags()
	f.StringVar(&dlScenario.URL, "url", "", "original request URL (empty models a request without one)")
	f.StringVar(&dlScenario.Suggested, "suggested", "", "engine suggested filename")
	f.StringVar(&dlScenario.MimeType, "mime", "", "response MIME type")
	f.StringVar(&dlBody, "body", "", "content written to the accepted destination")
	f.BoolVar(&dlScenario.Reject, "reject", false, "host rejects the download")
	f.StringVar(&dlScenario.Rename, "rename", "", "host renames the proposed file before accepting")
	f.StringVar(&dlScenario.Fail, "fail", "", "engine fails the download with this error")
	f.BoolVar(&dlScenario.CloseView, "close-view", false, "close the view while the host decides")
	f.StringVar(&dlDir, "dir", "", "override downloads.directory")
	f.BoolVar(&dlNoRecord, "no-record", false, "do not write download history")

	f = simulateMouseCmd.Flags()
	f.IntVar(&msScenario.Button, "button", 3, "native button number (3 back, 4 forward)")
	f.StringVar(&msPhase, "phase", "up", "down or up")
	f.Float64Var(&msScenario.X, "x", 0, "window x coordinate")
	f.Float64Var(&msScenario.Y, "y", 0, "window y coordinate")
	f.IntVar(&msScenario.ClickCount, "clicks", 1, "click count")
	f.BoolVar(&msScenario.PreventDefault, "prevent-default", false, "page cancels the event")
	f.StringSliceVar(&msScenario.Back, "back", []string{"https://example.com/previous", "https://example.com/current"}, "back list, last entry is the current page")
	f.StringSliceVar(&msScenario.Forward, "forward", []string{"https://example.com/next"}, "forward list")
	f.BoolVar(&msShowCode, "show-script", false, "print the injected script")
	f.BoolVar(&msGuardFlag, "guard", false, "skip dispatch when no element is under the cursor")
	msMods.register(f)
}

func runSimulateDownload(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "download")

	var events port.DownloadEventHandler
	if !dlNoRecord {
		history, err := app.History(ctx)
		if err != nil {
			return err
		}
		events = history
	}

	cfg := app.BridgeConfig(events)
	if cmd.Flags().Changed("dir") {
		cfg.DownloadDir = dlDir
	}
	if dlBody != "" {
		dlScenario.Body = []byte(dlBody)
	}

	report, err := cli.RunDownloadScenario(ctx, dlScenario, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Out, cli.RenderDownloadReport(app.Theme, report))
	return nil
}

func runSimulateMouse(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	phase, err := parsePhase(msPhase)
	if err != nil {
		return err
	}
	msScenario.Phase = phase
	msScenario.Modifiers = msMods.flags()

	opts := app.ScriptOptions()
	if cmd.Flags().Changed("guard") {
		opts.GuardMissingElement = msGuardFlag
	}

	report, err := cli.RunMouseScenario(logging.WithComponent(app.Ctx(), "mouse"), msScenario, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Out, cli.RenderMouseReport(app.Theme, report, msShowCode))
	return nil
}

func parsePhase(s string) (mouse.Phase, error) {
	switch s {
	case "down":
		return mouse.PhaseDown, nil
	case "up":
		return mouse.PhaseUp, nil
	default:
		return 0, fmt.Errorf("invalid --phase %q: want down or up", s)
	}
}
