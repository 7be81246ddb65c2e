package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bnema/webshim/internal/application/port"
	"github.com/bnema/webshim/internal/infrastructure/headless"
	"github.com/bnema/webshim/internal/infrastructure/webkit"
)

// modifierFlags binds --ctrl/--alt/--shift/--meta.
type modifierFlags struct {
	ctrl, alt, shift, meta bool
}

func (m *modifierFlags) register(f *pflag.FlagSet) {
	f.BoolVar(&m.ctrl, "ctrl", false, "hold control")
	f.BoolVar(&m.alt, "alt", false, "hold option/alt")
	f.BoolVar(&m.shift, "shift", false, "hold shift")
	f.BoolVar(&m.meta, "meta", false, "hold command/meta")
}

func (m *modifierFlags) flags() port.ModifierFlags {
	var f port.ModifierFlags
	if m.ctrl {
		f |= port.ModifierControl
	}
	if m.alt {
		f |= port.ModifierOption
	}
	if m.shift {
		f |= port.ModifierShift
	}
	if m.meta {
		f |= port.ModifierCommand
	}
	return f
}

var (
	scriptButton int
	scriptPhase  string
	scriptX      float64
	scriptY      float64
	scriptClicks int
	scriptMask   uint
	scriptMods   modifierFlags
	scriptGuard  bool
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Print the script injected for a side-button event",
	Example: `  webshim script --button 4 --phase up --x 10.7 --y 20.2 --ctrl
  webshim script --button 3 --phase down --buttons 8 --guard`,
	Args: cobra.NoArgs,
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(scriptCmd)

	f := scriptCmd.Flags()
	f.IntVar(&scriptButton, "button", 3, "native button number (3 back, 4 forward)")
	f.StringVar(&scriptPhase, "phase", "up", "down or up")
	f.Float64Var(&scriptX, "x", 0, "view x coordinate")
	f.Float64Var(&scriptY, "y", 0, "view y coordinate")
	f.IntVar(&scriptClicks, "clicks", 1, "click count")
	f.UintVar(&scriptMask, "buttons", 0, "pressed-buttons bitmask")
	f.BoolVar(&scriptGuard, "guard", false, "return early when no element is under the cursor")
	scriptMods.register(f)
}

func runScript(cmd *cobra.Command, _ []string) error {
	phase, err := parsePhase(scriptPhase)
	if err != nil {
		return err
	}

	desc, ok := webkit.DescribeEvent(port.NativeMouseEvent{
		ButtonNumber:     scriptButton,
		LocationInWindow: port.Point{X: scriptX, Y: scriptY},
		ModifierFlags:    scriptMods.flags(),
		ClickCount:       scriptClicks,
	}, phase, nil, headless.Buttons(scriptMask))
	if !ok {
		return fmt.Errorf("button %d is not synthesized: only 3 (back) and 4 (forward) are", scriptButton)
	}

	opts := webkit.ScriptOptions{GuardMissingElement: scriptGuard}
	if app := GetApp(); app != nil && !cmd.Flags().Changed("guard") {
		opts = app.ScriptOptions()
	}

	fmt.Fprintln(cmd.OutOrStdout(), webkit.BuildEventScript(desc, opts))
	return nil
}
