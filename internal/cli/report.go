package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/webshim/internal/cli/styles"
	"github.com/bnema/webshim/internal/domain/download"
)

// RenderDownloadReport formats a download report for the terminal.
func RenderDownloadReport(t *styles.Theme, r *DownloadReport) string {
	lines := []string{t.Title.Render("Download")}

	if r.DecideCalled {
		lines = append(lines, field(t, "proposed", r.Proposed))
	} else {
		lines = append(lines, field(t, "proposed", t.WarningStyle.Render("host not asked (view gone)")))
	}

	switch {
	case !r.Result.Resolved:
		lines = append(lines, field(t, "decision", t.ErrorStyle.Render("unresolved")))
	case r.Result.Destination.Accepted():
		lines = append(lines, field(t, "decision", t.SuccessStyle.Render("accepted")))
		lines = append(lines, field(t, "destination", r.Result.Destination.FileURL()))
	default:
		lines = append(lines, field(t, "decision", t.WarningStyle.Render("rejected")))
	}

	for _, ev := range r.Events {
		line := t.StatusBadge(download.Status(ev.Type.String()))
		if ev.Error != nil {
			line += " " + t.ErrorStyle.Render(ev.Error.Error())
		}
		lines = append(lines, field(t, "event", line))
	}

	if len(r.Completions) == 0 {
		lines = append(lines, field(t, "completion", t.Subtle.Render("none")))
	}
	for _, c := range r.Completions {
		final := "nil"
		if c.FinalPath != nil {
			final = *c.FinalPath
		}
		lines = append(lines, field(t, "completion", fmt.Sprintf("success=%t final=%s", c.Success, final)))
	}
	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderMouseReport formats a mouse report for the terminal.
func RenderMouseReport(t *styles.Theme, r *MouseReport, showScript bool) string {
	lines := []string{t.Title.Render("Mouse")}

	if r.Script == "" {
		lines = append(lines, field(t, "handled by", "default handler"))
		return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	if r.ScriptErr != nil {
		lines = append(lines, field(t, "script", t.ErrorStyle.Render(r.ScriptErr.Error())))
	}
	for _, ev := range r.Dispatched {
		mods := modifierList(ev.CtrlKey, ev.AltKey, ev.ShiftKey, ev.MetaKey)
		desc := fmt.Sprintf("%s button=%d at (%d, %d) on #%s", ev.Type, ev.Button, ev.ClientX, ev.ClientY, ev.Target)
		if mods != "" {
			desc += " " + t.MutedBadge(mods)
		}
		if ev.DefaultPrevented {
			desc += " " + t.WarningStyle.Render("prevented")
		}
		lines = append(lines, field(t, "dispatched", desc))
	}
	if len(r.Navigations) == 0 {
		lines = append(lines, field(t, "navigation", t.Subtle.Render("none")))
	}
	for _, nav := range r.Navigations {
		lines = append(lines, field(t, "navigation", nav))
	}
	lines = append(lines, field(t, "current", r.CurrentURL))

	if showScript {
		lines = append(lines, "", t.Code.Render(r.Script))
	}
	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func field(t *styles.Theme, name, value string) string {
	return t.Subtle.Render(fmt.Sprintf("%-12s", name)) + value
}

func modifierList(ctrl, alt, shift, meta bool) string {
	var mods []string
	for _, m := range []struct {
		on   bool
		name string
	}{{ctrl, "ctrl"}, {alt, "alt"}, {shift, "shift"}, {meta, "meta"}} {
		if m.on {
			mods = append(mods, m.name)
		}
	}
	return strings.Join(mods, "+")
}
