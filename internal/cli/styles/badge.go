package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/webshim/internal/domain/download"
)

// StatusBadge renders a download status badge.
func (t *Theme) StatusBadge(status download.Status) string {
	switch status {
	case download.StatusFinished:
		return t.Badge.Render(string(status))
	case download.StatusFailed:
		return t.colorBadge(string(status), t.Error)
	case download.StatusCancelled:
		return t.colorBadge(string(status), t.Warning)
	default:
		return t.BadgeMuted.Render(string(status))
	}
}

// StatusText renders a status as colored text, for table cells.
func (t *Theme) StatusText(status download.Status) string {
	switch status {
	case download.StatusFinished:
		return t.SuccessStyle.Render(string(status))
	case download.StatusFailed:
		return t.ErrorStyle.Render(string(status))
	case download.StatusCancelled:
		return t.WarningStyle.Render(string(status))
	default:
		return t.Subtle.Render(string(status))
	}
}

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

func (t *Theme) colorBadge(text string, bg lipgloss.Color) string {
	return lipgloss.NewStyle().
		Foreground(t.Background).
		Background(bg).
		Padding(0, 1).
		Render(text)
}

// RelativeTime formats tm relative to now.
func RelativeTime(tm time.Time) string {
	return relativeTime(tm, time.Now())
}

func relativeTime(tm, now time.Time) string {
	diff := now.Sub(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff < 365*24*time.Hour:
		return tm.Format("Jan 2")
	default:
		return tm.Format("Jan 2 2006")
	}
}
