package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/webshim/internal/domain/download"
)

// NewStyledTable creates a themed interactive table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

var downloadHeaders = []string{"ID", "Status", "URL", "Destination", "When"}

// DownloadTableColumns returns columns for the download history table.
func DownloadTableColumns() []table.Column {
	widths := []int{6, 10, 40, 36, 10}
	cols := make([]table.Column, len(downloadHeaders))
	for i, h := range downloadHeaders {
		cols[i] = table.Column{Title: h, Width: widths[i]}
	}
	return cols
}

// DownloadRow converts a record to a table row.
func DownloadRow(r *download.Record) table.Row {
	dest := r.Destination
	if dest == "" {
		dest = "-"
	}
	if r.Error != "" {
		dest = r.Error
	}
	return table.Row{
		strconv.FormatInt(r.ID, 10),
		string(r.Status),
		r.URL,
		dest,
		RelativeTime(r.CreatedAt),
	}
}

// DownloadRows converts records to table rows.
func DownloadRows(records []*download.Record) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = DownloadRow(r)
	}
	return rows
}

// RenderDownloadTable renders records as a static table for non-interactive output.
func (t *Theme) RenderDownloadTable(records []*download.Record) string {
	tbl := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers(downloadHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1)
		})

	for _, r := range records {
		row := DownloadRow(r)
		row[1] = t.StatusText(r.Status)
		tbl.Row(row...)
	}
	return tbl.String()
}
