// Package model holds the Bubble Tea models of the webshim CLI.
package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/webshim/internal/cli/styles"
	"github.com/bnema/webshim/internal/domain/download"
)

// HistorySource loads and clears download history.
type HistorySource interface {
	ListRecent(ctx context.Context, limit int) ([]*download.Record, error)
	Clear(ctx context.Context) error
}

// HistoryModel is an interactive download history table.
// "d" clears history after a confirmation, "r" reloads.
type HistoryModel struct {
	ctx    context.Context
	source HistorySource
	limit  int
	theme  *styles.Theme

	records    []*download.Record
	table      table.Model
	loading    bool
	confirming bool
	err        error
	width      int
	height     int
}

// NewHistoryModel creates a history model showing up to limit records.
func NewHistoryModel(ctx context.Context, theme *styles.Theme, source HistorySource, limit int) HistoryModel {
	m := HistoryModel{
		ctx:     ctx,
		source:  source,
		limit:   limit,
		theme:   theme,
		loading: true,
		width:   110,
		height:  24,
	}
	m.rebuildTable()
	return m
}

type historyLoadedMsg struct {
	records []*download.Record
	err     error
}

type historyClearedMsg struct {
	err error
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return m.load
}

func (m HistoryModel) load() tea.Msg {
	records, err := m.source.ListRecent(m.ctx, m.limit)
	return historyLoadedMsg{records: records, err: err}
}

func (m HistoryModel) clear() tea.Msg {
	return historyClearedMsg{err: m.source.Clear(m.ctx)}
}

// Update implements tea.Model.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTable()

	case tea.KeyMsg:
		if m.confirming {
			m.confirming = false
			if msg.String() == "y" {
				return m, m.clear
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "d":
			if len(m.records) > 0 {
				m.confirming = true
			}
			return m, nil
		case "r":
			m.loading = true
			return m, m.load
		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case historyLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.records = msg.records
		}
		m.rebuildTable()

	case historyClearedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.records = nil
		m.rebuildTable()
	}

	return m, nil
}

func (m *HistoryModel) rebuildTable() {
	height := len(m.records)
	if height > m.height-8 {
		height = m.height - 8
	}
	if height < 3 {
		height = 3
	}
	m.table = styles.NewStyledTable(m.theme, styles.DownloadTableColumns(), styles.DownloadRows(m.records), m.width-4, height)
}

// Records returns the loaded records.
func (m HistoryModel) Records() []*download.Record {
	return m.records
}

// Error returns the last load or clear error.
func (m HistoryModel) Error() error {
	return m.err
}

// View implements tea.Model.
func (m HistoryModel) View() string {
	t := m.theme

	if m.loading {
		return t.Box.Render(t.Subtle.Render("Loading downloads..."))
	}
	if m.err != nil {
		return t.Box.Render(t.ErrorStyle.Render("Error: " + m.err.Error()))
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		t.Title.Render("Downloads"),
		" ",
		t.MutedBadge(fmt.Sprintf("%d records", len(m.records))),
	)

	var body string
	if len(m.records) == 0 {
		body = t.Subtle.Render("No downloads recorded")
	} else {
		body = m.table.View()
	}

	help := t.HelpKey.Render("r") + t.HelpDesc.Render(" reload  ") +
		t.HelpKey.Render("d") + t.HelpDesc.Render(" clear  ") +
		t.HelpKey.Render("q") + t.HelpDesc.Render(" quit")
	if m.confirming {
		help = t.WarningStyle.Render("Clear all download history? (y/N)")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", help)
}
