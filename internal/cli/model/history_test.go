package model

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webshim/internal/cli/styles"
	"github.com/bnema/webshim/internal/domain/download"
)

type fakeHistory struct {
	records  []*download.Record
	listErr  error
	cleared  bool
	gotLimit int
}

func (f *fakeHistory) ListRecent(_ context.Context, limit int) ([]*download.Record, error) {
	f.gotLimit = limit
	return f.records, f.listErr
}

func (f *fakeHistory) Clear(context.Context) error {
	f.cleared = true
	return nil
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T, src *fakeHistory) HistoryModel {
	t.Helper()
	m := NewHistoryModel(context.Background(), styles.NewTheme(), src, 20)
	msg := m.Init()()
	next, _ := m.Update(msg)
	return next.(HistoryModel)
}

func TestHistoryModel_LoadsRecords(t *testing.T) {
	src := &fakeHistory{records: []*download.Record{
		{ID: 7, URL: "https://example.com/a.zip", Destination: "/tmp/a.zip", Status: download.StatusFinished, CreatedAt: time.Now()},
	}}
	m := loaded(t, src)

	assert.Equal(t, 20, src.gotLimit)
	require.Len(t, m.Records(), 1)
	view := m.View()
	assert.Contains(t, view, "1 records")
	assert.Contains(t, view, "https://example.com/a.zip")
}

func TestHistoryModel_Empty(t *testing.T) {
	m := loaded(t, &fakeHistory{})
	assert.Contains(t, m.View(), "No downloads recorded")
}

func TestHistoryModel_LoadError(t *testing.T) {
	m := loaded(t, &fakeHistory{listErr: errors.New("database is locked")})

	assert.EqualError(t, m.Error(), "database is locked")
	assert.Contains(t, m.View(), "database is locked")
}

func TestHistoryModel_ClearNeedsConfirmation(t *testing.T) {
	src := &fakeHistory{records: []*download.Record{{ID: 1, Status: download.StatusStarted}}}
	m := loaded(t, src)

	next, cmd := m.Update(key("d"))
	m = next.(HistoryModel)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Clear all download history?")

	next, cmd = m.Update(key("n"))
	m = next.(HistoryModel)
	assert.Nil(t, cmd)
	assert.False(t, src.cleared)

	next, _ = m.Update(key("d"))
	m = next.(HistoryModel)
	next, cmd = m.Update(key("y"))
	m = next.(HistoryModel)
	require.NotNil(t, cmd)

	next, _ = m.Update(cmd())
	m = next.(HistoryModel)
	assert.True(t, src.cleared)
	assert.Empty(t, m.Records())
}

func TestHistoryModel_Quit(t *testing.T) {
	m := loaded(t, &fakeHistory{})
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
