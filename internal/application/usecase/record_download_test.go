package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/webshim/internal/application/port"
	"github.com/bnema/webshim/internal/application/usecase"
	"github.com/bnema/webshim/internal/domain/download"
	repomocks "github.com/bnema/webshim/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordDownloadUseCase_OnDownloadEvent(t *testing.T) {
	tests := []struct {
		name       string
		event      port.DownloadEvent
		wantStatus download.Status
		wantError  string
	}{
		{
			name:       "started",
			event:      port.DownloadEvent{Type: port.DownloadEventStarted, URL: "https://e.com/a", Destination: "/dl/a"},
			wantStatus: download.StatusStarted,
		},
		{
			name:       "finished",
			event:      port.DownloadEvent{Type: port.DownloadEventFinished, URL: "https://e.com/a"},
			wantStatus: download.StatusFinished,
		},
		{
			name:       "cancelled",
			event:      port.DownloadEvent{Type: port.DownloadEventCancelled, URL: "https://e.com/a"},
			wantStatus: download.StatusCancelled,
		},
		{
			name:       "failed keeps error text",
			event:      port.DownloadEvent{Type: port.DownloadEventFailed, URL: "https://e.com/a", Error: errors.New("network lost")},
			wantStatus: download.StatusFailed,
			wantError:  "network lost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repomocks.NewMockDownloadRepository(t)
			repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*download.Record")).
				Run(func(_ context.Context, r *download.Record) {
					assert.Equal(t, tt.event.URL, r.URL)
					assert.Equal(t, tt.event.Destination, r.Destination)
					assert.Equal(t, tt.wantStatus, r.Status)
					assert.Equal(t, tt.wantError, r.Error)
					assert.False(t, r.CreatedAt.IsZero())
				}).
				Return(nil)

			usecase.NewRecordDownloadUseCase(repo).OnDownloadEvent(testContext(), tt.event)
		})
	}
}

func TestRecordDownloadUseCase_SaveErrorIsSwallowed(t *testing.T) {
	repo := repomocks.NewMockDownloadRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("db down"))

	assert.NotPanics(t, func() {
		usecase.NewRecordDownloadUseCase(repo).OnDownloadEvent(testContext(), port.DownloadEvent{Type: port.DownloadEventFinished})
	})
}

func TestRecordDownloadUseCase_ListRecent_DefaultLimit(t *testing.T) {
	repo := repomocks.NewMockDownloadRepository(t)
	want := []*download.Record{{ID: 1, URL: "https://e.com"}}
	repo.EXPECT().GetRecent(mock.Anything, 50).Return(want, nil)

	got, err := usecase.NewRecordDownloadUseCase(repo).ListRecent(testContext(), 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRecordDownloadUseCase_Clear(t *testing.T) {
	repo := repomocks.NewMockDownloadRepository(t)
	repo.EXPECT().DeleteAll(mock.Anything).Return(nil)

	require.NoError(t, usecase.NewRecordDownloadUseCase(repo).Clear(testContext()))
}
