package notes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRecentEvents(t *testing.T) {
	repo := NewRepositoryStub()
	createdAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	_, err := repo.StoreProcessedEvent(context.Background(), ProcessedEvent{
		NotePath:      "daily.md",
		Summary:       "Team Sync",
		StartTime:     "2026-02-01T10:00:00",
		EndTime:       "2026-02-01T10:30:00",
		GoogleEventId: "gevent-abc",
		CreatedAt:     createdAt,
	})
	require.NoError(t, err)
	handler := NewHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	handler.GetRecentEvents(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var dtos []ProcessedEventDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dtos))
	require.Len(t, dtos, 1)
	assert.Equal(t, "Team Sync", dtos[0].Summary)
	assert.Equal(t, "daily.md", dtos[0].NotePath)
	assert.Equal(t, "gevent-abc", dtos[0].GoogleEventId)
	assert.Equal(t, createdAt.Format(time.RFC3339), dtos[0].CreatedAt)
}

func TestGetRecentEvents_Empty(t *testing.T) {
	handler := NewHandler(NewRepositoryStub())

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	handler.GetRecentEvents(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetRecentEvents_InvalidLimit(t *testing.T) {
	handler := NewHandler(NewRepositoryStub())

	for _, limit := range []string{"abc", "0", "-5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/events?limit="+limit, nil)
		rec := httptest.NewRecorder()
		handler.GetRecentEvents(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}
