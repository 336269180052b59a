package notification

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/notecal/notecal/internal/event_bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNotifications(t *testing.T) {
	service := NewService(event_bus.NewEventBus())
	service.Add(LevelInfo, "first")
	service.Add(LevelError, "second")
	handler := NewHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	rec := httptest.NewRecorder()
	handler.GetNotifications(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var dtos []NoticeDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dtos))
	require.Len(t, dtos, 2)
	assert.Equal(t, "second", dtos[0].Message)
	assert.Equal(t, "error", dtos[0].Level)
	assert.Equal(t, "first", dtos[1].Message)
}

func TestGetNotifications_Limit(t *testing.T) {
	service := NewService(event_bus.NewEventBus())
	service.Add(LevelInfo, "first")
	service.Add(LevelInfo, "second")
	handler := NewHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications?limit=1", nil)
	rec := httptest.NewRecorder()
	handler.GetNotifications(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var dtos []NoticeDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dtos))
	require.Len(t, dtos, 1)
	assert.Equal(t, "second", dtos[0].Message)
}

func TestGetNotifications_InvalidLimit(t *testing.T) {
	handler := NewHandler(NewService(event_bus.NewEventBus()))

	req := httptest.NewRequest(http.MethodGet, "/api/notifications?limit=-1", nil)
	rec := httptest.NewRecorder()
	handler.GetNotifications(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
