package settings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/notecal/notecal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_GetGoogleSettings(t *testing.T) {
	repo := NewRepositoryStub()
	require.NoError(t, repo.Store(context.Background(), GoogleCredentials{
		ClientId:     "client-id",
		ClientSecret: "client-secret",
		RedirectUri:  "http://localhost",
	}))
	handler := NewHandler(NewService(repo, config.Google{}))

	req := httptest.NewRequest(http.MethodGet, "/api/settings/google", nil)
	rec := httptest.NewRecorder()
	handler.GetGoogleSettings(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var dto GoogleCredentialsDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dto))
	assert.Equal(t, "client-id", dto.ClientId)
	assert.Equal(t, "client-secret", dto.ClientSecret)
	assert.Equal(t, "http://localhost", dto.RedirectUri)
}

func TestHandler_UpdateGoogleSettings(t *testing.T) {
	repo := NewRepositoryStub()
	handler := NewHandler(NewService(repo, config.Google{}))

	body := `{"clientId": "new-id", "clientSecret": "new-secret", "redirectUri": "http://localhost:8080"}`
	req := httptest.NewRequest(http.MethodPut, "/api/settings/google", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.UpdateGoogleSettings(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var dto GoogleCredentialsDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dto))
	assert.Equal(t, "new-id", dto.ClientId)

	stored, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-id", stored.ClientId)
	assert.Equal(t, "new-secret", stored.ClientSecret)
	assert.Equal(t, "http://localhost:8080", stored.RedirectUri)
}

func TestHandler_UpdateGoogleSettings_InvalidBody(t *testing.T) {
	handler := NewHandler(NewService(NewRepositoryStub(), config.Google{}))

	req := httptest.NewRequest(http.MethodPut, "/api/settings/google", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	handler.UpdateGoogleSettings(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
