package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/notecal/notecal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleCredentials_StoredValuesWin(t *testing.T) {
	repo := NewRepositoryStub()
	require.NoError(t, repo.Store(context.Background(), GoogleCredentials{
		ClientId:     "stored-id",
		ClientSecret: "stored-secret",
		RedirectUri:  "http://localhost:9999",
	}))
	service := NewService(repo, config.Google{
		ClientId:     "config-id",
		ClientSecret: "config-secret",
		RedirectUri:  "http://config",
	})

	creds, err := service.GoogleCredentials(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "stored-id", creds.ClientId)
	assert.Equal(t, "stored-secret", creds.ClientSecret)
	assert.Equal(t, "http://localhost:9999", creds.RedirectUri)
}

func TestGoogleCredentials_FallsBackToConfig(t *testing.T) {
	service := NewService(NewRepositoryStub(), config.Google{
		ClientId:     "config-id",
		ClientSecret: "config-secret",
	})

	creds, err := service.GoogleCredentials(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "config-id", creds.ClientId)
	assert.Equal(t, "config-secret", creds.ClientSecret)
	assert.Equal(t, defaultRedirectUri, creds.RedirectUri)
	assert.True(t, creds.IsComplete())
}

func TestGoogleCredentials_PartialStoreMergesWithConfig(t *testing.T) {
	repo := NewRepositoryStub()
	require.NoError(t, repo.Store(context.Background(), GoogleCredentials{ClientId: "stored-id"}))
	service := NewService(repo, config.Google{
		ClientId:     "config-id",
		ClientSecret: "config-secret",
	})

	creds, err := service.GoogleCredentials(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "stored-id", creds.ClientId)
	assert.Equal(t, "config-secret", creds.ClientSecret)
}

func TestGoogleCredentials_IncompleteWithoutSecret(t *testing.T) {
	service := NewService(NewRepositoryStub(), config.Google{ClientId: "config-id"})

	creds, err := service.GoogleCredentials(context.Background())

	require.NoError(t, err)
	assert.False(t, creds.IsComplete())
}

func TestGoogleCredentials_RepositoryError(t *testing.T) {
	repo := NewRepositoryStub()
	repo.SetError(errors.New("db down"))
	service := NewService(repo, config.Google{})

	_, err := service.GoogleCredentials(context.Background())

	assert.Error(t, err)
}

func TestUpdateGoogleCredentials_ReturnsEffectiveValues(t *testing.T) {
	service := NewService(NewRepositoryStub(), config.Google{})

	creds, err := service.UpdateGoogleCredentials(context.Background(), GoogleCredentials{
		ClientId:     "new-id",
		ClientSecret: "new-secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-id", creds.ClientId)
	assert.Equal(t, "new-secret", creds.ClientSecret)
	assert.Equal(t, defaultRedirectUri, creds.RedirectUri)
}
