package google

import (
	"context"
	"testing"
	"time"

	"github.com/notecal/notecal/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTokenRepository(t *testing.T) *TokenRepositoryImpl {
	db := test_utils.SetupTestDB(t)
	return NewTokenRepository(db)
}

func TestTokenRepositoryImpl_LoadWithoutStoredState(t *testing.T) {
	repository := setupTokenRepository(t)

	state, err := repository.Load(context.Background())

	require.NoError(t, err)
	assert.True(t, state.IsEmpty())
	assert.Zero(t, state.ExpiryMs)
}

func TestTokenRepositoryImpl_StoreAndLoad(t *testing.T) {
	repository := setupTokenRepository(t)
	ctx := context.Background()

	expiry := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	err := repository.Store(ctx, TokenState{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiryMs:     expiry.UnixMilli(),
	})
	require.NoError(t, err)

	state, err := repository.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-token", state.AccessToken)
	assert.Equal(t, "refresh-token", state.RefreshToken)
	assert.True(t, expiry.Equal(state.Expiry()))
}

func TestTokenRepositoryImpl_StoreOverwrites(t *testing.T) {
	repository := setupTokenRepository(t)
	ctx := context.Background()

	require.NoError(t, repository.Store(ctx, TokenState{
		AccessToken:  "old-access-token",
		RefreshToken: "old-refresh-token",
		ExpiryMs:     1000,
	}))
	require.NoError(t, repository.Store(ctx, TokenState{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
		ExpiryMs:     2000,
	}))

	state, err := repository.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-access-token", state.AccessToken)
	assert.Equal(t, "new-refresh-token", state.RefreshToken)
	assert.EqualValues(t, 2000, state.ExpiryMs)
}

func TestTokenRepositoryImpl_Clear(t *testing.T) {
	repository := setupTokenRepository(t)
	ctx := context.Background()

	require.NoError(t, repository.Store(ctx, TokenState{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}))
	require.NoError(t, repository.Clear(ctx))

	state, err := repository.Load(ctx)
	require.NoError(t, err)
	assert.True(t, state.IsEmpty())
}

func TestTokenRepositoryImpl_ClearWithoutStoredState(t *testing.T) {
	repository := setupTokenRepository(t)

	assert.NoError(t, repository.Clear(context.Background()))
}
