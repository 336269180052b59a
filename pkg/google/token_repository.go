package google

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// TokenState is the persisted OAuth token pair. Expiry is kept in epoch
// milliseconds; a zero value means "not set".
type TokenState struct {
	AccessToken  string
	RefreshToken string
	ExpiryMs     int64
}

func (t TokenState) Expiry() time.Time {
	return time.UnixMilli(t.ExpiryMs)
}

func (t TokenState) IsEmpty() bool {
	return t.AccessToken == "" && t.RefreshToken == ""
}

type TokenRepository interface {
	Load(ctx context.Context) (TokenState, error)
	Store(ctx context.Context, state TokenState) error
	Clear(ctx context.Context) error
}

type TokenRepositoryImpl struct {
	db *sql.DB
}

func NewTokenRepository(db *sql.DB) *TokenRepositoryImpl {
	return &TokenRepositoryImpl{db: db}
}

// Load returns the stored token state. A missing row means the user never
// authorized and yields a zero state, not an error.
func (r *TokenRepositoryImpl) Load(ctx context.Context) (TokenState, error) {
	var state TokenState
	err := r.db.QueryRowContext(ctx,
		"SELECT access_token, refresh_token, expiry_ms FROM google_auth WHERE id = 1").
		Scan(&state.AccessToken, &state.RefreshToken, &state.ExpiryMs)
	if errors.Is(err, sql.ErrNoRows) {
		return TokenState{}, nil
	} else if err != nil {
		return TokenState{}, fmt.Errorf("failed to load google token state: %w", err)
	}
	return state, nil
}

func (r *TokenRepositoryImpl) Store(ctx context.Context, state TokenState) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO google_auth (id, access_token, refresh_token, expiry_ms) VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			expiry_ms = excluded.expiry_ms`,
		state.AccessToken, state.RefreshToken, state.ExpiryMs)
	if err != nil {
		return fmt.Errorf("failed to store google token state: %w", err)
	}
	return nil
}

func (r *TokenRepositoryImpl) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM google_auth WHERE id = 1")
	if err != nil {
		return fmt.Errorf("failed to clear google token state: %w", err)
	}
	return nil
}
