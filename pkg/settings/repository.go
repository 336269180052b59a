package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Repository interface {
	Get(ctx context.Context) (GoogleCredentials, error)
	Store(ctx context.Context, creds GoogleCredentials) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

// Get returns the stored credentials. A missing row is not an error; it means
// nothing was configured yet and zero values are returned.
func (r *RepositoryImpl) Get(ctx context.Context) (GoogleCredentials, error) {
	var creds GoogleCredentials
	err := r.db.QueryRowContext(ctx,
		"SELECT client_id, client_secret, redirect_uri FROM google_settings WHERE id = 1").
		Scan(&creds.ClientId, &creds.ClientSecret, &creds.RedirectUri)
	if errors.Is(err, sql.ErrNoRows) {
		return GoogleCredentials{}, nil
	} else if err != nil {
		return GoogleCredentials{}, fmt.Errorf("failed to read google settings: %w", err)
	}
	return creds, nil
}

func (r *RepositoryImpl) Store(ctx context.Context, creds GoogleCredentials) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO google_settings (id, client_id, client_secret, redirect_uri) VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			client_id = excluded.client_id,
			client_secret = excluded.client_secret,
			redirect_uri = excluded.redirect_uri`,
		creds.ClientId, creds.ClientSecret, creds.RedirectUri)
	if err != nil {
		return fmt.Errorf("failed to store google settings: %w", err)
	}
	return nil
}
