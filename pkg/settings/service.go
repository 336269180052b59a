package settings

import (
	"context"
	"fmt"

	"github.com/notecal/notecal/internal/config"
)

const defaultRedirectUri = "http://localhost"

type Service interface {
	GoogleCredentials(ctx context.Context) (GoogleCredentials, error)
	UpdateGoogleCredentials(ctx context.Context, creds GoogleCredentials) (GoogleCredentials, error)
}

type ServiceImpl struct {
	repo     Repository
	fallback config.Google
}

func NewService(repo Repository, fallback config.Google) *ServiceImpl {
	return &ServiceImpl{repo: repo, fallback: fallback}
}

// GoogleCredentials returns the effective credentials: values stored through
// the API win, empty fields fall back to the config file, and the redirect
// URI defaults to http://localhost when neither provides one.
func (s *ServiceImpl) GoogleCredentials(ctx context.Context) (GoogleCredentials, error) {
	creds, err := s.repo.Get(ctx)
	if err != nil {
		return GoogleCredentials{}, fmt.Errorf("failed to load google credentials: %w", err)
	}
	if creds.ClientId == "" {
		creds.ClientId = s.fallback.ClientId
	}
	if creds.ClientSecret == "" {
		creds.ClientSecret = s.fallback.ClientSecret
	}
	if creds.RedirectUri == "" {
		creds.RedirectUri = s.fallback.RedirectUri
	}
	if creds.RedirectUri == "" {
		creds.RedirectUri = defaultRedirectUri
	}
	return creds, nil
}

func (s *ServiceImpl) UpdateGoogleCredentials(ctx context.Context, creds GoogleCredentials) (GoogleCredentials, error) {
	if err := s.repo.Store(ctx, creds); err != nil {
		return GoogleCredentials{}, fmt.Errorf("failed to update google credentials: %w", err)
	}
	return s.GoogleCredentials(ctx)
}
