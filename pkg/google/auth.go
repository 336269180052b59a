package google

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/notecal/notecal/internal/utils"
	"github.com/notecal/notecal/pkg/settings"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// GoogleAuth owns the OAuth2 token lifecycle: cached access token, refresh
// exchange, and the interactive authorization-code flow. Token state is
// persisted through the TokenRepository, credentials come from the settings
// service.
type GoogleAuth struct {
	repo         TokenRepository
	settings     settings.Service
	codeProvider CodeProvider
	clock        utils.Clock
	// endpoint is Google's in production, swapped for a test server in tests.
	endpoint oauth2.Endpoint

	mu        sync.Mutex
	lastState string
}

func NewGoogleAuth(repo TokenRepository, settingsService settings.Service, codeProvider CodeProvider, clock utils.Clock) *GoogleAuth {
	return &GoogleAuth{
		repo:         repo,
		settings:     settingsService,
		codeProvider: codeProvider,
		clock:        clock,
		endpoint:     googleoauth.Endpoint,
	}
}

func (g *GoogleAuth) oauthConfig(creds settings.GoogleCredentials) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     creds.ClientId,
		ClientSecret: creds.ClientSecret,
		Endpoint:     g.endpoint,
		RedirectURL:  creds.RedirectUri,
		Scopes:       []string{calendar.CalendarEventsScope},
	}
}

// GetValidAccessToken returns a usable bearer token, in strict precedence:
// an unexpired cached token (no network), then a refresh-token exchange,
// then the full interactive authorization flow. A rejected refresh is
// terminal (ErrTokenRefreshFailed) and never falls back to re-authorization.
func (g *GoogleAuth) GetValidAccessToken(ctx context.Context) (string, error) {
	creds, err := g.settings.GoogleCredentials(ctx)
	if err != nil {
		return "", err
	}
	if !creds.IsComplete() {
		return "", ErrMissingCredentials
	}

	state, err := g.repo.Load(ctx)
	if err != nil {
		return "", err
	}

	if state.AccessToken != "" && g.clock.Now().Before(state.Expiry()) {
		log.Trace("reusing cached access token")
		return state.AccessToken, nil
	}

	cfg := g.oauthConfig(creds)

	if state.RefreshToken != "" {
		return g.refresh(ctx, cfg, state)
	}

	return g.authorize(ctx, cfg)
}

func (g *GoogleAuth) refresh(ctx context.Context, cfg *oauth2.Config, state TokenState) (string, error) {
	log.Debug("access token expired, refreshing")

	token, err := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: state.RefreshToken}).Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenRefreshFailed, err)
	}
	// Google does not always return a new refresh token; keep the old one.
	if token.RefreshToken == "" {
		token.RefreshToken = state.RefreshToken
	}
	if err := g.storeToken(ctx, token); err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

func (g *GoogleAuth) authorize(ctx context.Context, cfg *oauth2.Config) (string, error) {
	authUrl := g.newAuthorizationUrl(cfg)

	code, err := g.codeProvider.RequestCode(ctx, authUrl)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthorizationFailed, err)
	}
	if code == "" {
		return "", fmt.Errorf("%w: empty authorization code", ErrAuthorizationFailed)
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthorizationFailed, err)
	}
	if err := g.storeToken(ctx, token); err != nil {
		return "", err
	}
	log.Info("Google authorization completed")
	return token.AccessToken, nil
}

// AuthorizationUrl builds a fresh authorization URL for the login endpoint.
func (g *GoogleAuth) AuthorizationUrl(ctx context.Context) (string, error) {
	creds, err := g.settings.GoogleCredentials(ctx)
	if err != nil {
		return "", err
	}
	if !creds.IsComplete() {
		return "", ErrMissingCredentials
	}
	return g.newAuthorizationUrl(g.oauthConfig(creds)), nil
}

func (g *GoogleAuth) newAuthorizationUrl(cfg *oauth2.Config) string {
	stateNonce := uuid.New().String()

	g.mu.Lock()
	g.lastState = stateNonce
	g.mu.Unlock()

	log.Tracef("building Google auth URL with nonce: %s", stateNonce)
	return cfg.AuthCodeURL(stateNonce, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// VerifyState checks a state value returned on the OAuth callback against the
// nonce of the most recently issued authorization URL.
func (g *GoogleAuth) VerifyState(state string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastState != "" && state == g.lastState
}

// ExchangeCode trades an authorization code for a token pair and persists it.
// Used by the auth endpoints when no scan is blocked waiting for the code.
func (g *GoogleAuth) ExchangeCode(ctx context.Context, code string) error {
	creds, err := g.settings.GoogleCredentials(ctx)
	if err != nil {
		return err
	}
	if !creds.IsComplete() {
		return ErrMissingCredentials
	}
	if code == "" {
		return fmt.Errorf("%w: empty authorization code", ErrAuthorizationFailed)
	}

	token, err := g.oauthConfig(creds).Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuthorizationFailed, err)
	}
	if err := g.storeToken(ctx, token); err != nil {
		return err
	}
	log.Info("Google authorization completed")
	return nil
}

// IsAuthenticated reports whether any credential that could yield an access
// token is stored: an unexpired access token or a refresh token.
func (g *GoogleAuth) IsAuthenticated(ctx context.Context) (bool, error) {
	state, err := g.repo.Load(ctx)
	if err != nil {
		return false, err
	}
	if state.RefreshToken != "" {
		return true, nil
	}
	return state.AccessToken != "" && g.clock.Now().Before(state.Expiry()), nil
}

// Logout discards the stored token state.
func (g *GoogleAuth) Logout(ctx context.Context) error {
	return g.repo.Clear(ctx)
}

func (g *GoogleAuth) storeToken(ctx context.Context, token *oauth2.Token) error {
	return g.repo.Store(ctx, TokenState{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiryMs:     token.Expiry.UnixMilli(),
	})
}
