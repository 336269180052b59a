package google

import "errors"

var (
	// ErrMissingCredentials is returned when no OAuth client id/secret is
	// configured, neither through the settings API nor the config file.
	ErrMissingCredentials = errors.New("google client credentials are not configured")

	// ErrAuthorizationFailed is returned when the interactive authorization
	// flow was abandoned or the provider rejected the authorization code.
	ErrAuthorizationFailed = errors.New("google authorization failed")

	// ErrTokenRefreshFailed is returned when a refresh token exchange is
	// rejected. There is no automatic fallback to re-authorization; the user
	// has to authorize again through the auth endpoints.
	ErrTokenRefreshFailed = errors.New("google token refresh failed")
)
