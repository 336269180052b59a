package settings

// GoogleCredentials is the user-supplied OAuth client configuration for the
// Google Calendar integration.
type GoogleCredentials struct {
	ClientId     string
	ClientSecret string
	RedirectUri  string
}

// IsComplete reports whether the credentials are usable for the OAuth flow.
// The redirect URI always has a default and is not required here.
func (c GoogleCredentials) IsComplete() bool {
	return c.ClientId != "" && c.ClientSecret != ""
}
