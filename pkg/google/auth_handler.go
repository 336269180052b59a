package google

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/notecal/notecal/internal/rest"
	log "github.com/sirupsen/logrus"
)

type googleAuthRedirect struct {
	RedirectUrl string `json:"redirectUrl"`
}

type googleAuthStatus struct {
	Authenticated        bool `json:"authenticated"`
	AuthorizationPending bool `json:"authorizationPending"`
}

type authCodeRequest struct {
	Code string `json:"code"`
}

type AuthHandler struct {
	auth    *GoogleAuth
	pending *PendingAuthorization
}

func NewAuthHandler(auth *GoogleAuth, pending *PendingAuthorization) *AuthHandler {
	return &AuthHandler{auth: auth, pending: pending}
}

// OAuthLogin godoc
// @Summary Start the Google authorization flow
// @Produce json
// @Success 200 {object} googleAuthRedirect
// @Failure 400 {object} rest.ErrorResponse "Credentials not configured"
// @Router /api/integrations/google/auth/login [get]
func (h *AuthHandler) OAuthLogin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	authUrl, err := h.auth.AuthorizationUrl(r.Context())
	if err != nil {
		if errors.Is(err, ErrMissingCredentials) {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "Google client credentials are not configured",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		log.Errorf("failed to build Google auth URL: %v", err)
		http.Error(w, "failed to build Google auth URL", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(googleAuthRedirect{RedirectUrl: authUrl}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// OAuthCallback receives the redirect from Google's consent screen. With the
// default http://localhost redirect URI the code usually arrives pasted
// through SubmitCode instead; this endpoint exists for redirect URIs pointing
// back at this server.
func (h *AuthHandler) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.FormValue("code")
	state := r.FormValue("state")

	if code == "" {
		http.Error(w, "missing authorization code", http.StatusBadRequest)
		return
	}
	if state != "" && !h.auth.VerifyState(state) {
		log.Warnf("Google auth callback with unknown state: %s", state)
		http.Error(w, "oauth state mismatch", http.StatusBadRequest)
		return
	}

	if err := h.handleCode(r, code); err != nil {
		log.Errorf("failed to complete Google authorization: %v", err)
		http.Error(w, "authorization failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Authorization complete. You can close this window."))
}

// SubmitCode godoc
// @Summary Submit a pasted authorization code
// @Accept json
// @Success 202 {string} string "Accepted"
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/integrations/google/auth/code [post]
func (h *AuthHandler) SubmitCode(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req authCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	if req.Code == "" {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Authorization code is required",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := h.handleCode(r, req.Code); err != nil {
		log.Errorf("failed to complete Google authorization: %v", err)
		w.WriteHeader(http.StatusBadGateway)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Authorization failed",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// handleCode hands the code to a scan blocked on authorization if there is
// one; otherwise it exchanges and persists the token pair directly.
func (h *AuthHandler) handleCode(r *http.Request, code string) error {
	if h.pending.Submit(code) {
		log.Debug("authorization code delivered to waiting scan")
		return nil
	}
	return h.auth.ExchangeCode(r.Context(), code)
}

// Status godoc
// @Summary Report Google authorization status
// @Produce json
// @Success 200 {object} googleAuthStatus
// @Router /api/integrations/google/auth [get]
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	authenticated, err := h.auth.IsAuthenticated(r.Context())
	if err != nil {
		log.Errorf("failed to read Google auth status: %v", err)
		http.Error(w, "failed to read auth status", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	encodeErr := json.NewEncoder(w).Encode(googleAuthStatus{
		Authenticated:        authenticated,
		AuthorizationPending: h.pending.Waiting(),
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

// OAuthLogout godoc
// @Summary Discard the stored Google token state
// @Success 204 {string} string "No Content"
// @Router /api/integrations/google/auth/logout [delete]
func (h *AuthHandler) OAuthLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		log.Errorf("failed to clear Google token state: %v", err)
		http.Error(w, "failed to clear token state", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
