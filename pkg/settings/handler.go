package settings

import (
	"encoding/json"
	"net/http"

	"github.com/notecal/notecal/internal/rest"
	log "github.com/sirupsen/logrus"
)

type GoogleCredentialsDTO struct {
	ClientId     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	RedirectUri  string `json:"redirectUri"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetGoogleSettings godoc
// @Summary Get Google OAuth client settings
// @Produce json
// @Success 200 {object} GoogleCredentialsDTO
// @Router /api/settings/google [get]
func (h *Handler) GetGoogleSettings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	creds, err := h.service.GoogleCredentials(r.Context())
	if err != nil {
		log.Errorf("failed to get google settings: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Failed to load Google settings",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(credsToDTO(creds)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// UpdateGoogleSettings godoc
// @Summary Update Google OAuth client settings
// @Accept json
// @Produce json
// @Param settings body GoogleCredentialsDTO true "Settings"
// @Success 200 {object} GoogleCredentialsDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/settings/google [put]
func (h *Handler) UpdateGoogleSettings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto GoogleCredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	creds, err := h.service.UpdateGoogleCredentials(r.Context(), dtoToCreds(dto))
	if err != nil {
		log.Errorf("failed to update google settings: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Failed to store Google settings",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(credsToDTO(creds)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func credsToDTO(c GoogleCredentials) GoogleCredentialsDTO {
	return GoogleCredentialsDTO{
		ClientId:     c.ClientId,
		ClientSecret: c.ClientSecret,
		RedirectUri:  c.RedirectUri,
	}
}

func dtoToCreds(dto GoogleCredentialsDTO) GoogleCredentials {
	return GoogleCredentials{
		ClientId:     dto.ClientId,
		ClientSecret: dto.ClientSecret,
		RedirectUri:  dto.RedirectUri,
	}
}
