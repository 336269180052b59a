package notes

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

const defaultEventsLimit = 50

type ProcessedEventDTO struct {
	Uid           string `json:"uid"`
	NotePath      string `json:"notePath"`
	Summary       string `json:"summary"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	GoogleEventId string `json:"googleEventId"`
	CreatedAt     string `json:"createdAt"`
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// GetRecentEvents godoc
// @Summary List recently created calendar events
// @Produce json
// @Param limit query int false "Maximum number of entries (default 50)"
// @Success 200 {array} ProcessedEventDTO
// @Router /api/events [get]
func (h *Handler) GetRecentEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit := defaultEventsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	events, err := h.repo.GetRecent(r.Context(), limit)
	if err != nil {
		log.Errorf("failed to list processed events: %v", err)
		http.Error(w, "failed to list processed events", http.StatusInternalServerError)
		return
	}

	dtos := make([]ProcessedEventDTO, 0, len(events))
	for _, event := range events {
		dtos = append(dtos, toDTO(event))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toDTO(event ProcessedEvent) ProcessedEventDTO {
	return ProcessedEventDTO{
		Uid:           event.Uid.String(),
		NotePath:      event.NotePath,
		Summary:       event.Summary,
		StartTime:     event.StartTime,
		EndTime:       event.EndTime,
		GoogleEventId: event.GoogleEventId,
		CreatedAt:     event.CreatedAt.Format(time.RFC3339),
	}
}
