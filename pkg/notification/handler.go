package notification

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

const defaultNoticesLimit = 20

type NoticeDTO struct {
	Id        string `json:"id"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetNotifications godoc
// @Summary List recent notifications, newest first
// @Produce json
// @Param limit query int false "Maximum number of entries (default 20)"
// @Success 200 {array} NoticeDTO
// @Router /api/notifications [get]
func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit := defaultNoticesLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	notices := h.service.Recent(limit)
	dtos := make([]NoticeDTO, 0, len(notices))
	for _, notice := range notices {
		dtos = append(dtos, NoticeDTO{
			Id:        notice.Id.String(),
			Level:     string(notice.Level),
			Message:   notice.Message,
			CreatedAt: notice.CreatedAt.Format(time.RFC3339),
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
