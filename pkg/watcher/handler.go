package watcher

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/notecal/notecal/internal/rest"
	"github.com/notecal/notecal/pkg/notes"
	log "github.com/sirupsen/logrus"
)

type scanNoteRequest struct {
	Path string `json:"path"`
}

// Handler exposes manual scan triggers.
type Handler struct {
	dir       string
	processor *notes.Processor
}

func NewHandler(dir string, processor *notes.Processor) *Handler {
	return &Handler{dir: dir, processor: processor}
}

// ScanAll godoc
// @Summary Scan every Markdown note in the notes directory
// @Success 204 {string} string "No Content"
// @Router /api/scan [post]
func (h *Handler) ScanAll(w http.ResponseWriter, r *http.Request) {
	if err := h.processor.ProcessDirectory(r.Context(), h.dir); err != nil {
		log.Errorf("manual scan failed: %v", err)
		http.Error(w, "scan failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ScanNote godoc
// @Summary Scan a single Markdown note
// @Accept json
// @Param note body scanNoteRequest true "Note path, inside the notes directory"
// @Success 204 {string} string "No Content"
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/scan/note [post]
func (h *Handler) ScanNote(w http.ResponseWriter, r *http.Request) {
	var req scanNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body format")
		return
	}
	if req.Path == "" {
		writeBadRequest(w, "Note path is required")
		return
	}

	path, ok := h.resolve(req.Path)
	if !ok {
		writeBadRequest(w, "Note path must point to a Markdown file inside the notes directory")
		return
	}

	if err := h.processor.ProcessFile(r.Context(), path); err != nil {
		log.Errorf("manual scan of %s failed: %v", path, err)
		http.Error(w, "scan failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// resolve joins a relative path with the notes directory and rejects paths
// escaping it or pointing at non-Markdown files.
func (h *Handler) resolve(path string) (string, bool) {
	if !notes.IsMarkdown(path) {
		return "", false
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(h.dir, path)
	}

	absDir, err := filepath.Abs(h.dir)
	if err != nil {
		return "", false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return absPath, true
}

func writeBadRequest(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: message}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
