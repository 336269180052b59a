package app

import (
	"github.com/gorilla/mux"
	"github.com/notecal/notecal/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Settings
	r.HandleFunc("/api/settings/google", deps.SettingsHandler.GetGoogleSettings).Methods("GET")
	r.HandleFunc("/api/settings/google", deps.SettingsHandler.UpdateGoogleSettings).Methods("PUT")

	// Google integration
	r.HandleFunc("/api/integrations/google/auth/login", deps.AuthHandler.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth/callback", deps.AuthHandler.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth/code", deps.AuthHandler.SubmitCode).Methods("POST")
	r.HandleFunc("/api/integrations/google/auth/logout", deps.AuthHandler.OAuthLogout).Methods("DELETE")
	r.HandleFunc("/api/integrations/google/auth", deps.AuthHandler.Status).Methods("GET")

	// Scans
	r.HandleFunc("/api/scan", deps.ScanHandler.ScanAll).Methods("POST")
	r.HandleFunc("/api/scan/note", deps.ScanHandler.ScanNote).Methods("POST")

	// Processed events
	r.HandleFunc("/api/events", deps.EventsHandler.GetRecentEvents).Methods("GET")

	// Notifications
	r.HandleFunc("/api/notifications", deps.NotificationHandler.GetNotifications).Methods("GET")
}
