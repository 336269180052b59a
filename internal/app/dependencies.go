package app

import (
	"database/sql"

	"github.com/notecal/notecal/internal/config"
	"github.com/notecal/notecal/internal/event_bus"
	"github.com/notecal/notecal/internal/utils"
	"github.com/notecal/notecal/pkg/google"
	"github.com/notecal/notecal/pkg/notes"
	"github.com/notecal/notecal/pkg/notification"
	"github.com/notecal/notecal/pkg/settings"
	"github.com/notecal/notecal/pkg/watcher"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus *event_bus.EventBus

	SettingsRepo    settings.Repository
	SettingsService settings.Service
	SettingsHandler *settings.Handler

	TokenRepo            google.TokenRepository
	PendingAuthorization *google.PendingAuthorization
	GoogleAuth           *google.GoogleAuth
	AuthHandler          *google.AuthHandler
	Calendar             *google.Calendar

	NotesRepo     notes.Repository
	Processor     *notes.Processor
	EventsHandler *notes.Handler

	NotificationService *notification.Service
	NotificationHandler *notification.Handler

	ScanHandler *watcher.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.NotificationService = notification.NewService(deps.Bus)
	deps.NotificationHandler = notification.NewHandler(deps.NotificationService)

	deps.SettingsRepo = settings.NewRepository(db)
	deps.SettingsService = settings.NewService(deps.SettingsRepo, cfg.Google)
	deps.SettingsHandler = settings.NewHandler(deps.SettingsService)

	deps.TokenRepo = google.NewTokenRepository(db)
	deps.PendingAuthorization = google.NewPendingAuthorization(deps.Bus)
	deps.GoogleAuth = google.NewGoogleAuth(deps.TokenRepo, deps.SettingsService, deps.PendingAuthorization, deps.Clock)
	deps.AuthHandler = google.NewAuthHandler(deps.GoogleAuth, deps.PendingAuthorization)
	deps.Calendar = google.NewCalendar(deps.GoogleAuth, cfg.Calendar)

	deps.NotesRepo = notes.NewRepository(db)
	deps.Processor = notes.NewProcessor(deps.Calendar, notes.NewFileStore(), deps.NotesRepo, deps.Bus, cfg.Calendar)
	deps.EventsHandler = notes.NewHandler(deps.NotesRepo)

	deps.ScanHandler = watcher.NewHandler(cfg.Notes.Dir, deps.Processor)

	return deps
}
