package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/notecal/notecal/internal/config"
	"github.com/notecal/notecal/internal/database"
	"github.com/notecal/notecal/pkg/watcher"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, database, router, background watcher, and
// server lifecycle.
type Application struct {
	cfg       config.Application
	router    *mux.Router
	srv       *http.Server
	watcher   *watcher.Watcher
	scheduler *watcher.Scheduler
}

// NewApplication constructs the full application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	// DB + migrations
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	// db will be closed when server shuts down; defer not possible here, leave to process exit.
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Build dependencies (services, handlers...)
	deps := BuildDependencies(db, cfg)

	// Middleware chain
	SetupMiddleware(r, deps, cfg)

	// Routes
	RegisterRoutes(r, deps, cfg)

	app := &Application{cfg: cfg, router: r}

	if cfg.Notes.Watch {
		app.watcher = watcher.NewWatcher(cfg.Notes.Dir, deps.Processor)
	}
	if cfg.Notes.RescanCron != "" {
		scheduler, err := watcher.NewScheduler(cfg.Notes.RescanCron, cfg.Notes.Dir, deps.Processor)
		if err != nil {
			return nil, err
		}
		app.scheduler = scheduler
	}

	app.srv = &http.Server{
		Handler:      r,
		Addr:         ":8181",
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return app, nil
}

// Run starts the background watcher, the rescan scheduler, and the HTTP
// server, then blocks.
func (a *Application) Run() error {
	if a.watcher != nil {
		go func() {
			if err := a.watcher.Run(context.Background()); err != nil {
				log.Errorf("notes watcher stopped: %v", err)
			}
		}()
	}
	if a.scheduler != nil {
		a.scheduler.Start()
		defer a.scheduler.Stop()
	}

	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}
