package watcher

import (
	"context"
	"fmt"

	"github.com/notecal/notecal/pkg/notes"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Scheduler runs periodic full rescans of the notes directory, catching
// anything the filesystem watcher missed (edits while the daemon was down,
// lines left unmarked after a failed event creation).
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(spec string, dir string, processor *notes.Processor) (*Scheduler, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		log.Debugf("scheduled rescan of %s", dir)
		if err := processor.ProcessDirectory(context.Background(), dir); err != nil {
			log.Errorf("scheduled rescan failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid rescan schedule %q: %w", spec, err)
	}
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
