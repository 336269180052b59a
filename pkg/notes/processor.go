package notes

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/notecal/notecal/internal/config"
	"github.com/notecal/notecal/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

// Processor scans note text for event lines, creates one calendar event per
// matched line, and marks successful lines with the completion marker.
// Scans run one at a time; event creation within a scan is strictly
// sequential, never batched.
type Processor struct {
	creator EventCreator
	store   Store
	repo    Repository
	bus     *event_bus.EventBus
	cfg     config.Calendar

	mu sync.Mutex
}

func NewProcessor(creator EventCreator, store Store, repo Repository, bus *event_bus.EventBus, cfg config.Calendar) *Processor {
	return &Processor{
		creator: creator,
		store:   store,
		repo:    repo,
		bus:     bus,
		cfg:     cfg,
	}
}

// ProcessNote scans one note body and returns the updated body plus whether
// anything changed. Lines that match neither the marker nor the event pattern
// pass through byte-identical. A failed line stays unmarked and is retried on
// the next scan; processing continues with the remaining lines.
func (p *Processor) ProcessNote(ctx context.Context, path string, text string) (string, bool) {
	lines := strings.Split(text, "\n")
	changed := false
	matched := 0
	created := 0

	for i, line := range lines {
		if IsProcessed(line) {
			continue
		}
		eventLine, ok := ParseEventLine(line)
		if !ok {
			continue
		}
		matched++

		req := EventRequest{
			Summary:  eventLine.Title,
			Start:    ToISO(eventLine.StartRaw),
			End:      ToISO(eventLine.EndRaw),
			TimeZone: p.cfg.Timezone,
		}

		eventId, err := p.creator.CreateEvent(ctx, req)
		if err != nil {
			log.Errorf("failed to create calendar event for line %q in %s: %v", strings.TrimSpace(line), path, err)
			p.publish(ctx, event_bus.CalendarEventFailed, event_bus.CalendarEventFailedData{
				NotePath: path,
				Line:     strings.TrimSpace(line),
				Reason:   err.Error(),
			})
			continue
		}

		lines[i] = markLine(line)
		changed = true
		created++
		log.Infof("created calendar event %q (%s - %s)", req.Summary, req.Start, req.End)

		if err := p.record(ctx, path, req, eventId); err != nil {
			// The marker is authoritative; a failed audit record is only logged.
			log.Errorf("failed to record processed event: %v", err)
		}
		p.publish(ctx, event_bus.CalendarEventCreated, event_bus.CalendarEventCreatedData{
			NotePath:      path,
			Summary:       req.Summary,
			StartTime:     req.Start,
			EndTime:       req.End,
			GoogleEventId: eventId,
		})
	}

	if matched > 0 {
		p.publish(ctx, event_bus.NoteProcessed, event_bus.NoteProcessedData{
			NotePath: path,
			Matched:  matched,
			Created:  created,
		})
	}

	return strings.Join(lines, "\n"), changed
}

// ProcessFile reads a Markdown note, processes it, and writes it back only
// when at least one line changed. Non-Markdown paths are ignored.
func (p *Processor) ProcessFile(ctx context.Context, path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.processFile(ctx, path)
}

// ProcessDirectory walks the notes directory and processes every Markdown
// file. Per-file failures are logged and do not stop the walk.
func (p *Processor) ProcessDirectory(ctx context.Context, dir string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsMarkdown(path) {
			return nil
		}
		if err := p.processFile(ctx, path); err != nil {
			log.Errorf("failed to process note %s: %v", path, err)
		}
		return ctx.Err()
	})
}

func (p *Processor) processFile(ctx context.Context, path string) error {
	if !IsMarkdown(path) {
		return nil
	}

	text, err := p.store.Read(ctx, path)
	if err != nil {
		return err
	}

	updated, changed := p.ProcessNote(ctx, path, text)
	if !changed {
		// No write keeps the watcher from seeing a spurious change.
		return nil
	}
	return p.store.Write(ctx, path, updated)
}

func (p *Processor) record(ctx context.Context, path string, req EventRequest, eventId string) error {
	_, err := p.repo.StoreProcessedEvent(ctx, ProcessedEvent{
		NotePath:      path,
		Summary:       req.Summary,
		StartTime:     req.Start,
		EndTime:       req.End,
		GoogleEventId: eventId,
	})
	return err
}

func (p *Processor) publish(ctx context.Context, eventType event_bus.EventType, data any) {
	if err := p.bus.Publish(event_bus.NewEvent(ctx, eventType, data)); err != nil {
		log.Errorf("failed to publish %s: %v", eventType, err)
	}
}

// IsMarkdown reports whether the path looks like a Markdown note.
func IsMarkdown(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}

// markLine appends the completion marker, keeping a Windows line ending
// intact when present.
func markLine(line string) string {
	if strings.HasSuffix(line, "\r") {
		return fmt.Sprintf("%s %s\r", strings.TrimSuffix(line, "\r"), CompletionMarker)
	}
	return fmt.Sprintf("%s %s", line, CompletionMarker)
}
