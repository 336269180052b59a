package notification

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/notecal/notecal/internal/event_bus"
)

const maxNotices = 100

// Service keeps a bounded ring of recent notices, fed by the event bus.
type Service struct {
	mu      sync.RWMutex
	notices []Notice
}

func NewService(bus *event_bus.EventBus) *Service {
	s := &Service{}

	event_bus.SubscribeTyped(bus, event_bus.CalendarEventCreated,
		func(e event_bus.EventT[event_bus.CalendarEventCreatedData]) error {
			s.Add(LevelInfo, fmt.Sprintf("Created calendar event %q (%s - %s)",
				e.Data.Summary, e.Data.StartTime, e.Data.EndTime))
			return nil
		})
	event_bus.SubscribeTyped(bus, event_bus.CalendarEventFailed,
		func(e event_bus.EventT[event_bus.CalendarEventFailedData]) error {
			s.Add(LevelError, fmt.Sprintf("Failed to create calendar event for line %q in %s: %s",
				e.Data.Line, e.Data.NotePath, e.Data.Reason))
			return nil
		})
	event_bus.SubscribeTyped(bus, event_bus.NoteProcessed,
		func(e event_bus.EventT[event_bus.NoteProcessedData]) error {
			if e.Data.Created < e.Data.Matched {
				s.Add(LevelWarning, fmt.Sprintf("Processed %s: %d of %d event lines created",
					e.Data.NotePath, e.Data.Created, e.Data.Matched))
			}
			return nil
		})
	event_bus.SubscribeTyped(bus, event_bus.AuthorizationRequired,
		func(e event_bus.EventT[event_bus.AuthorizationRequiredData]) error {
			s.Add(LevelWarning, fmt.Sprintf("Google authorization required, open: %s",
				e.Data.AuthorizationUrl))
			return nil
		})

	return s
}

// Add appends a notice, dropping the oldest one beyond the ring capacity.
func (s *Service) Add(level Level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notices = append(s.notices, Notice{
		Id:        uuid.New(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	})
	if len(s.notices) > maxNotices {
		s.notices = s.notices[len(s.notices)-maxNotices:]
	}
}

// Recent returns up to limit notices, newest first.
func (s *Service) Recent(limit int) []Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []Notice
	for i := len(s.notices) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, s.notices[i])
	}
	return result
}
