package notes

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type RepositoryStub struct {
	mu     sync.RWMutex
	events []ProcessedEvent
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{}
}

func (r *RepositoryStub) StoreProcessedEvent(ctx context.Context, event ProcessedEvent) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Uid == uuid.Nil {
		event.Uid = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	r.events = append(r.events, event)
	return event.Uid, nil
}

func (r *RepositoryStub) GetRecent(ctx context.Context, limit int) ([]ProcessedEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Stored in insertion order; recent means from the end.
	var result []ProcessedEvent
	for i := len(r.events) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, r.events[i])
	}
	return result, nil
}

// All returns every stored event in insertion order (for test assertions).
func (r *RepositoryStub) All() []ProcessedEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]ProcessedEvent, len(r.events))
	copy(result, r.events)
	return result
}
