package notes

import (
	"context"
	"fmt"
	"sync"
)

type CreatorStub struct {
	mu       sync.Mutex
	requests []EventRequest
	failing  map[string]error
	nextId   int
}

func NewCreatorStub() *CreatorStub {
	return &CreatorStub{failing: make(map[string]error), nextId: 1}
}

func (c *CreatorStub) CreateEvent(ctx context.Context, req EventRequest) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err, ok := c.failing[req.Summary]; ok {
		return "", err
	}
	c.requests = append(c.requests, req)
	id := fmt.Sprintf("gevent-%d", c.nextId)
	c.nextId++
	return id, nil
}

// FailFor makes creation fail for events with the given summary.
func (c *CreatorStub) FailFor(summary string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failing[summary] = err
}

// Requests returns all successful creation requests (for test assertions).
func (c *CreatorStub) Requests() []EventRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]EventRequest, len(c.requests))
	copy(result, c.requests)
	return result
}
