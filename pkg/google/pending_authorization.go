package google

import (
	"context"
	"fmt"
	"sync"

	"github.com/notecal/notecal/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

// PendingAuthorization is a CodeProvider fed through the HTTP API. A blocked
// scan publishes an authorization-required notification carrying the URL and
// waits until the user submits the code via the auth endpoints, or until the
// context is cancelled. There is deliberately no timeout of its own.
type PendingAuthorization struct {
	bus *event_bus.EventBus

	mu      sync.Mutex
	waiting chan string
}

func NewPendingAuthorization(bus *event_bus.EventBus) *PendingAuthorization {
	return &PendingAuthorization{bus: bus}
}

func (p *PendingAuthorization) RequestCode(ctx context.Context, authUrl string) (string, error) {
	ch := make(chan string, 1)

	p.mu.Lock()
	if p.waiting != nil {
		// A newer request supersedes an abandoned prompt.
		close(p.waiting)
	}
	p.waiting = ch
	p.mu.Unlock()

	err := p.bus.Publish(event_bus.NewEvent(ctx, event_bus.AuthorizationRequired,
		event_bus.AuthorizationRequiredData{AuthorizationUrl: authUrl}))
	if err != nil {
		log.Errorf("failed to publish authorization required event: %v", err)
	}
	log.Infof("Google authorization required, open in a browser: %s", authUrl)

	select {
	case code, ok := <-ch:
		if !ok {
			return "", fmt.Errorf("authorization superseded by a newer request")
		}
		return code, nil
	case <-ctx.Done():
		p.forget(ch)
		return "", ctx.Err()
	}
}

// Submit delivers a code to the blocked scan, if any. It reports whether a
// waiter consumed the code.
func (p *PendingAuthorization) Submit(code string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.waiting == nil {
		return false
	}
	p.waiting <- code
	p.waiting = nil
	return true
}

// Waiting reports whether a scan is currently blocked on authorization.
func (p *PendingAuthorization) Waiting() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.waiting != nil
}

func (p *PendingAuthorization) forget(ch chan string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.waiting == ch {
		p.waiting = nil
	}
}
