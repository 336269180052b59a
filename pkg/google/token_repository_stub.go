package google

import (
	"context"
	"sync"
)

type TokenRepositoryStub struct {
	mu     sync.RWMutex
	state  TokenState
	stores int
}

func NewTokenRepositoryStub() *TokenRepositoryStub {
	return &TokenRepositoryStub{}
}

func (r *TokenRepositoryStub) Load(ctx context.Context) (TokenState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state, nil
}

func (r *TokenRepositoryStub) Store(ctx context.Context, state TokenState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state
	r.stores++
	return nil
}

func (r *TokenRepositoryStub) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = TokenState{}
	return nil
}

// StoreCount returns how many times Store was called (for test assertions).
func (r *TokenRepositoryStub) StoreCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stores
}
