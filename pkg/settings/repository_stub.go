package settings

import (
	"context"
	"sync"
)

type RepositoryStub struct {
	mu    sync.RWMutex
	creds GoogleCredentials
	err   error
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{}
}

func (r *RepositoryStub) Get(ctx context.Context) (GoogleCredentials, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.err != nil {
		return GoogleCredentials{}, r.err
	}
	return r.creds, nil
}

func (r *RepositoryStub) Store(ctx context.Context, creds GoogleCredentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.creds = creds
	return nil
}

// SetError makes all subsequent calls fail with err (for testing).
func (r *RepositoryStub) SetError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}
