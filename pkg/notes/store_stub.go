package notes

import (
	"context"
	"fmt"
	"sync"
)

type StoreStub struct {
	mu     sync.RWMutex
	files  map[string]string
	writes int
}

func NewStoreStub() *StoreStub {
	return &StoreStub{files: make(map[string]string)}
}

func (s *StoreStub) Read(ctx context.Context, path string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.files[path]
	if !ok {
		return "", fmt.Errorf("note not found: %s", path)
	}
	return content, nil
}

func (s *StoreStub) Write(ctx context.Context, path string, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files[path] = content
	s.writes++
	return nil
}

// Put seeds a note without counting as a write.
func (s *StoreStub) Put(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = content
}

// WriteCount returns how many times Write was called.
func (s *StoreStub) WriteCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Content returns the current content of a note.
func (s *StoreStub) Content(path string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.files[path]
}
