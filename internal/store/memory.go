package store

import (
	"context"
	"sync"

	"github.com/vytor/phonicsplay/internal/repository"
)

// MemoryRepository is an in-process StateRepository. Nothing survives a restart.
type MemoryRepository struct {
	mu     sync.Mutex
	values map[string]string
}

var _ repository.StateRepository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{values: map[string]string{}}
}

func (m *MemoryRepository) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryRepository) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryRepository) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *MemoryRepository) Ping(context.Context) error {
	return nil
}
