package repository

import (
	"context"
	"sync"

	"github.com/bookmarkd/bookmarkd/internal/bookmark"
	"github.com/google/uuid"
)

// MemoryRepo keeps bookmarks in an insertion-ordered slice. It backs unit
// tests and runs the service when no database is configured.
type MemoryRepo struct {
	mu    sync.RWMutex
	items []bookmark.Bookmark
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) GetAll(ctx context.Context) ([]bookmark.Bookmark, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]bookmark.Bookmark, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *MemoryRepo) GetByID(ctx context.Context, id string) (*bookmark.Bookmark, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.items {
		if m.items[i].ID == id {
			b := m.items[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) Insert(ctx context.Context, b *bookmark.Bookmark) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	m.items = append(m.items, *b)
	return b.ID, nil
}

func (m *MemoryRepo) PatchByID(ctx context.Context, id string, next bookmark.Bookmark) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			next.ID = id
			m.items[i] = next
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryRepo) DeleteByID(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
