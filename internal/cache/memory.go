package cache

import (
	"context"
	"sync"
	"time"
)

var _ ArchiveTextCache = (*MemoryArchiveCache)(nil)

// MemoryArchiveCache is a process-local ArchiveTextCache used when no
// redis address is configured, and by tests. Entries never expire; the
// cache lives as long as the process.
type MemoryArchiveCache struct {
	mu    sync.RWMutex
	texts map[string]string
}

func NewMemoryArchiveCache() *MemoryArchiveCache {
	return &MemoryArchiveCache{
		texts: make(map[string]string),
	}
}

func (m *MemoryArchiveCache) GetText(_ context.Context, bookmarkID string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	text, ok := m.texts[bookmarkID]
	return text, ok, nil
}

func (m *MemoryArchiveCache) SetText(_ context.Context, bookmarkID string, text string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.texts[bookmarkID] = text
	return nil
}

func (m *MemoryArchiveCache) DeleteText(_ context.Context, bookmarkID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.texts, bookmarkID)
	return nil
}
