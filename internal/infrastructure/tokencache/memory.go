package tokencache

import (
	"context"
	"sync"
	"time"

	"concert_tickets/internal/domain/entities"
	"concert_tickets/internal/usecase/interfaces"
)

type memoryEntry struct {
	token     entities.AccessToken
	expiresAt time.Time
}

// MemoryCache keeps tokens in process memory.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

var _ interfaces.ITokenCache = (*MemoryCache)(nil)

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: map[string]memoryEntry{}, now: time.Now}
}

func (m *MemoryCache) Get(_ context.Context, key string) (entities.AccessToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return entities.AccessToken{}, ErrCacheMiss
	}
	if !m.now().Before(e.expiresAt) {
		delete(m.entries, key)
		return entities.AccessToken{}, ErrCacheMiss
	}
	return e.token, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, token entities.AccessToken, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{token: token, expiresAt: m.now().Add(ttl)}
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
