package storage

import (
	"sync"
	"time"
)

// MemoryStore is an in-memory implementation of the response cache and
// ResultStore, intended for tests.
type MemoryStore struct {
	mu        sync.RWMutex
	responses map[memoryKey]*CachedResponse
	results   []ResultLink
}

type memoryKey struct {
	url    string
	accept string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		responses: make(map[memoryKey]*CachedResponse),
	}
}

// Get returns a cached entry younger than maxAge.
func (m *MemoryStore) Get(url, accept string, maxAge time.Duration) (string, map[string]string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.responses[memoryKey{url, accept}]
	if !ok || entry.Age() >= maxAge {
		return "", nil, false
	}
	return entry.Body, entry.Headers, true
}

// Set stores an entry under (url, accept).
func (m *MemoryStore) Set(url, accept, body string, headers map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.responses[memoryKey{url, accept}] = &CachedResponse{
		URL:       url,
		Accept:    accept,
		Body:      body,
		Headers:   headers,
		FetchedAt: time.Now(),
	}
	return nil
}

// Len returns the number of cached responses.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.responses)
}

// SaveResults overwrites the last-results slot.
func (m *MemoryStore) SaveResults(links []ResultLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.results = make([]ResultLink, len(links))
	copy(m.results, links)
	return nil
}

// LoadResults reads the last-results slot.
func (m *MemoryStore) LoadResults() ([]ResultLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	links := make([]ResultLink, len(m.results))
	copy(links, m.results)
	return links, nil
}
