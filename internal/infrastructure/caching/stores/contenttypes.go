// Package stores provides concrete cache store implementations
package stores

import (
	"sync"
	"time"
)

// ContentTypeStore implements the content-type slug to id cache. Writes are
// idempotent last-write-wins: concurrent misses on the same slug may both
// query the backend, but they deterministically compute the same id, so the
// race costs a duplicate network call, never a wrong answer.
type ContentTypeStore struct {
	slugToID    map[string]string
	lastUpdated time.Time
	mu          sync.RWMutex
}

// NewContentTypeStore creates an empty content-type id cache
func NewContentTypeStore() *ContentTypeStore {
	return &ContentTypeStore{
		slugToID:    make(map[string]string),
		lastUpdated: time.Now().UTC(),
	}
}

// GetID retrieves the cached id for a content-type slug
func (cs *ContentTypeStore) GetID(slug string) (string, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	id, exists := cs.slugToID[slug]
	return id, exists
}

// SetID stores a slug to id mapping
func (cs *ContentTypeStore) SetID(slug, id string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.slugToID[slug] = id
	cs.lastUpdated = time.Now().UTC()
}

// Len returns the number of cached mappings
func (cs *ContentTypeStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.slugToID)
}

// LastUpdated returns when the cache was last written
func (cs *ContentTypeStore) LastUpdated() time.Time {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.lastUpdated
}
