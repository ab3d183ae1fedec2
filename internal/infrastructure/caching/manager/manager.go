// Package manager provides the composition root for all cache stores.
// Stores are explicit injectable objects owned by the container, never
// hidden package-level singletons, so tests construct their own.
package manager

import (
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/caching/interfaces"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/caching/stores"
)

// Manager aggregates the cache stores used by the application
type Manager struct {
	contentTypes *stores.ContentTypeStore
}

// NewManager creates a cache manager with empty stores
func NewManager() *Manager {
	return &Manager{
		contentTypes: stores.NewContentTypeStore(),
	}
}

// ContentTypes returns the content-type id cache
func (m *Manager) ContentTypes() interfaces.ContentTypeIDCache {
	return m.contentTypes
}
