// Package performance provides performance monitoring data structures and
// utilities for tracking operation timing across the Beckons site server.
package performance

import (
	"time"
)

// Marker represents a single performance measurement for an operation
type Marker struct {
	Operation   string         `json:"operation"`       // e.g., "content:get_entry", "cms:upload_media"
	StartTime   time.Time      `json:"startTime"`       // When the operation started
	EndTime     time.Time      `json:"endTime"`         // When the operation completed
	Duration    time.Duration  `json:"duration"`        // Total operation duration
	Success     bool           `json:"success"`         // Whether the operation completed successfully
	Error       string         `json:"error,omitempty"` // Error message if operation failed
	Metadata    map[string]any `json:"metadata"`        // Additional operation-specific data
	CacheHits   int            `json:"cacheHits"`       // Number of cache hits during operation
	CacheMisses int            `json:"cacheMisses"`     // Number of cache misses during operation
	Completed   bool           `json:"completed"`       // Whether Complete() has been called
}

// Complete marks the operation as finished and calculates final metrics
func (m *Marker) Complete() {
	if m.Completed {
		return // Prevent double completion
	}

	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.Completed = true
}

// SetSuccess marks the operation as successful or failed
func (m *Marker) SetSuccess(success bool) {
	m.Success = success
}

// SetError sets an error message and marks the operation as failed
func (m *Marker) SetError(err error) {
	if err != nil {
		m.Error = err.Error()
		m.Success = false
	}
}

// AddMetadata adds key-value metadata to the marker
func (m *Marker) AddMetadata(key string, value any) {
	if m.Metadata == nil {
		m.Metadata = make(map[string]any)
	}
	m.Metadata[key] = value
}

// AddCacheHit increments the cache hit counter
func (m *Marker) AddCacheHit() {
	m.CacheHits++
}

// AddCacheMiss increments the cache miss counter
func (m *Marker) AddCacheMiss() {
	m.CacheMisses++
}

// GetCacheHitRatio returns the cache hit ratio (0.0 to 1.0)
func (m *Marker) GetCacheHitRatio() float64 {
	total := m.CacheHits + m.CacheMisses
	if total == 0 {
		return 0.0
	}
	return float64(m.CacheHits) / float64(total)
}
