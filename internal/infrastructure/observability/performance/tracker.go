// Package performance provides performance tracking for Beckons site
// operations with bounded in-memory retention.
package performance

import (
	"fmt"
	"sync"
	"time"
)

// Tracker manages performance markers and provides basic aggregation
type Tracker struct {
	markers map[string]*Marker
	order   []string
	mu      sync.RWMutex
	started time.Time
	config  *TrackerConfig
}

// TrackerConfig contains configuration options for the performance tracker
type TrackerConfig struct {
	MaxMarkers            int           `json:"maxMarkers"`            // Maximum number of markers to retain
	SlowResponseThreshold time.Duration `json:"slowResponseThreshold"` // Operations slower than this are flagged
}

// DefaultTrackerConfig returns a sensible default configuration
func DefaultTrackerConfig() *TrackerConfig {
	return &TrackerConfig{
		MaxMarkers:            10000,
		SlowResponseThreshold: 500 * time.Millisecond,
	}
}

// NewTracker creates a performance tracker
func NewTracker(config *TrackerConfig) *Tracker {
	if config == nil {
		config = DefaultTrackerConfig()
	}
	return &Tracker{
		markers: make(map[string]*Marker),
		order:   make([]string, 0),
		started: time.Now().UTC(),
		config:  config,
	}
}

// StartOperation begins tracking a new operation and returns its marker
func (t *Tracker) StartOperation(operation string) *Marker {
	marker := &Marker{
		Operation: operation,
		StartTime: time.Now(),
		Metadata:  make(map[string]any),
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	id := fmt.Sprintf("%s-%d", operation, marker.StartTime.UnixNano())
	t.markers[id] = marker
	t.order = append(t.order, id)

	// Evict oldest markers when over capacity
	for len(t.order) > t.config.MaxMarkers {
		oldest := t.order[0]
		t.order = t.order[1:]
		delete(t.markers, oldest)
	}

	return marker
}

// IsSlow reports whether a completed marker exceeded the slow threshold
func (t *Tracker) IsSlow(m *Marker) bool {
	return m.Completed && m.Duration > t.config.SlowResponseThreshold
}

// Stats summarizes tracked operations
type Stats struct {
	TrackedOperations int           `json:"trackedOperations"`
	SlowOperations    int           `json:"slowOperations"`
	Uptime            time.Duration `json:"uptime"`
}

// GetStats returns aggregate statistics for all retained markers
func (t *Tracker) GetStats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	stats := Stats{
		TrackedOperations: len(t.markers),
		Uptime:            time.Since(t.started),
	}
	for _, m := range t.markers {
		if t.IsSlow(m) {
			stats.SlowOperations++
		}
	}
	return stats
}
