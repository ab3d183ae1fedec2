// Package interfaces defines cache operation contracts for content resolution.
package interfaces

import "time"

// ContentTypeIDCache defines operations for the content-type slug to id map.
// Entries are never evicted for the lifetime of the process: a content type's
// id for a given slug is immutable once assigned. Negative results are never
// stored, so a type created after a failed lookup is found on the next call.
type ContentTypeIDCache interface {
	GetID(slug string) (string, bool)
	SetID(slug, id string)
	Len() int
	LastUpdated() time.Time
}
