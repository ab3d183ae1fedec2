// Package content defines the application's core content-related domain entities.
package content

import (
	"encoding/json"
	"time"
)

// FieldType enumerates the closed set of field types a content type may declare.
type FieldType string

const (
	FieldText      FieldType = "TEXT"
	FieldRichText  FieldType = "RICH_TEXT"
	FieldNumber    FieldType = "NUMBER"
	FieldBoolean   FieldType = "BOOLEAN"
	FieldDate      FieldType = "DATE"
	FieldSelect    FieldType = "SELECT"
	FieldMedia     FieldType = "MEDIA"
	FieldReference FieldType = "REFERENCE"
	FieldJSON      FieldType = "JSON"
)

// Field describes one field of a content type schema.
type Field struct {
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required,omitempty"`
	SortOrder   int       `json:"sortOrder"`
	Description string    `json:"description,omitempty"`
}

// ContentType identifies a schema of content ("page-content", "site-footer").
// The id is immutable once assigned; the slug is unique per organization.
type ContentType struct {
	ID     string  `json:"id"`
	Slug   string  `json:"slug"`
	Name   string  `json:"name"`
	Fields []Field `json:"fields,omitempty"`
}

// ContentEntry is one concrete instance of a content type, addressed by slug,
// holding an arbitrary JSON data payload. Updates are whole-payload replaces,
// not field-level patches.
type ContentEntry struct {
	ID        string          `json:"id"`
	Slug      string          `json:"slug"`
	Data      json.RawMessage `json:"data"`
	CreatedAt *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
}

// MediaVariants holds the size-variant locators returned by a media upload.
// Not every variant is produced for every asset; use PreferredURL for the
// fixed fallback order.
type MediaVariants struct {
	Original  string `json:"original"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Medium    string `json:"medium,omitempty"`
	Large     string `json:"large,omitempty"`
}

// PreferredURL returns the best available variant locator, falling back
// large -> medium -> original.
func (v MediaVariants) PreferredURL() string {
	if v.Large != "" {
		return v.Large
	}
	if v.Medium != "" {
		return v.Medium
	}
	return v.Original
}

// MediaUpload is the result of uploading one media asset to the CMS.
type MediaUpload struct {
	ID       string        `json:"id"`
	Filename string        `json:"filename"`
	MimeType string        `json:"mimeType,omitempty"`
	Variants MediaVariants `json:"variants"`
}
