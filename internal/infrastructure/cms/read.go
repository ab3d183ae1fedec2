package cms

import (
	"context"
	"fmt"

	"github.com/BaillieLodges/beckons-go/internal/domain/entities/content"
)

// GetContentTypeBySlug resolves a content-type slug to its backend record.
// A null response means no content type exists for the slug within the
// organization, reported as ErrNotFound.
func (c *Client) GetContentTypeBySlug(ctx context.Context, slug string) (*content.ContentType, error) {
	if slug == "" {
		return nil, fmt.Errorf("content type slug cannot be empty")
	}

	var result struct {
		ContentTypeBySlug *content.ContentType `json:"contentTypeBySlug"`
	}

	err := c.Do(ctx, queryContentTypeBySlug, map[string]any{
		"slug":           slug,
		"organizationId": c.organizationID,
	}, &result)
	if err != nil {
		return nil, err
	}

	if result.ContentTypeBySlug == nil || result.ContentTypeBySlug.ID == "" {
		return nil, fmt.Errorf("%w: content type %q", ErrNotFound, slug)
	}

	return result.ContentTypeBySlug, nil
}

// GetContentEntryBySlug fetches one content entry by slug within a content type.
func (c *Client) GetContentEntryBySlug(ctx context.Context, slug, contentTypeID string) (*content.ContentEntry, error) {
	if slug == "" {
		return nil, fmt.Errorf("entry slug cannot be empty")
	}
	if contentTypeID == "" {
		return nil, fmt.Errorf("content type ID cannot be empty")
	}

	var result struct {
		ContentEntryBySlug *content.ContentEntry `json:"contentEntryBySlug"`
	}

	err := c.Do(ctx, queryContentEntryBySlug, map[string]any{
		"slug":           slug,
		"contentTypeId":  contentTypeID,
		"organizationId": c.organizationID,
	}, &result)
	if err != nil {
		return nil, err
	}

	if result.ContentEntryBySlug == nil {
		return nil, fmt.Errorf("%w: content entry %q", ErrNotFound, slug)
	}

	return result.ContentEntryBySlug, nil
}

// GetContentEntry fetches one content entry by ID.
func (c *Client) GetContentEntry(ctx context.Context, id string) (*content.ContentEntry, error) {
	if id == "" {
		return nil, fmt.Errorf("entry ID cannot be empty")
	}

	var result struct {
		ContentEntry *content.ContentEntry `json:"contentEntry"`
	}

	err := c.Do(ctx, queryContentEntry, map[string]any{"id": id}, &result)
	if err != nil {
		return nil, err
	}

	if result.ContentEntry == nil {
		return nil, fmt.Errorf("%w: content entry %s", ErrNotFound, id)
	}

	return result.ContentEntry, nil
}

// ListContentEntries fetches every entry of one content type.
func (c *Client) ListContentEntries(ctx context.Context, contentTypeID string) ([]*content.ContentEntry, error) {
	if contentTypeID == "" {
		return nil, fmt.Errorf("content type ID cannot be empty")
	}

	var result struct {
		ContentEntries []*content.ContentEntry `json:"contentEntries"`
	}

	err := c.Do(ctx, queryContentEntries, map[string]any{
		"contentTypeId":  contentTypeID,
		"organizationId": c.organizationID,
	}, &result)
	if err != nil {
		return nil, err
	}

	return result.ContentEntries, nil
}
