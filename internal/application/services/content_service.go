// Package services provides application-level services that orchestrate
// business logic between the CMS backend, caches, and domain entities.
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BaillieLodges/beckons-go/internal/domain/entities/content"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/caching/interfaces"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/cms"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/logging"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/performance"
)

// Well-known content addresses, matching the CMS seed data.
const (
	PageContentTypeSlug = "page-content"
	HomeEntrySlug       = "home"

	siteSettingsTypeSlug  = "site-settings"
	siteSettingsEntrySlug = "global-settings"
	navigationTypeSlug    = "navigation"
	navigationEntrySlug   = "global-navigation"
	footerTypeSlug        = "site-footer"
	footerEntrySlug       = "global-footer"
)

// ContentService resolves (contentTypeSlug, entrySlug) pairs to content
// payloads via the content-type id cache and the CMS backend.
type ContentService struct {
	client      *cms.Client
	cache       interfaces.ContentTypeIDCache
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewContentService creates a content resolution service
func NewContentService(client *cms.Client, cache interfaces.ContentTypeIDCache, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ContentService {
	return &ContentService{
		client:      client,
		cache:       cache,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// ResolveContentTypeID maps a content-type slug to its backend identifier,
// memoizing successful lookups for the process lifetime. A cache hit issues
// no network call. Failed lookups are never cached: a content type created
// after a miss is found on the next call.
func (s *ContentService) ResolveContentTypeID(ctx context.Context, slug string) (string, error) {
	if slug == "" {
		return "", fmt.Errorf("content type slug cannot be empty")
	}

	marker := s.perfTracker.StartOperation("content:resolve_type_id")
	defer marker.Complete()
	marker.AddMetadata("slug", slug)

	if id, ok := s.cache.GetID(slug); ok {
		marker.AddCacheHit()
		marker.SetSuccess(true)
		return id, nil
	}
	marker.AddCacheMiss()

	contentType, err := s.client.GetContentTypeBySlug(ctx, slug)
	if err != nil {
		marker.SetError(err)
		return "", fmt.Errorf("failed to resolve content type %q: %w", slug, err)
	}

	s.cache.SetID(slug, contentType.ID)
	s.logger.Cache().Debug("Cached content type id", "slug", slug, "id", contentType.ID)

	marker.SetSuccess(true)
	return contentType.ID, nil
}

// WarmContentTypeCache pre-resolves the well-known content types so first
// renders skip the lookup round trips. Individual failures are logged and
// skipped; the cache fills lazily for whatever could not be warmed.
func (s *ContentService) WarmContentTypeCache(ctx context.Context) {
	for _, slug := range []string{PageContentTypeSlug, siteSettingsTypeSlug, navigationTypeSlug, footerTypeSlug} {
		if _, err := s.ResolveContentTypeID(ctx, slug); err != nil {
			s.logger.Cache().Warn("Cache warm skipped content type", "slug", slug, "error", err.Error())
		}
	}
}

// GetEntry returns the data payload for (contentTypeSlug, entrySlug), or nil
// when the entry cannot be resolved. Any failure on this path is logged and
// converted to absence so a page render degrades to a placeholder instead of
// crashing. The payload is either complete or absent, never partial.
func (s *ContentService) GetEntry(ctx context.Context, contentTypeSlug, entrySlug string) json.RawMessage {
	marker := s.perfTracker.StartOperation("content:get_entry")
	defer marker.Complete()
	marker.AddMetadata("contentType", contentTypeSlug)
	marker.AddMetadata("entry", entrySlug)

	contentTypeID, err := s.ResolveContentTypeID(ctx, contentTypeSlug)
	if err != nil {
		s.logger.Content().Error("Failed to fetch content entry",
			"contentType", contentTypeSlug, "entry", entrySlug, "error", err.Error())
		marker.SetError(err)
		return nil
	}

	entry, err := s.client.GetContentEntryBySlug(ctx, entrySlug, contentTypeID)
	if err != nil {
		s.logger.Content().Error("Failed to fetch content entry",
			"contentType", contentTypeSlug, "entry", entrySlug, "error", err.Error())
		marker.SetError(err)
		return nil
	}

	marker.SetSuccess(true)
	return entry.Data
}

// decodeEntry unmarshals a payload into out, reporting false when the payload
// is absent or malformed so callers see a whole value or nothing.
func (s *ContentService) decodeEntry(raw json.RawMessage, contentTypeSlug, entrySlug string, out any) bool {
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Content().Error("Malformed content entry payload",
			"contentType", contentTypeSlug, "entry", entrySlug, "error", err.Error())
		return false
	}
	return true
}

// GetHomePage returns the home page payload, reshaping legacy flat entries
// into the nested structure the rendering layer expects.
func (s *ContentService) GetHomePage(ctx context.Context) *content.HomePageData {
	raw := s.GetEntry(ctx, PageContentTypeSlug, HomeEntrySlug)
	if raw == nil {
		return nil
	}

	raw, err := NormalizeHomePayload(raw)
	if err != nil {
		s.logger.Content().Error("Malformed content entry payload",
			"contentType", PageContentTypeSlug, "entry", HomeEntrySlug, "error", err.Error())
		return nil
	}

	var data content.HomePageData
	if !s.decodeEntry(raw, PageContentTypeSlug, HomeEntrySlug, &data) {
		return nil
	}
	return &data
}

// GetFormPage returns the flat payload for the inquire or email-subscription page.
func (s *ContentService) GetFormPage(ctx context.Context, entrySlug string) *content.FormPageData {
	raw := s.GetEntry(ctx, PageContentTypeSlug, entrySlug)
	var data content.FormPageData
	if !s.decodeEntry(raw, PageContentTypeSlug, entrySlug, &data) {
		return nil
	}
	return &data
}

// GetThankYouPage returns the thank-you page payload.
func (s *ContentService) GetThankYouPage(ctx context.Context) *content.ThankYouPageData {
	raw := s.GetEntry(ctx, PageContentTypeSlug, "thank-you")
	var data content.ThankYouPageData
	if !s.decodeEntry(raw, PageContentTypeSlug, "thank-you", &data) {
		return nil
	}
	return &data
}

// GetFooterContent returns the global footer payload.
func (s *ContentService) GetFooterContent(ctx context.Context) *content.FooterContent {
	raw := s.GetEntry(ctx, footerTypeSlug, footerEntrySlug)
	var data content.FooterContent
	if !s.decodeEntry(raw, footerTypeSlug, footerEntrySlug, &data) {
		return nil
	}
	return &data
}

// GetSiteSettings returns the global site settings payload.
func (s *ContentService) GetSiteSettings(ctx context.Context) *content.SiteSettings {
	raw := s.GetEntry(ctx, siteSettingsTypeSlug, siteSettingsEntrySlug)
	var data content.SiteSettings
	if !s.decodeEntry(raw, siteSettingsTypeSlug, siteSettingsEntrySlug, &data) {
		return nil
	}
	return &data
}

// GetNavigation returns the global navigation payload.
func (s *ContentService) GetNavigation(ctx context.Context) *content.Navigation {
	raw := s.GetEntry(ctx, navigationTypeSlug, navigationEntrySlug)
	var data content.Navigation
	if !s.decodeEntry(raw, navigationTypeSlug, navigationEntrySlug, &data) {
		return nil
	}
	return &data
}
