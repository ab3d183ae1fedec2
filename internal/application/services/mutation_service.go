package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/BaillieLodges/beckons-go/internal/domain/entities/content"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/cms"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/messaging"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/logging"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/performance"
)

// MutationService performs the authenticated CMS writes behind the
// inline-editor endpoints. The admin session is established lazily on the
// first write and reused until a call reports it unauthorized.
type MutationService struct {
	client      *cms.Client
	email       string
	password    string
	staticToken string
	cdnBase     string
	broadcaster *messaging.PreviewBroadcaster
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker

	mu    sync.Mutex
	admin *cms.AdminClient
}

// NewMutationService creates the mutation orchestration service. staticToken,
// when set, takes precedence over credential login. broadcaster may be nil.
func NewMutationService(client *cms.Client, email, password, staticToken, cdnBase string, broadcaster *messaging.PreviewBroadcaster, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *MutationService {
	return &MutationService{
		client:      client,
		email:       email,
		password:    password,
		staticToken: staticToken,
		cdnBase:     cdnBase,
		broadcaster: broadcaster,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// adminClient returns the cached admin session, establishing one if needed.
func (s *MutationService) adminClient(ctx context.Context) (*cms.AdminClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.admin != nil {
		return s.admin, nil
	}

	if s.staticToken != "" {
		s.admin = cms.NewAdminClient(s.client, s.staticToken)
		return s.admin, nil
	}

	admin, err := cms.Login(ctx, s.client, s.email, s.password)
	if err != nil {
		return nil, fmt.Errorf("cms login failed: %w", err)
	}
	s.logger.CMS().Info("CMS admin session established", "user", admin.Session().UserEmail)
	s.admin = admin
	return s.admin, nil
}

// invalidateSession drops the cached admin client so the next write logs in again.
func (s *MutationService) invalidateSession() {
	s.mu.Lock()
	s.admin = nil
	s.mu.Unlock()
}

// Content types searched when resolving an inline-save entry slug.
var editableTypeSlugs = []string{"page-content", "site-settings", "site-footer", "navigation"}

// findEntry resolves an entry slug across the editable content types.
func (s *MutationService) findEntry(ctx context.Context, admin *cms.AdminClient, entrySlug string) (*content.ContentEntry, error) {
	for _, typeSlug := range editableTypeSlugs {
		contentType, err := admin.GetContentTypeBySlug(ctx, typeSlug)
		if err != nil {
			if cms.IsNotFound(err) {
				continue
			}
			return nil, err
		}

		entry, err := admin.GetContentEntryBySlug(ctx, entrySlug, contentType.ID)
		if err != nil {
			if cms.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		return entry, nil
	}
	return nil, fmt.Errorf("%w: entry %q in editable content types", cms.ErrNotFound, entrySlug)
}

// SaveField updates a single field of an entry identified by slug. The field
// is a dot path into the data payload ("hero.posterUrl", "cards[0].imageUrl").
// The backend update replaces the whole payload, so the existing entry is
// fetched and the path set within it first.
func (s *MutationService) SaveField(ctx context.Context, entrySlug, fieldPath string, value any) error {
	marker := s.perfTracker.StartOperation("cms:save_field")
	defer marker.Complete()

	if entrySlug == "" || fieldPath == "" {
		return fmt.Errorf("entry and field are required")
	}

	admin, err := s.adminClient(ctx)
	if err != nil {
		marker.SetError(err)
		return err
	}

	entry, err := s.findEntry(ctx, admin, entrySlug)
	if err != nil {
		if cms.IsUnauthorized(err) {
			s.invalidateSession()
		}
		marker.SetError(err)
		return fmt.Errorf("failed to load entry %q: %w", entrySlug, err)
	}

	merged, err := cms.MergeEntryData(entry.Data, nil)
	if err != nil {
		marker.SetError(err)
		return err
	}
	if err := cms.SetEntryField(merged, fieldPath, value); err != nil {
		marker.SetError(err)
		return err
	}

	if _, err := admin.UpdateContentEntry(ctx, entry.ID, merged); err != nil {
		if cms.IsUnauthorized(err) {
			s.invalidateSession()
		}
		marker.SetError(err)
		return fmt.Errorf("failed to update entry %q: %w", entrySlug, err)
	}

	s.logger.Editor().Info("Field saved", "entry", entrySlug, "field", fieldPath)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastContentUpdate(entrySlug, fieldPath)
	}
	marker.SetSuccess(true)
	return nil
}

// UploadMedia uploads one asset and returns the URL pages should reference,
// falling back large -> medium -> original across the returned variants.
func (s *MutationService) UploadMedia(ctx context.Context, file []byte, filename, mimeType, alt string) (string, *content.MediaUpload, error) {
	marker := s.perfTracker.StartOperation("cms:upload_media")
	defer marker.Complete()

	admin, err := s.adminClient(ctx)
	if err != nil {
		marker.SetError(err)
		return "", nil, err
	}

	upload, err := admin.UploadMedia(ctx, file, filename, mimeType, alt)
	if err != nil {
		if cms.IsUnauthorized(err) {
			s.invalidateSession()
		}
		marker.SetError(err)
		return "", nil, err
	}

	url := cms.MediaURL(s.cdnBase, upload.Variants.PreferredURL())
	s.logger.Media().Info("Media uploaded", "filename", filename, "url", url)
	marker.SetSuccess(true)
	return url, upload, nil
}
