package cms

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BaillieLodges/beckons-go/internal/domain/entities/content"
)

// Session holds the credentials returned by a successful login. The access
// token is carried explicitly on the admin client rather than through any
// process-wide variable.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"userId"`
	UserEmail    string `json:"userEmail"`
}

// AdminClient performs authenticated create/update operations against the
// CMS backend. Every call issues exactly one HTTP request with no retry.
type AdminClient struct {
	client  *Client
	session *Session
}

// Login authenticates against the backend and returns an admin client
// carrying the resulting bearer token. Bad credentials surface as
// ErrUnauthorized.
func Login(ctx context.Context, client *Client, email, password string) (*AdminClient, error) {
	var result struct {
		Login *struct {
			AccessToken  string `json:"accessToken"`
			RefreshToken string `json:"refreshToken"`
			User         struct {
				ID    string `json:"id"`
				Email string `json:"email"`
			} `json:"user"`
		} `json:"login"`
	}

	err := client.Do(ctx, mutationLogin, map[string]any{
		"input": map[string]any{
			"email":    email,
			"password": password,
		},
	}, &result)
	if err != nil {
		return nil, err
	}

	if result.Login == nil || result.Login.AccessToken == "" {
		return nil, fmt.Errorf("%w: login returned no access token", ErrUnauthorized)
	}

	session := &Session{
		AccessToken:  result.Login.AccessToken,
		RefreshToken: result.Login.RefreshToken,
		UserID:       result.Login.User.ID,
		UserEmail:    result.Login.User.Email,
	}

	return &AdminClient{
		client:  client.WithBearer(session.AccessToken),
		session: session,
	}, nil
}

// NewAdminClient wraps a pre-obtained bearer token, for scripted operations
// that receive CMS_AUTH_TOKEN from the environment instead of logging in.
func NewAdminClient(client *Client, token string) *AdminClient {
	return &AdminClient{
		client:  client.WithBearer(token),
		session: &Session{AccessToken: token},
	}
}

// Session returns the login session backing this client.
func (a *AdminClient) Session() *Session {
	return a.session
}

// GetContentTypeBySlug resolves a content type with the admin credential attached.
func (a *AdminClient) GetContentTypeBySlug(ctx context.Context, slug string) (*content.ContentType, error) {
	return a.client.GetContentTypeBySlug(ctx, slug)
}

// GetContentEntryBySlug fetches one entry with the admin credential attached.
func (a *AdminClient) GetContentEntryBySlug(ctx context.Context, slug, contentTypeID string) (*content.ContentEntry, error) {
	return a.client.GetContentEntryBySlug(ctx, slug, contentTypeID)
}

// GetContentEntry fetches one entry by ID with the admin credential attached.
func (a *AdminClient) GetContentEntry(ctx context.Context, id string) (*content.ContentEntry, error) {
	return a.client.GetContentEntry(ctx, id)
}

// CreateContentType creates a content type schema. Creating a slug that
// already exists reports ErrAlreadyExists; batch callers skip and continue.
func (a *AdminClient) CreateContentType(ctx context.Context, name, slug, description, icon string, fields []content.Field) (*content.ContentType, error) {
	var result struct {
		CreateContentType *content.ContentType `json:"createContentType"`
	}

	input := map[string]any{
		"organizationId": a.client.organizationID,
		"slug":           slug,
		"name":           name,
		"fields":         fields,
	}
	if description != "" {
		input["description"] = description
	}
	if icon != "" {
		input["icon"] = icon
	}

	err := a.client.Do(ctx, mutationCreateContentType, map[string]any{"input": input}, &result)
	if err != nil {
		return nil, err
	}

	if result.CreateContentType == nil {
		return nil, fmt.Errorf("failed to create content type %q: empty response", slug)
	}

	return result.CreateContentType, nil
}

// CreateContentEntry creates one entry. An existing slug reports
// ErrAlreadyExists rather than a hard failure.
func (a *AdminClient) CreateContentEntry(ctx context.Context, contentTypeID, slug string, data any) (*content.ContentEntry, error) {
	var result struct {
		CreateContentEntry *content.ContentEntry `json:"createContentEntry"`
	}

	err := a.client.Do(ctx, mutationCreateContentEntry, map[string]any{
		"input": map[string]any{
			"contentTypeId":  contentTypeID,
			"organizationId": a.client.organizationID,
			"slug":           slug,
			"data":           data,
		},
	}, &result)
	if err != nil {
		return nil, err
	}

	if result.CreateContentEntry == nil {
		return nil, fmt.Errorf("failed to create content entry %q: empty response", slug)
	}

	return result.CreateContentEntry, nil
}

// UpdateContentEntry replaces the entire data payload of an entry. The
// mutation is last-write-wins on the whole data field, so the caller must
// supply the complete merged object or previously set fields will be lost.
func (a *AdminClient) UpdateContentEntry(ctx context.Context, id string, data any) (*content.ContentEntry, error) {
	var result struct {
		UpdateContentEntry *content.ContentEntry `json:"updateContentEntry"`
	}

	err := a.client.Do(ctx, mutationUpdateContentEntry, map[string]any{
		"id": id,
		"input": map[string]any{
			"data": data,
		},
	}, &result)
	if err != nil {
		return nil, err
	}

	if result.UpdateContentEntry == nil {
		return nil, fmt.Errorf("failed to update content entry %s: empty response", id)
	}

	return result.UpdateContentEntry, nil
}

// MergeEntryData overlays patch onto the existing raw payload and returns the
// complete merged object for a full-replace update.
func MergeEntryData(existing json.RawMessage, patch map[string]any) (map[string]any, error) {
	merged := make(map[string]any)
	if len(existing) > 0 {
		if err := json.Unmarshal(existing, &merged); err != nil {
			return nil, fmt.Errorf("failed to decode existing entry data: %w", err)
		}
	}
	for key, value := range patch {
		merged[key] = value
	}
	return merged, nil
}

// UploadMedia uploads raw bytes as a media asset and returns its size-variant
// locators. Callers fall back large -> medium -> original for missing variants.
func (a *AdminClient) UploadMedia(ctx context.Context, file []byte, filename, mimeType, alt string) (*content.MediaUpload, error) {
	if len(file) == 0 {
		return nil, fmt.Errorf("media upload requires file bytes")
	}

	var result struct {
		UploadMedia *content.MediaUpload `json:"uploadMedia"`
	}

	err := a.client.Do(ctx, mutationUploadMedia, map[string]any{
		"input": map[string]any{
			"organizationId": a.client.organizationID,
			"filename":       filename,
			"mimeType":       mimeType,
			"alt":            alt,
			"base64Data":     base64.StdEncoding.EncodeToString(file),
		},
	}, &result)
	if err != nil {
		return nil, err
	}

	if result.UploadMedia == nil {
		return nil, fmt.Errorf("failed to upload media %q: empty response", filename)
	}

	return result.UploadMedia, nil
}

// MediaURL resolves a variant locator to a fetchable URL against the media CDN.
func MediaURL(cdnBase, locator string) string {
	if locator == "" {
		return ""
	}
	if strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		return locator
	}
	return strings.TrimSuffix(cdnBase, "/") + "/" + strings.TrimPrefix(locator, "/")
}
