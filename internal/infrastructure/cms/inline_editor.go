package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/logging"
)

// InlineEditorClient talks to the backend's inline-editor REST surface:
// a multipart media-upload endpoint and a single-field save endpoint.
type InlineEditorClient struct {
	apiBase     string
	orgSlug     string
	bearerToken string
	httpClient  *http.Client
	logger      *logging.ChanneledLogger
}

// NewInlineEditorClient creates a REST client for the inline-editor endpoints.
// apiBase is the backend root URL, not the GraphQL endpoint.
func NewInlineEditorClient(apiBase, orgSlug, token string, timeout time.Duration, logger *logging.ChanneledLogger) *InlineEditorClient {
	return &InlineEditorClient{
		apiBase:     strings.TrimSuffix(apiBase, "/"),
		orgSlug:     orgSlug,
		bearerToken: token,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

// APIBaseFromGraphQLEndpoint derives the backend REST root from a GraphQL
// endpoint URL.
func APIBaseFromGraphQLEndpoint(endpoint string) string {
	return strings.TrimSuffix(strings.TrimSuffix(endpoint, "/"), "/graphql")
}

func (c *InlineEditorClient) setHeaders(req *http.Request) {
	req.Header.Set("X-CMS-Org", c.orgSlug)
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
}

// UploadFile posts one file as multipart form data to the media-upload
// endpoint and returns the served URL.
func (c *InlineEditorClient) UploadFile(ctx context.Context, filename string, file []byte, mimeType string) (string, error) {
	if len(file) == 0 {
		return "", fmt.Errorf("upload requires file bytes")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to create multipart form: %w", err)
	}
	if _, err := part.Write(file); err != nil {
		return "", fmt.Errorf("failed to write multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/api/inline-editor/media/upload", &body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", fmt.Errorf("%w: upload returned %d", ErrUnauthorized, resp.StatusCode)
	}
	if resp.StatusCode == http.StatusConflict {
		return "", fmt.Errorf("%w: %s", ErrAlreadyExists, filename)
	}
	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload returned status %d: %s", resp.StatusCode, string(detail))
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if result.URL == "" {
		return "", fmt.Errorf("upload response carried no url")
	}

	if c.logger != nil {
		c.logger.Media().Info("Uploaded file via inline-editor endpoint", "filename", filename, "url", result.URL)
	}

	return result.URL, nil
}

// SaveField writes one field value of one entry through the inline-editor
// save endpoint.
func (c *InlineEditorClient) SaveField(ctx context.Context, entrySlug, field, value string) error {
	payload, err := json.Marshal(map[string]string{
		"entry": entrySlug,
		"field": field,
		"value": value,
	})
	if err != nil {
		return fmt.Errorf("failed to encode save payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/api/inline-editor/save", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build save request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("save request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: save returned %d", ErrUnauthorized, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("failed to save %s.%s: status %d: %s", entrySlug, field, resp.StatusCode, string(detail))
	}

	return nil
}
