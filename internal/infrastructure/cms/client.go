package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/logging"
)

// Client is the GraphQL transport for the CMS backend. Content entries change
// between requests while operators edit live, so every call carries a
// no-store cache directive and always hits the origin.
type Client struct {
	endpoint       string
	organizationID string
	bearerToken    string
	httpClient     *http.Client
	logger         *logging.ChanneledLogger
}

// NewClient creates a read-path client with no credentials attached.
func NewClient(endpoint, organizationID string, timeout time.Duration, logger *logging.ChanneledLogger) *Client {
	return &Client{
		endpoint:       endpoint,
		organizationID: organizationID,
		httpClient:     &http.Client{Timeout: timeout},
		logger:         logger,
	}
}

// WithBearer returns a copy of the client that attaches the given bearer
// token to every request. The token lives on the returned client only, never
// in shared mutable state.
func (c *Client) WithBearer(token string) *Client {
	clone := *c
	clone.bearerToken = token
	return &clone
}

// OrganizationID returns the organization this client is scoped to.
func (c *Client) OrganizationID() string {
	return c.organizationID
}

// Endpoint returns the GraphQL endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []*GraphQLError `json:"errors"`
}

// Do executes one GraphQL operation and decodes the response data into out.
// Exactly one HTTP request is issued per call, with no implicit retry.
func (c *Client) Do(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to encode graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build graphql request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	// Unconditional origin fetch: staleness is worse than the extra round trip.
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")
	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graphql request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: backend returned %d", ErrUnauthorized, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("graphql request returned status %d", resp.StatusCode)
	}

	var envelope graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode graphql response: %w", err)
	}

	if c.logger != nil {
		c.logger.CMS().Debug("GraphQL call completed",
			"endpoint", c.endpoint,
			"duration", time.Since(start),
			"errors", len(envelope.Errors))
	}

	if len(envelope.Errors) > 0 {
		return classify(envelope.Errors[0])
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode graphql data: %w", err)
		}
	}

	return nil
}
