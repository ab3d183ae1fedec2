// Package cms provides the GraphQL and REST client for the headless CMS backend.
package cms

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds for backend failures. Callers branch with errors.Is
// rather than matching message substrings.
var (
	// ErrNotFound indicates no backend record matched the given slug.
	ErrNotFound = errors.New("cms: not found")

	// ErrUnauthorized indicates a failed login or an invalid/expired bearer token.
	ErrUnauthorized = errors.New("cms: unauthorized")

	// ErrAlreadyExists indicates a create collided with an existing slug.
	// Batch callers treat this as a non-fatal skip.
	ErrAlreadyExists = errors.New("cms: already exists")
)

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized reports whether err wraps ErrUnauthorized.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsAlreadyExists reports whether err wraps ErrAlreadyExists.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// GraphQLError is one error object from a GraphQL response envelope.
type GraphQLError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

// Error implements the error interface.
func (e *GraphQLError) Error() string {
	if e.Extensions.Code != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Extensions.Code)
	}
	return e.Message
}

// classify maps a backend GraphQL error to a sentinel kind. The structured
// extensions code is authoritative; the message substring fallback covers
// backend deployments that predate structured codes.
func classify(gqlErr *GraphQLError) error {
	switch gqlErr.Extensions.Code {
	case "NOT_FOUND":
		return fmt.Errorf("%w: %s", ErrNotFound, gqlErr.Message)
	case "UNAUTHENTICATED", "UNAUTHORIZED", "FORBIDDEN":
		return fmt.Errorf("%w: %s", ErrUnauthorized, gqlErr.Message)
	case "CONFLICT", "ALREADY_EXISTS":
		return fmt.Errorf("%w: %s", ErrAlreadyExists, gqlErr.Message)
	}

	msg := strings.ToLower(gqlErr.Message)
	switch {
	case strings.Contains(msg, "already exists"):
		return fmt.Errorf("%w: %s", ErrAlreadyExists, gqlErr.Message)
	case strings.Contains(msg, "not found"):
		return fmt.Errorf("%w: %s", ErrNotFound, gqlErr.Message)
	case strings.Contains(msg, "unauthorized"), strings.Contains(msg, "invalid credentials"), strings.Contains(msg, "invalid token"):
		return fmt.Errorf("%w: %s", ErrUnauthorized, gqlErr.Message)
	}

	return gqlErr
}
