package cms

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginCarriesTokenOnSubsequentCalls(t *testing.T) {
	assert := require.New(t)
	stub := newGraphQLStub(t, func(query string, _ map[string]any) (any, []map[string]any) {
		if strings.Contains(query, "login") {
			return map[string]any{"login": map[string]any{
				"accessToken":  "tok-login",
				"refreshToken": "tok-refresh",
				"user":         map[string]any{"id": "u-1", "email": "admin@example.com"},
			}}, nil
		}
		return map[string]any{"contentTypeBySlug": map[string]any{"id": "ct-1", "slug": "page-content"}}, nil
	})

	admin, err := Login(context.Background(), stub.client(), "admin@example.com", "secret")
	assert.NoError(err)
	assert.Equal("tok-login", admin.Session().AccessToken)
	assert.Equal("admin@example.com", admin.Session().UserEmail)

	_, err = admin.GetContentTypeBySlug(context.Background(), "page-content")
	assert.NoError(err)

	assert.Len(stub.requests, 2)
	assert.Empty(stub.requests[0].headers.Get("Authorization"), "login itself is unauthenticated")
	assert.Equal("Bearer tok-login", stub.requests[1].headers.Get("Authorization"))
}

func TestLoginBadCredentials(t *testing.T) {
	assert := require.New(t)
	stub := newGraphQLStub(t, func(string, map[string]any) (any, []map[string]any) {
		return nil, []map[string]any{gqlError("UNAUTHENTICATED", "invalid credentials")}
	})

	admin, err := Login(context.Background(), stub.client(), "admin@example.com", "wrong")
	assert.Nil(admin)
	assert.True(IsUnauthorized(err))
}

func TestLoginEmptyTokenIsUnauthorized(t *testing.T) {
	assert := require.New(t)
	stub := newGraphQLStub(t, func(string, map[string]any) (any, []map[string]any) {
		return map[string]any{"login": map[string]any{"accessToken": ""}}, nil
	})

	admin, err := Login(context.Background(), stub.client(), "admin@example.com", "secret")
	assert.Nil(admin)
	assert.True(IsUnauthorized(err))
}

func TestNewAdminClientWrapsStaticToken(t *testing.T) {
	assert := require.New(t)
	stub := newGraphQLStub(t, func(string, map[string]any) (any, []map[string]any) {
		return map[string]any{"contentTypeBySlug": map[string]any{"id": "ct-1", "slug": "navigation"}}, nil
	})

	admin := NewAdminClient(stub.client(), "tok-env")
	_, err := admin.GetContentTypeBySlug(context.Background(), "navigation")
	assert.NoError(err)
	assert.Equal("Bearer tok-env", stub.requests[0].headers.Get("Authorization"))
}

func TestCreateContentEntryConflict(t *testing.T) {
	assert := require.New(t)
	stub := newGraphQLStub(t, func(string, map[string]any) (any, []map[string]any) {
		return nil, []map[string]any{gqlError("", `Content entry with slug "home" already exists`)}
	})

	admin := NewAdminClient(stub.client(), "tok")
	entry, err := admin.CreateContentEntry(context.Background(), "ct-1", "home", map[string]any{})
	assert.Nil(entry)
	assert.True(IsAlreadyExists(err), "duplicate slug reports the skip-able sentinel")
}

func TestUpdateContentEntrySendsFullPayload(t *testing.T) {
	assert := require.New(t)
	stub := newGraphQLStub(t, func(string, map[string]any) (any, []map[string]any) {
		return map[string]any{"updateContentEntry": map[string]any{"id": "en-1", "slug": "home"}}, nil
	})

	admin := NewAdminClient(stub.client(), "tok")
	_, err := admin.UpdateContentEntry(context.Background(), "en-1", map[string]any{
		"stickyButtonText": "Inquire",
		"hero":             map[string]any{"logoUrl": "logo.svg"},
	})
	assert.NoError(err)

	input := stub.requests[0].variables["input"].(map[string]any)
	data := input["data"].(map[string]any)
	assert.Equal("Inquire", data["stickyButtonText"])
	assert.Contains(data, "hero", "update replaces the whole data object")
}

func TestMergeEntryData(t *testing.T) {
	assert := require.New(t)

	existing := json.RawMessage(`{"title":"Home","hero":{"logoUrl":"logo.svg"}}`)
	merged, err := MergeEntryData(existing, map[string]any{"title": "Welcome"})
	assert.NoError(err)
	assert.Equal("Welcome", merged["title"])
	assert.Contains(merged, "hero", "untouched keys carry through to the full-replace payload")
}

func TestMergeEntryDataNilPatchDecodesOnly(t *testing.T) {
	assert := require.New(t)

	merged, err := MergeEntryData(json.RawMessage(`{"a":1}`), nil)
	assert.NoError(err)
	assert.Len(merged, 1)

	merged, err = MergeEntryData(nil, map[string]any{"a": 1})
	assert.NoError(err)
	assert.Len(merged, 1)
}

func TestMergeEntryDataMalformedExisting(t *testing.T) {
	assert := require.New(t)
	_, err := MergeEntryData(json.RawMessage(`[1,2]`), nil)
	assert.Error(err)
}

func TestMediaURL(t *testing.T) {
	assert := require.New(t)

	assert.Equal("https://media.example.com/img/a.webp", MediaURL("https://media.example.com", "img/a.webp"))
	assert.Equal("https://media.example.com/img/a.webp", MediaURL("https://media.example.com/", "/img/a.webp"))
	assert.Equal("https://elsewhere.com/a.jpg", MediaURL("https://media.example.com", "https://elsewhere.com/a.jpg"))
	assert.Equal("", MediaURL("https://media.example.com", ""))
}

func TestAPIBaseFromGraphQLEndpoint(t *testing.T) {
	assert := require.New(t)

	assert.Equal("https://cms.example.com", APIBaseFromGraphQLEndpoint("https://cms.example.com/graphql"))
	assert.Equal("https://cms.example.com", APIBaseFromGraphQLEndpoint("https://cms.example.com/graphql/"))
	assert.Equal("https://cms.example.com", APIBaseFromGraphQLEndpoint("https://cms.example.com"))
}
