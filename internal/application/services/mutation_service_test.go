package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newMutationService(t *testing.T, backend *fakeBackend) *MutationService {
	t.Helper()
	return NewMutationService(backend.client(t), "admin@example.com", "secret", "", "https://media.example.com", nil, newTestLogger(t), newTestTracker())
}

func TestSaveFieldFullReplace(t *testing.T) {
	assert := require.New(t)
	backend := newFakeBackend(t)
	backend.addType("page-content", "ct-1")
	backend.addEntry("ct-1", "home", map[string]any{
		"hero":             map[string]any{"logoUrl": "logo.svg", "posterUrl": "old.jpg"},
		"stickyButtonText": "Inquire",
	})
	svc := newMutationService(t, backend)

	err := svc.SaveField(context.Background(), "home", "hero.posterUrl", "new.jpg")
	assert.NoError(err)

	assert.Len(backend.updates, 1)
	update := backend.updates[0]
	assert.Equal("entry-ct-1-home", update.entryID)

	hero := update.data["hero"].(map[string]any)
	assert.Equal("new.jpg", hero["posterUrl"])
	assert.Equal("logo.svg", hero["logoUrl"], "untouched sibling survives the full replace")
	assert.Equal("Inquire", update.data["stickyButtonText"])
}

func TestSaveFieldArrayPath(t *testing.T) {
	assert := require.New(t)
	backend := newFakeBackend(t)
	backend.addType("page-content", "ct-1")
	backend.addEntry("ct-1", "home", map[string]any{
		"whyBeckons": map[string]any{
			"cards": []any{
				map[string]any{"title": "One", "imageUrl": "a.jpg"},
				map[string]any{"title": "Two", "imageUrl": "b.jpg"},
			},
		},
	})
	svc := newMutationService(t, backend)

	err := svc.SaveField(context.Background(), "home", "whyBeckons.cards[1].imageUrl", "b2.webp")
	assert.NoError(err)

	cards := backend.updates[0].data["whyBeckons"].(map[string]any)["cards"].([]any)
	assert.Equal("b2.webp", cards[1].(map[string]any)["imageUrl"])
	assert.Equal("One", cards[0].(map[string]any)["title"])
}

func TestSaveFieldLoginOnce(t *testing.T) {
	assert := require.New(t)
	backend := newFakeBackend(t)
	backend.addType("page-content", "ct-1")
	backend.addEntry("ct-1", "home", map[string]any{"stickyButtonText": "Inquire"})
	svc := newMutationService(t, backend)

	assert.NoError(svc.SaveField(context.Background(), "home", "stickyButtonText", "Book"))
	assert.NoError(svc.SaveField(context.Background(), "home", "stickyButtonText", "Reserve"))

	assert.Equal(1, backend.logins, "admin session is established once and reused")
}

func TestSaveFieldResolvesAcrossEditableTypes(t *testing.T) {
	assert := require.New(t)
	backend := newFakeBackend(t)
	backend.addType("page-content", "ct-1")
	backend.addType("site-settings", "ct-2")
	backend.addEntry("ct-2", "global-settings", map[string]any{"brandName": "Beckons"})
	svc := newMutationService(t, backend)

	err := svc.SaveField(context.Background(), "global-settings", "logoUrl", "logo.svg")
	assert.NoError(err)

	assert.Equal("entry-ct-2-global-settings", backend.updates[0].entryID)
	assert.Equal("logo.svg", backend.updates[0].data["logoUrl"])
	assert.Equal("Beckons", backend.updates[0].data["brandName"])
}

func TestSaveFieldUnknownEntry(t *testing.T) {
	assert := require.New(t)
	backend := newFakeBackend(t)
	backend.addType("page-content", "ct-1")
	svc := newMutationService(t, backend)

	err := svc.SaveField(context.Background(), "no-such-entry", "title", "x")
	assert.Error(err)
	assert.Empty(backend.updates)
}

func TestSaveFieldInvalidPath(t *testing.T) {
	assert := require.New(t)
	backend := newFakeBackend(t)
	backend.addType("page-content", "ct-1")
	backend.addEntry("ct-1", "home", map[string]any{"stickyButtonText": "Inquire"})
	svc := newMutationService(t, backend)

	err := svc.SaveField(context.Background(), "home", "cards[5].title", "x")
	assert.Error(err)
	assert.Empty(backend.updates, "invalid paths never reach the backend")
}

func TestSaveFieldReestablishesSessionAfterUnauthorized(t *testing.T) {
	assert := require.New(t)
	backend := newFakeBackend(t)
	backend.addType("page-content", "ct-1")
	backend.addEntry("ct-1", "home", map[string]any{"stickyButtonText": "Inquire"})
	svc := newMutationService(t, backend)

	backend.failNextUpdateUnauthorized = true
	err := svc.SaveField(context.Background(), "home", "stickyButtonText", "Book")
	assert.Error(err)

	// The expired session was dropped; the retry logs in again and succeeds.
	err = svc.SaveField(context.Background(), "home", "stickyButtonText", "Book")
	assert.NoError(err)
	assert.Equal(2, backend.logins)
}

func TestSaveFieldRequiresEntryAndField(t *testing.T) {
	assert := require.New(t)
	backend := newFakeBackend(t)
	svc := newMutationService(t, backend)

	assert.Error(svc.SaveField(context.Background(), "", "title", "x"))
	assert.Error(svc.SaveField(context.Background(), "home", "", "x"))
	assert.Equal(0, backend.logins)
}

func TestMutationServiceStaticTokenSkipsLogin(t *testing.T) {
	assert := require.New(t)
	backend := newFakeBackend(t)
	backend.addType("page-content", "ct-1")
	backend.addEntry("ct-1", "home", map[string]any{"stickyButtonText": "Inquire"})

	svc := NewMutationService(backend.client(t), "", "", "tok-static", "https://media.example.com", nil, newTestLogger(t), newTestTracker())
	assert.NoError(svc.SaveField(context.Background(), "home", "stickyButtonText", "Book"))
	assert.Equal(0, backend.logins)
}
