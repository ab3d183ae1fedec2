package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/BaillieLodges/beckons-go/internal/infrastructure/cms"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/logging"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/performance"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	cfg := logging.DefaultLoggerConfig()
	cfg.DefaultLevel = slog.LevelError
	logger, err := logging.NewChanneledLogger(cfg)
	require.NoError(t, err)
	return logger
}

func newTestTracker() *performance.Tracker {
	return performance.NewTracker(performance.DefaultTrackerConfig())
}

// fakeBackend is an in-memory CMS backend behind an httptest server. It serves
// the GraphQL operations the services issue and counts what it saw.
type fakeBackend struct {
	mu sync.Mutex

	types   map[string]string         // type slug -> id
	entries map[string]map[string]any // "<typeID>/<entrySlug>" -> data payload

	typeQueries  int
	entryQueries int
	logins       int
	updates      []updateCall

	failNextUpdateUnauthorized bool

	server *httptest.Server
}

type updateCall struct {
	entryID string
	data    map[string]any
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{
		types:   make(map[string]string),
		entries: make(map[string]map[string]any),
	}
	b.server = httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(b.server.Close)
	return b
}

func (b *fakeBackend) addType(slug, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.types[slug] = id
}

func (b *fakeBackend) addEntry(typeID, entrySlug string, data map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[typeID+"/"+entrySlug] = data
}

func (b *fakeBackend) client(t *testing.T) *cms.Client {
	t.Helper()
	return cms.NewClient(b.server.URL, "org-test", 5*time.Second, nil)
}

func (b *fakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	respond := func(data any) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"data": data})
	}
	respondError := func(code, message string) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": nil,
			"errors": []map[string]any{{
				"message":    message,
				"extensions": map[string]any{"code": code},
			}},
		})
	}

	switch {
	case strings.Contains(req.Query, "contentTypeBySlug"):
		b.typeQueries++
		slug, _ := req.Variables["slug"].(string)
		id, ok := b.types[slug]
		if !ok {
			respond(map[string]any{"contentTypeBySlug": nil})
			return
		}
		respond(map[string]any{"contentTypeBySlug": map[string]any{"id": id, "slug": slug}})

	case strings.Contains(req.Query, "contentEntryBySlug"):
		b.entryQueries++
		slug, _ := req.Variables["slug"].(string)
		typeID, _ := req.Variables["contentTypeId"].(string)
		data, ok := b.entries[typeID+"/"+slug]
		if !ok {
			respond(map[string]any{"contentEntryBySlug": nil})
			return
		}
		respond(map[string]any{"contentEntryBySlug": map[string]any{
			"id":   "entry-" + typeID + "-" + slug,
			"slug": slug,
			"data": data,
		}})

	case strings.Contains(req.Query, "login"):
		b.logins++
		respond(map[string]any{"login": map[string]any{
			"accessToken":  fmt.Sprintf("tok-%d", b.logins),
			"refreshToken": "refresh",
			"user":         map[string]any{"id": "u-1", "email": "admin@example.com"},
		}})

	case strings.Contains(req.Query, "updateContentEntry"):
		if b.failNextUpdateUnauthorized {
			b.failNextUpdateUnauthorized = false
			respondError("UNAUTHENTICATED", "token expired")
			return
		}
		id, _ := req.Variables["id"].(string)
		input, _ := req.Variables["input"].(map[string]any)
		data, _ := input["data"].(map[string]any)
		b.updates = append(b.updates, updateCall{entryID: id, data: data})
		respond(map[string]any{"updateContentEntry": map[string]any{"id": id, "slug": "updated"}})

	default:
		respondError("", "unsupported operation")
	}
}
