package cms

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInlineEditorUploadFile(t *testing.T) {
	assert := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/api/inline-editor/media/upload", r.URL.Path)
		assert.Equal("beckons", r.Header.Get("X-CMS-Org"))
		assert.Equal("Bearer tok-1", r.Header.Get("Authorization"))

		assert.NoError(r.ParseMultipartForm(1 << 20))
		file, header, err := r.FormFile("file")
		assert.NoError(err)
		defer file.Close()

		assert.Equal("hero-poster.jpg", header.Filename)
		assert.Equal("image/jpeg", header.Header.Get("Content-Type"))

		body, err := io.ReadAll(file)
		assert.NoError(err)
		assert.Equal([]byte("jpeg-bytes"), body)

		json.NewEncoder(w).Encode(map[string]string{"url": "https://media.example.com/hero-poster.jpg"})
	}))
	defer server.Close()

	editor := NewInlineEditorClient(server.URL, "beckons", "tok-1", 5*time.Second, nil)
	url, err := editor.UploadFile(context.Background(), "hero-poster.jpg", []byte("jpeg-bytes"), "image/jpeg")
	assert.NoError(err)
	assert.Equal("https://media.example.com/hero-poster.jpg", url)
}

func TestInlineEditorUploadFileRejectsEmpty(t *testing.T) {
	assert := require.New(t)
	editor := NewInlineEditorClient("http://unused", "beckons", "tok", time.Second, nil)

	_, err := editor.UploadFile(context.Background(), "a.jpg", nil, "image/jpeg")
	assert.Error(err)
}

func TestInlineEditorUploadFileUnauthorized(t *testing.T) {
	assert := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	editor := NewInlineEditorClient(server.URL, "beckons", "expired", time.Second, nil)
	_, err := editor.UploadFile(context.Background(), "a.jpg", []byte("x"), "image/jpeg")
	assert.True(IsUnauthorized(err))
}

func TestInlineEditorUploadFileConflict(t *testing.T) {
	assert := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	editor := NewInlineEditorClient(server.URL, "beckons", "tok", time.Second, nil)
	_, err := editor.UploadFile(context.Background(), "a.jpg", []byte("x"), "image/jpeg")
	assert.True(IsAlreadyExists(err))
}

func TestInlineEditorSaveField(t *testing.T) {
	assert := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/api/inline-editor/save", r.URL.Path)
		assert.Equal("application/json", r.Header.Get("Content-Type"))
		assert.Equal("beckons", r.Header.Get("X-CMS-Org"))

		var payload map[string]string
		assert.NoError(json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal("home", payload["entry"])
		assert.Equal("whyBeckons.cards[0].imageUrl", payload["field"])
		assert.Equal("https://media.example.com/card.webp", payload["value"])

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	editor := NewInlineEditorClient(server.URL, "beckons", "tok", 5*time.Second, nil)
	err := editor.SaveField(context.Background(), "home", "whyBeckons.cards[0].imageUrl", "https://media.example.com/card.webp")
	assert.NoError(err)
}

func TestInlineEditorSaveFieldFailureDetail(t *testing.T) {
	assert := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"unknown field"}`))
	}))
	defer server.Close()

	editor := NewInlineEditorClient(server.URL, "beckons", "tok", time.Second, nil)
	err := editor.SaveField(context.Background(), "home", "nope", "x")
	assert.Error(err)
	assert.Contains(err.Error(), "unknown field")
}
