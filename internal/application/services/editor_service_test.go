package services

import (
	"testing"
	"time"

	"github.com/BaillieLodges/beckons-go/internal/infrastructure/security"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newEditorService(t *testing.T, password string) *EditorService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return NewEditorService(string(hash), "test-jwt-secret", time.Hour, newTestLogger(t))
}

func TestEditorAuthenticateSuccess(t *testing.T) {
	assert := require.New(t)
	svc := newEditorService(t, "editor-pass")

	result := svc.Authenticate("editor-pass")
	assert.True(result.Success)
	assert.NotEmpty(result.Token)
	assert.Equal("editor", result.Role)

	claims, err := security.ValidateEditorToken(result.Token, "test-jwt-secret")
	assert.NoError(err)
	assert.Equal("editor", claims["role"])
}

func TestEditorAuthenticateWrongPassword(t *testing.T) {
	assert := require.New(t)
	svc := newEditorService(t, "editor-pass")

	result := svc.Authenticate("wrong")
	assert.False(result.Success)
	assert.Empty(result.Token)
	assert.NotEmpty(result.Error)
}

func TestEditorAuthenticateNotConfigured(t *testing.T) {
	assert := require.New(t)
	svc := NewEditorService("", "test-jwt-secret", time.Hour, newTestLogger(t))

	result := svc.Authenticate("anything")
	assert.False(result.Success)
	assert.Contains(result.Error, "not configured")
}

func TestEditorValidateSession(t *testing.T) {
	assert := require.New(t)
	svc := newEditorService(t, "editor-pass")

	result := svc.Authenticate("editor-pass")
	assert.True(result.Success)

	assert.True(svc.ValidateSession(result.Token))
	assert.False(svc.ValidateSession("not-a-token"))
	assert.False(svc.ValidateSession(""))
}

func TestEditorSessionRejectsForeignSecret(t *testing.T) {
	assert := require.New(t)

	token, err := security.GenerateEditorToken("other-secret", time.Hour)
	assert.NoError(err)

	svc := newEditorService(t, "editor-pass")
	assert.False(svc.ValidateSession(token))
}

func TestEditorSessionRejectsExpiredToken(t *testing.T) {
	assert := require.New(t)

	token, err := security.GenerateEditorToken("test-jwt-secret", -time.Minute)
	assert.NoError(err)

	svc := newEditorService(t, "editor-pass")
	assert.False(svc.ValidateSession(token))
}
