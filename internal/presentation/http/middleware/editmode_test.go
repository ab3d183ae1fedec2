package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BaillieLodges/beckons-go/internal/application/services"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "editor-pass"

func newEditorService(t *testing.T) *services.EditorService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := logging.DefaultLoggerConfig()
	logger, err := logging.NewChanneledLogger(cfg)
	require.NoError(t, err)
	return services.NewEditorService(string(hash), "test-secret", time.Hour, logger)
}

func sessionToken(t *testing.T, svc *services.EditorService) string {
	t.Helper()
	result := svc.Authenticate(testPassword)
	require.True(t, result.Success)
	return result.Token
}

func editModeRouter(svc *services.EditorService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(EditModeMiddleware(svc))
	r.GET("/", func(c *gin.Context) {
		if GetEditMode(c) {
			c.String(http.StatusOK, "editing")
			return
		}
		c.String(http.StatusOK, "read-only")
	})
	return r
}

func TestEditModeRequiresBothCookies(t *testing.T) {
	assert := require.New(t)
	svc := newEditorService(t)
	router := editModeRouter(svc)
	token := sessionToken(t, svc)

	cases := []struct {
		name    string
		cookies []*http.Cookie
		want    string
	}{
		{"no cookies", nil, "read-only"},
		{"flag only", []*http.Cookie{{Name: EditModeCookie, Value: "true"}}, "read-only"},
		{"session only", []*http.Cookie{{Name: EditorAuthCookie, Value: token}}, "read-only"},
		{"flag not true", []*http.Cookie{
			{Name: EditModeCookie, Value: "yes"},
			{Name: EditorAuthCookie, Value: token},
		}, "read-only"},
		{"invalid session", []*http.Cookie{
			{Name: EditModeCookie, Value: "true"},
			{Name: EditorAuthCookie, Value: "garbage"},
		}, "read-only"},
		{"both valid", []*http.Cookie{
			{Name: EditModeCookie, Value: "true"},
			{Name: EditorAuthCookie, Value: token},
		}, "editing"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for _, cookie := range tc.cookies {
				req.AddCookie(cookie)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(http.StatusOK, w.Code)
			assert.Equal(tc.want, w.Body.String())
		})
	}
}

func TestGetEditModeWithoutMiddleware(t *testing.T) {
	assert := require.New(t)
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.False(GetEditMode(c))
}

func TestRequireEditorSession(t *testing.T) {
	assert := require.New(t)
	svc := newEditorService(t)
	token := sessionToken(t, svc)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/save", RequireEditorSession(svc), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// No credentials.
	req := httptest.NewRequest(http.MethodPost, "/save", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(http.StatusUnauthorized, w.Code)

	// Session cookie.
	req = httptest.NewRequest(http.MethodPost, "/save", nil)
	req.AddCookie(&http.Cookie{Name: EditorAuthCookie, Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(http.StatusOK, w.Code)

	// Bearer header.
	req = httptest.NewRequest(http.MethodPost, "/save", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(http.StatusOK, w.Code)

	// Garbage token.
	req = httptest.NewRequest(http.MethodPost, "/save", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(http.StatusUnauthorized, w.Code)
}
