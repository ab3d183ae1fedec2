package middleware

import (
	"github.com/BaillieLodges/beckons-go/internal/application/services"
	"github.com/gin-gonic/gin"
)

const (
	// EditModeCookie flags that the browser wants the inline editor active.
	EditModeCookie = "cms-edit-mode"
	// EditorAuthCookie carries the editor session JWT.
	EditorAuthCookie = "editor_auth"

	editModeContextKey = "editMode"
)

// EditModeMiddleware resolves whether the request runs in edit mode: the
// edit-mode cookie must be set and the editor session token must validate.
// Pages render read-only when either is missing.
func EditModeMiddleware(editorService *services.EditorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		editMode := false

		if flag, err := c.Cookie(EditModeCookie); err == nil && flag == "true" {
			if token, err := c.Cookie(EditorAuthCookie); err == nil {
				editMode = editorService.ValidateSession(token)
			}
		}

		c.Set(editModeContextKey, editMode)
		c.Next()
	}
}

// GetEditMode reports whether the request runs in edit mode.
func GetEditMode(c *gin.Context) bool {
	editMode, exists := c.Get(editModeContextKey)
	if !exists {
		return false
	}
	enabled, ok := editMode.(bool)
	return ok && enabled
}

// RequireEditorSession rejects requests without a valid editor session token,
// accepting either the session cookie or a bearer header.
func RequireEditorSession(editorService *services.EditorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(EditorAuthCookie)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				token = authHeader[7:]
			}
		}

		if !editorService.ValidateSession(token) {
			c.AbortWithStatusJSON(401, gin.H{"error": "editor session required"})
			return
		}
		c.Next()
	}
}
