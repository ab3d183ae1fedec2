// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"net/http"

	"github.com/BaillieLodges/beckons-go/internal/application/container"
	"github.com/BaillieLodges/beckons-go/internal/presentation/http/handlers"
	"github.com/BaillieLodges/beckons-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(c *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware(nil))
	r.Use(middleware.EditModeMiddleware(c.EditorService))

	// Static assets for the rendered pages and the inline editor script.
	r.Static("/static", "web/static")
	r.StaticFile("/favicon.ico", "web/static/favicon.ico")

	// Initialize handlers
	pageHandlers := handlers.NewPageHandlers(c.ContentService, c.Logger, c.PerfTracker)
	leadHandlers := handlers.NewLeadHandlers(c.LeadService, c.Logger)
	editorHandlers := handlers.NewEditorHandlers(c.EditorService, c.MutationService, c.Broadcaster, c.Logger)

	// Site pages
	r.GET("/", pageHandlers.GetHome)
	r.GET("/inquire", pageHandlers.GetInquire)
	r.GET("/email-subscription", pageHandlers.GetEmailSubscription)
	r.GET("/thank-you", pageHandlers.GetThankYou)

	// Form submissions
	api := r.Group("/api")
	{
		api.POST("/inquiries", leadHandlers.PostInquiry)
		api.POST("/subscriptions", leadHandlers.PostSubscription)

		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Editor session endpoints
		editor := api.Group("/editor")
		{
			editor.POST("/login", editorHandlers.PostLogin)
			editor.POST("/logout", editorHandlers.PostLogout)
			editor.GET("/status", editorHandlers.GetStatus)
			editor.GET("/preview", editorHandlers.GetPreviewSocket)
		}

		// Inline-editor endpoints require a valid editor session
		inlineEditor := api.Group("/inline-editor")
		inlineEditor.Use(middleware.RequireEditorSession(c.EditorService))
		{
			inlineEditor.POST("/save", editorHandlers.PostSave)
			inlineEditor.POST("/media/upload", editorHandlers.PostMediaUpload)
		}
	}

	return r
}
