package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/BaillieLodges/beckons-go/internal/application/services"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/media"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/messaging"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/logging"
	"github.com/BaillieLodges/beckons-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const maxUploadBytes = 20 << 20 // 20 MB

var previewUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Same-origin pages only; the preview socket carries no secrets but
		// there is no reason to serve foreign embedders.
		return true
	},
}

// EditorHandlers contains the inline-editor HTTP handlers.
type EditorHandlers struct {
	editorService   *services.EditorService
	mutationService *services.MutationService
	broadcaster     *messaging.PreviewBroadcaster
	logger          *logging.ChanneledLogger
}

// NewEditorHandlers creates editor handlers with injected dependencies
func NewEditorHandlers(editorService *services.EditorService, mutationService *services.MutationService, broadcaster *messaging.PreviewBroadcaster, logger *logging.ChanneledLogger) *EditorHandlers {
	return &EditorHandlers{
		editorService:   editorService,
		mutationService: mutationService,
		broadcaster:     broadcaster,
		logger:          logger,
	}
}

// PostLogin handles POST /api/editor/login - editor authentication
func (h *EditorHandlers) PostLogin(c *gin.Context) {
	var loginReq struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result := h.editorService.Authenticate(loginReq.Password)
	if !result.Success {
		c.JSON(http.StatusUnauthorized, gin.H{"error": result.Error})
		return
	}

	maxAge := int(h.editorService.SessionTTL().Seconds())
	c.SetCookie(middleware.EditorAuthCookie, result.Token, maxAge, "/", "", false, true)
	// Readable by the editor script, so not httpOnly.
	c.SetCookie(middleware.EditModeCookie, "true", maxAge, "/", "", false, false)

	c.JSON(http.StatusOK, gin.H{"success": true, "role": result.Role})
}

// PostLogout handles POST /api/editor/logout - clears the editor session
func (h *EditorHandlers) PostLogout(c *gin.Context) {
	c.SetCookie(middleware.EditorAuthCookie, "", -1, "/", "", false, true)
	c.SetCookie(middleware.EditModeCookie, "", -1, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetStatus handles GET /api/editor/status - reports whether edit mode is active
func (h *EditorHandlers) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"editMode": middleware.GetEditMode(c)})
}

// PostSave handles POST /api/inline-editor/save - single-field entry update
func (h *EditorHandlers) PostSave(c *gin.Context) {
	var saveReq struct {
		Entry string `json:"entry" binding:"required"`
		Field string `json:"field" binding:"required"`
		Value any    `json:"value"`
	}
	if err := c.ShouldBindJSON(&saveReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.mutationService.SaveField(c.Request.Context(), saveReq.Entry, saveReq.Field, saveReq.Value); err != nil {
		h.logger.Editor().Error("Inline save failed", "entryId", saveReq.Entry, "field", saveReq.Field, "error", err.Error())
		c.JSON(http.StatusBadGateway, gin.H{"error": "Save failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PostMediaUpload handles POST /api/inline-editor/media/upload - multipart asset upload
func (h *EditorHandlers) PostMediaUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil || int64(len(data)) > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable file"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = media.MimeTypeForFilename(fileHeader.Filename)
	}
	alt := c.PostForm("alt")

	url, _, err := h.mutationService.UploadMedia(c.Request.Context(), data, fileHeader.Filename, mimeType, alt)
	if err != nil {
		h.logger.Media().Error("Media upload failed", "filename", fileHeader.Filename, "error", err.Error())
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// GetPreviewSocket handles GET /api/editor/preview - live preview websocket
func (h *EditorHandlers) GetPreviewSocket(c *gin.Context) {
	conn, err := previewUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Editor().Error("Preview socket upgrade failed", "error", err.Error())
		return
	}

	client := &messaging.PreviewClient{
		Conn: conn,
		Send: make(chan []byte, 16),
	}
	h.broadcaster.Register(client)

	go client.WritePump(30 * time.Second)
	go client.ReadPump(h.broadcaster)
}
