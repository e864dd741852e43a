package attachment

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/flowhub/flowhub/internal/process/model"
)

// Router exposes attachment upload, download and deletion for board tasks.
type Router struct {
	svc *Service
}

func NewRouter(svc *Service) *Router {
	return &Router{svc: svc}
}

// Upload handles POST /api/tasks/:id/attachments with a multipart "file" field.
func (r *Router) Upload(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'id' path parameter: " + err.Error()})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'file' form field: " + err.Error()})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file: " + err.Error()})
		return
	}
	defer file.Close()

	att, err := r.svc.Upload(c.Request.Context(), taskID, header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		r.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, att)
}

// List handles GET /api/tasks/:id/attachments.
func (r *Router) List(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'id' path parameter: " + err.Error()})
		return
	}

	attachments, err := r.svc.ListByTask(c.Request.Context(), taskID)
	if err != nil {
		r.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attachments)
}

// Download handles GET /api/attachments/:key and streams the object.
func (r *Router) Download(c *gin.Context) {
	reader, mime, err := r.svc.Open(c.Request.Context(), c.Param("key"))
	if err != nil {
		r.respondError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Type", mime)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		slog.WarnContext(c.Request.Context(), "attachment stream interrupted", "key", c.Param("key"), "error", err)
	}
}

// Delete handles DELETE /api/attachments/:id.
func (r *Router) Delete(c *gin.Context) {
	attachmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'id' path parameter: " + err.Error()})
		return
	}

	if err := r.svc.Delete(c.Request.Context(), attachmentID); err != nil {
		r.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) respondError(c *gin.Context, err error) {
	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, model.ErrInvalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	slog.ErrorContext(c.Request.Context(), "attachment request failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
