package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newsdesk/portal/internal/models"
)

// listMedia returns all media records, most recently uploaded first
// GET /api/admin/media
func (r *Router) listMedia(c *gin.Context) {
	media, err := r.store.Media(c.Request.Context())
	if err != nil {
		handleStoreError(c, err, "Media", "list")
		return
	}

	c.JSON(http.StatusOK, media)
}

// getMediaByID retrieves a media record by ID
// GET /api/admin/media/:id
func (r *Router) getMediaByID(c *gin.Context) {
	id, ok := parseID(c, "id", "media")
	if !ok {
		return
	}

	m, err := r.store.MediaByID(c.Request.Context(), id)
	if err != nil {
		handleStoreError(c, err, "Media", "get")
		return
	}

	c.JSON(http.StatusOK, m)
}

// createMedia registers metadata for an asset uploaded elsewhere
// POST /api/admin/media
func (r *Router) createMedia(c *gin.Context) {
	var req models.MediaCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleValidationError(c, err)
		return
	}

	m, err := r.store.CreateMedia(c.Request.Context(), &req)
	if err != nil {
		handleStoreError(c, err, "Media", "create")
		return
	}

	c.JSON(http.StatusCreated, m)
}

// deleteMedia deletes a media record
// DELETE /api/admin/media/:id
func (r *Router) deleteMedia(c *gin.Context) {
	id, ok := parseID(c, "id", "media")
	if !ok {
		return
	}

	if err := r.store.DeleteMedia(c.Request.Context(), id); err != nil {
		handleStoreError(c, err, "Media", "delete")
		return
	}

	c.Status(http.StatusNoContent)
}
