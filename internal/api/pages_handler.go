package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newsdesk/portal/internal/models"
)

// getPublishedPageBySlug serves a public page. Unpublished pages are
// indistinguishable from missing ones.
// GET /api/pages/:slug
func (r *Router) getPublishedPageBySlug(c *gin.Context) {
	page, err := r.store.PageBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleStoreError(c, err, "Page", "get")
		return
	}

	if !page.IsPublished {
		respondError(c, http.StatusNotFound, "Page not found")
		return
	}

	c.JSON(http.StatusOK, page)
}

// listPages returns all pages including unpublished ones
// GET /api/admin/pages
func (r *Router) listPages(c *gin.Context) {
	pages, err := r.store.Pages(c.Request.Context())
	if err != nil {
		handleStoreError(c, err, "Pages", "list")
		return
	}

	c.JSON(http.StatusOK, pages)
}

// getPageByID retrieves a page by ID regardless of publish state
// GET /api/admin/pages/:id
func (r *Router) getPageByID(c *gin.Context) {
	id, ok := parseID(c, "id", "page")
	if !ok {
		return
	}

	page, err := r.store.PageByID(c.Request.Context(), id)
	if err != nil {
		handleStoreError(c, err, "Page", "get")
		return
	}

	c.JSON(http.StatusOK, page)
}

// createPage creates a new page
// POST /api/admin/pages
func (r *Router) createPage(c *gin.Context) {
	var req models.PageCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleValidationError(c, err)
		return
	}

	page, err := r.store.CreatePage(c.Request.Context(), &req)
	if err != nil {
		handleStoreError(c, err, "Page", "create")
		return
	}

	c.JSON(http.StatusCreated, page)
}

// updatePage applies a partial update to a page
// PUT /api/admin/pages/:id
func (r *Router) updatePage(c *gin.Context) {
	id, ok := parseID(c, "id", "page")
	if !ok {
		return
	}

	var req models.PageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleValidationError(c, err)
		return
	}

	page, err := r.store.UpdatePage(c.Request.Context(), id, &req)
	if err != nil {
		handleStoreError(c, err, "Page", "update")
		return
	}

	c.JSON(http.StatusOK, page)
}

// deletePage deletes a page
// DELETE /api/admin/pages/:id
func (r *Router) deletePage(c *gin.Context) {
	id, ok := parseID(c, "id", "page")
	if !ok {
		return
	}

	if err := r.store.DeletePage(c.Request.Context(), id); err != nil {
		handleStoreError(c, err, "Page", "delete")
		return
	}

	c.Status(http.StatusNoContent)
}
