package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/newsdesk/portal/internal/models"
)

// listCategories returns all categories ordered by sortOrder
// GET /api/categories, GET /api/admin/categories
func (r *Router) listCategories(c *gin.Context) {
	categories, err := r.store.Categories(c.Request.Context())
	if err != nil {
		handleStoreError(c, err, "Categories", "list")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// listMenuCategories returns the categories shown in the navigation menu
// GET /api/menu-categories
func (r *Router) listMenuCategories(c *gin.Context) {
	categories, err := r.store.MenuCategories(c.Request.Context())
	if err != nil {
		handleStoreError(c, err, "Categories", "list")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// getCategoryBySlug retrieves a category by slug
// GET /api/categories/:slug
func (r *Router) getCategoryBySlug(c *gin.Context) {
	category, err := r.store.CategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleStoreError(c, err, "Category", "get")
		return
	}

	c.JSON(http.StatusOK, category)
}

// getCategoryByID retrieves a category by ID
// GET /api/admin/categories/:id
func (r *Router) getCategoryByID(c *gin.Context) {
	id, ok := parseID(c, "id", "category")
	if !ok {
		return
	}

	category, err := r.store.CategoryByID(c.Request.Context(), id)
	if err != nil {
		handleStoreError(c, err, "Category", "get")
		return
	}

	c.JSON(http.StatusOK, category)
}

// createCategory creates a new category
// POST /api/categories, POST /api/admin/categories
func (r *Router) createCategory(c *gin.Context) {
	var req models.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleValidationError(c, err)
		return
	}

	category, err := r.store.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		handleStoreError(c, err, "Category", "create")
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (r *Router) updateCategoryByID(c *gin.Context, id int64) {
	var req models.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleValidationError(c, err)
		return
	}

	category, err := r.store.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		handleStoreError(c, err, "Category", "update")
		return
	}

	c.JSON(http.StatusOK, category)
}

// updateCategory applies a partial update to a category
// PUT /api/admin/categories/:id
func (r *Router) updateCategory(c *gin.Context) {
	id, ok := parseID(c, "id", "category")
	if !ok {
		return
	}
	r.updateCategoryByID(c, id)
}

// updateCategoryBySlugParam is the public mutation route. The path position
// is shared with the slug lookup, so the numeric ID arrives in the slug
// parameter.
// PUT /api/categories/:slug
func (r *Router) updateCategoryBySlugParam(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("slug"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}
	r.updateCategoryByID(c, id)
}

func (r *Router) deleteCategoryByID(c *gin.Context, id int64) {
	if err := r.store.DeleteCategory(c.Request.Context(), id); err != nil {
		handleStoreError(c, err, "Category", "delete")
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteCategory deletes a category unless articles still reference it
// DELETE /api/admin/categories/:id
func (r *Router) deleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id", "category")
	if !ok {
		return
	}
	r.deleteCategoryByID(c, id)
}

// deleteCategoryBySlugParam is the public mutation route, with the numeric
// ID in the slug parameter.
// DELETE /api/categories/:slug
func (r *Router) deleteCategoryBySlugParam(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("slug"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}
	r.deleteCategoryByID(c, id)
}
