package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/newsdesk/portal/internal/models"
	"github.com/newsdesk/portal/internal/storage"
)

// articleList is the paginated envelope returned by every article listing
type articleList struct {
	Articles   []models.ArticleWithCategory `json:"articles"`
	TotalCount int64                        `json:"totalCount"`
	HasMore    bool                         `json:"hasMore"`
}

func (r *Router) respondArticleList(c *gin.Context, opts storage.ListArticlesOptions) {
	ctx := c.Request.Context()
	opts.Normalize()

	articles, err := r.store.Articles(ctx, opts)
	if err != nil {
		handleStoreError(c, err, "Articles", "list")
		return
	}

	total, err := r.store.CountArticles(ctx, opts.CategoryID)
	if err != nil {
		handleStoreError(c, err, "Articles", "count")
		return
	}

	c.JSON(http.StatusOK, articleList{
		Articles:   articles,
		TotalCount: total,
		HasMore:    int64(opts.Offset+len(articles)) < total,
	})
}

// listArticles returns the paginated article listing
// GET /api/articles?limit&offset&categoryId
func (r *Router) listArticles(c *gin.Context) {
	opts := storage.ListArticlesOptions{
		Limit:  parsePositiveQuery(c, "limit", storage.DefaultArticleLimit),
		Offset: parseOffsetQuery(c),
	}

	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || categoryID <= 0 {
			respondError(c, http.StatusBadRequest, "Invalid categoryId")
			return
		}
		opts.CategoryID = &categoryID
	}

	r.respondArticleList(c, opts)
}

// listArticlesByCategory returns the paginated listing for one category.
// The path parameter is named slug because it shares a route position with
// the category-by-slug lookup, but it carries the numeric category ID.
// GET /api/categories/:slug/articles
func (r *Router) listArticlesByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("slug"), 10, 64)
	if err != nil || categoryID <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	opts := storage.ListArticlesOptions{
		Limit:      parsePositiveQuery(c, "limit", storage.DefaultArticleLimit),
		Offset:     parseOffsetQuery(c),
		CategoryID: &categoryID,
	}

	r.respondArticleList(c, opts)
}

// getArticleBySlug retrieves an article by slug
// GET /api/articles/:slug
func (r *Router) getArticleBySlug(c *gin.Context) {
	article, err := r.store.ArticleBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleStoreError(c, err, "Article", "get")
		return
	}

	c.JSON(http.StatusOK, article)
}

// getArticleByID retrieves an article by ID
// GET /api/admin/articles/:id
func (r *Router) getArticleByID(c *gin.Context) {
	id, ok := parseID(c, "id", "article")
	if !ok {
		return
	}

	article, err := r.store.ArticleByID(c.Request.Context(), id)
	if err != nil {
		handleStoreError(c, err, "Article", "get")
		return
	}

	c.JSON(http.StatusOK, article)
}

// listFeaturedArticles returns the featured selection
// GET /api/featured?limit
func (r *Router) listFeaturedArticles(c *gin.Context) {
	limit := parsePositiveQuery(c, "limit", storage.DefaultFeaturedLimit)

	articles, err := r.store.FeaturedArticles(c.Request.Context(), limit)
	if err != nil {
		handleStoreError(c, err, "Articles", "list")
		return
	}

	c.JSON(http.StatusOK, articles)
}

// listBreakingNews returns the breaking news selection
// GET /api/breaking?limit
func (r *Router) listBreakingNews(c *gin.Context) {
	limit := parsePositiveQuery(c, "limit", storage.DefaultBreakingLimit)

	articles, err := r.store.BreakingNews(c.Request.Context(), limit)
	if err != nil {
		handleStoreError(c, err, "Articles", "list")
		return
	}

	c.JSON(http.StatusOK, articles)
}

// createArticle creates a new article
// POST /api/articles, POST /api/admin/articles
func (r *Router) createArticle(c *gin.Context) {
	var req models.ArticleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleValidationError(c, err)
		return
	}

	article, err := r.store.CreateArticle(c.Request.Context(), &req)
	if err != nil {
		handleStoreError(c, err, "Article", "create")
		return
	}

	c.JSON(http.StatusCreated, article)
}

// updateArticle applies a partial update to an article
// PUT /api/articles/:id, PUT /api/admin/articles/:id
func (r *Router) updateArticle(c *gin.Context) {
	id, ok := parseID(c, "id", "article")
	if !ok {
		return
	}

	var req models.ArticleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleValidationError(c, err)
		return
	}

	article, err := r.store.UpdateArticle(c.Request.Context(), id, &req)
	if err != nil {
		handleStoreError(c, err, "Article", "update")
		return
	}

	c.JSON(http.StatusOK, article)
}

// deleteArticle deletes an article
// DELETE /api/articles/:id, DELETE /api/admin/articles/:id
func (r *Router) deleteArticle(c *gin.Context) {
	id, ok := parseID(c, "id", "article")
	if !ok {
		return
	}

	if err := r.store.DeleteArticle(c.Request.Context(), id); err != nil {
		handleStoreError(c, err, "Article", "delete")
		return
	}

	c.Status(http.StatusNoContent)
}
