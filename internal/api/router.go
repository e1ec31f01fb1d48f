// Package api exposes the portal's HTTP surface: public browsing endpoints
// under /api and the admin CRUD surface under /api/admin.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/newsdesk/portal/internal/config"
	"github.com/newsdesk/portal/internal/logger"
	"github.com/newsdesk/portal/internal/metrics"
	"github.com/newsdesk/portal/internal/storage"
)

const (
	healthStatusHealthy  = "healthy"
	healthStatusDegraded = "degraded"
	healthCheckTimeout   = 2 * time.Second
	serviceVersion       = "1.0.0"
)

// Router holds the API dependencies
type Router struct {
	store storage.Store
	cfg   *config.Config
	log   logger.Logger
	mtr   *metrics.Metrics
}

// NewRouter creates a new API router
func NewRouter(store storage.Store, cfg *config.Config, log logger.Logger, mtr *metrics.Metrics) *Router {
	return &Router{
		store: store,
		cfg:   cfg,
		log:   log,
		mtr:   mtr,
	}
}

// Engine builds the gin engine with all middleware and routes registered
func (r *Router) Engine() *gin.Engine {
	if !r.cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(r.log))
	engine.Use(corsMiddleware(r.cfg.Server.CORSOrigins))
	if r.mtr != nil {
		engine.Use(r.mtr.Middleware())
		engine.GET("/metrics", gin.WrapH(r.mtr.Handler()))
	}

	engine.GET("/health", r.healthCheck)

	r.setupPublicRoutes(engine)
	r.setupAdminRoutes(engine)

	return engine
}

// setupPublicRoutes registers the reader-facing endpoints. The unauthenticated
// mutation routes mirror the admin ones so lightweight deployments can run
// without the admin prefix.
func (r *Router) setupPublicRoutes(engine *gin.Engine) {
	public := engine.Group("/api")

	// Categories. The article listing shares the :slug position, so its
	// handler reads the numeric category ID out of the slug parameter.
	public.GET("/categories", r.listCategories)
	public.GET("/categories/:slug", r.getCategoryBySlug)
	public.GET("/categories/:slug/articles", r.listArticlesByCategory)
	public.POST("/categories", r.createCategory)
	public.PUT("/categories/:slug", r.updateCategoryBySlugParam)
	public.DELETE("/categories/:slug", r.deleteCategoryBySlugParam)
	public.GET("/menu-categories", r.listMenuCategories)

	// Articles
	public.GET("/articles", r.listArticles)
	public.GET("/articles/:slug", r.getArticleBySlug)
	public.POST("/articles", r.createArticle)
	public.PUT("/articles/:id", r.updateArticle)
	public.DELETE("/articles/:id", r.deleteArticle)
	public.GET("/featured", r.listFeaturedArticles)
	public.GET("/breaking", r.listBreakingNews)

	// Pages and social links
	public.GET("/pages/:slug", r.getPublishedPageBySlug)
	public.GET("/social-settings", r.listEnabledSocialSettings)
}

// setupAdminRoutes registers the CMS surface. Authentication is expected to
// be enforced by a fronting proxy.
func (r *Router) setupAdminRoutes(engine *gin.Engine) {
	admin := engine.Group("/api/admin")

	articles := admin.Group("/articles")
	articles.GET("", r.listArticles)
	articles.POST("", r.createArticle)
	articles.GET("/:id", r.getArticleByID)
	articles.PUT("/:id", r.updateArticle)
	articles.DELETE("/:id", r.deleteArticle)

	categories := admin.Group("/categories")
	categories.GET("", r.listCategories)
	categories.POST("", r.createCategory)
	categories.GET("/:id", r.getCategoryByID)
	categories.PUT("/:id", r.updateCategory)
	categories.DELETE("/:id", r.deleteCategory)

	pages := admin.Group("/pages")
	pages.GET("", r.listPages)
	pages.POST("", r.createPage)
	pages.GET("/:id", r.getPageByID)
	pages.PUT("/:id", r.updatePage)
	pages.DELETE("/:id", r.deletePage)

	social := admin.Group("/social-settings")
	social.GET("", r.listAllSocialSettings)
	social.POST("", r.createSocialSetting)
	social.PUT("/:id", r.updateSocialSetting)
	social.DELETE("/:id", r.deleteSocialSetting)

	settings := admin.Group("/site-settings")
	settings.GET("", r.listSiteSettings)
	settings.GET("/:key", r.getSiteSettingByKey)
	settings.POST("", r.upsertSiteSetting)

	media := admin.Group("/media")
	media.GET("", r.listMedia)
	media.POST("", r.createMedia)
	media.GET("/:id", r.getMediaByID)
	media.DELETE("/:id", r.deleteMedia)
}

// healthCheck reports service health, degraded when the store is unreachable
func (r *Router) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	health := gin.H{
		"status":  healthStatusHealthy,
		"service": "portal",
		"version": serviceVersion,
	}

	connected := true
	if err := r.store.Ping(ctx); err != nil {
		connected = false
		health["status"] = healthStatusDegraded
	}
	health["storage"] = gin.H{
		"driver":    r.cfg.Storage.Driver,
		"connected": connected,
	}

	c.JSON(http.StatusOK, health)
}
