package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newsdesk/portal/internal/models"
)

// listSiteSettings returns all site settings ordered by key
// GET /api/admin/site-settings
func (r *Router) listSiteSettings(c *gin.Context) {
	settings, err := r.store.SiteSettings(c.Request.Context())
	if err != nil {
		handleStoreError(c, err, "Site settings", "list")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// getSiteSettingByKey retrieves a setting by key
// GET /api/admin/site-settings/:key
func (r *Router) getSiteSettingByKey(c *gin.Context) {
	setting, err := r.store.SiteSettingByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		handleStoreError(c, err, "Site setting", "get")
		return
	}

	c.JSON(http.StatusOK, setting)
}

// upsertSiteSetting creates a setting or updates the existing one with the
// same key
// POST /api/admin/site-settings
func (r *Router) upsertSiteSetting(c *gin.Context) {
	var req models.SiteSettingUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleValidationError(c, err)
		return
	}

	setting, err := r.store.UpsertSiteSetting(c.Request.Context(), &req)
	if err != nil {
		handleStoreError(c, err, "Site setting", "save")
		return
	}

	c.JSON(http.StatusOK, setting)
}
