package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newsdesk/portal/internal/models"
)

// listEnabledSocialSettings returns the enabled social links for the public site
// GET /api/social-settings
func (r *Router) listEnabledSocialSettings(c *gin.Context) {
	settings, err := r.store.SocialSettings(c.Request.Context(), true)
	if err != nil {
		handleStoreError(c, err, "Social settings", "list")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// listAllSocialSettings returns all social links including disabled ones
// GET /api/admin/social-settings
func (r *Router) listAllSocialSettings(c *gin.Context) {
	settings, err := r.store.SocialSettings(c.Request.Context(), false)
	if err != nil {
		handleStoreError(c, err, "Social settings", "list")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// createSocialSetting creates a new social link
// POST /api/admin/social-settings
func (r *Router) createSocialSetting(c *gin.Context) {
	var req models.SocialSettingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleValidationError(c, err)
		return
	}

	setting, err := r.store.CreateSocialSetting(c.Request.Context(), &req)
	if err != nil {
		handleStoreError(c, err, "Social setting", "create")
		return
	}

	c.JSON(http.StatusCreated, setting)
}

// updateSocialSetting applies a partial update to a social link
// PUT /api/admin/social-settings/:id
func (r *Router) updateSocialSetting(c *gin.Context) {
	id, ok := parseID(c, "id", "social setting")
	if !ok {
		return
	}

	var req models.SocialSettingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleValidationError(c, err)
		return
	}

	setting, err := r.store.UpdateSocialSetting(c.Request.Context(), id, &req)
	if err != nil {
		handleStoreError(c, err, "Social setting", "update")
		return
	}

	c.JSON(http.StatusOK, setting)
}

// deleteSocialSetting deletes a social link
// DELETE /api/admin/social-settings/:id
func (r *Router) deleteSocialSetting(c *gin.Context) {
	id, ok := parseID(c, "id", "social setting")
	if !ok {
		return
	}

	if err := r.store.DeleteSocialSetting(c.Request.Context(), id); err != nil {
		handleStoreError(c, err, "Social setting", "delete")
		return
	}

	c.Status(http.StatusNoContent)
}
