package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/newsdesk/portal/internal/models"
)

// errorBody is the JSON shape of every error response
type errorBody struct {
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, errorBody{Message: message})
}

// parseID parses a numeric ID from a gin.Context parameter
func parseID(c *gin.Context, paramName, entityType string) (int64, bool) {
	idParam := c.Param(paramName)
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid "+entityType+" ID")
		return 0, false
	}
	return id, true
}

// parsePositiveQuery reads a positive integer query parameter, falling back
// to def for missing, non-numeric or non-positive values
func parsePositiveQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return def
	}
	return val
}

// parseOffsetQuery reads the offset query parameter, falling back to zero
func parseOffsetQuery(c *gin.Context) int {
	raw := c.Query("offset")
	if raw == "" {
		return 0
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return 0
	}
	return val
}

// handleStoreError translates storage errors into HTTP responses
func handleStoreError(c *gin.Context, err error, entityType, operation string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		respondError(c, http.StatusNotFound, entityType+" not found")
	case errors.Is(err, models.ErrCategoryInUse):
		respondError(c, http.StatusConflict, "Category still has articles assigned")
	case errors.Is(err, models.ErrAlreadyExists):
		respondError(c, http.StatusConflict, entityType+" with this identifier already exists")
	case errors.Is(err, models.ErrInvalidCategory):
		respondError(c, http.StatusBadRequest, "Referenced category does not exist")
	case errors.Is(err, models.ErrNoFieldsToUpdate):
		respondError(c, http.StatusBadRequest, "At least one field must be provided for update")
	default:
		respondError(c, http.StatusInternalServerError, "Failed to "+operation+" "+entityType)
	}
}

// handleValidationError handles request validation errors
func handleValidationError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrNoFieldsToUpdate) {
		respondError(c, http.StatusBadRequest, "At least one field must be provided for update")
		return
	}
	respondError(c, http.StatusBadRequest, err.Error())
}

// handleBindError handles JSON binding failures
func handleBindError(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
}
