package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskflow/internal/apperrors"
	"taskflow/internal/middleware"
)

// parseIDParam reads the :id path parameter as an unsigned integer
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
		return 0, false
	}
	return uint(id), true
}

// principalEmail returns the authenticated identity placed in the context
// by the auth middleware
func principalEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get(middleware.UserEmailKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return "", false
	}
	email, ok := value.(string)
	if !ok || email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return "", false
	}
	return email, true
}

// abortWithError maps an application error to its transport status
func abortWithError(c *gin.Context, err error) {
	c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
}
