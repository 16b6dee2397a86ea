// Shared mapping from domain errors onto HTTP statuses, so every
// handler reports the taxonomy the same way.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MarKarl30/UTS-BackEnd-Prog/core"
)

// respondError writes the JSON error response for a service error.
// Unexpected errors collapse to an opaque 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	if le, ok := core.IsLockedOut(err); ok {
		c.JSON(http.StatusForbidden, gin.H{
			"error":             le.Error(),
			"remaining_minutes": le.RemainingMinutes,
		})
		return
	}
	switch {
	case errors.Is(err, core.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
