package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/dhruvsolvzz/SHOPING-CART/internal/entity"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/logging"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/usecase"
)

// respondError maps the error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is an internal failure: logged in full, surfaced as a generic
// message with no detail leakage.
func respondError(c *gin.Context, err error) {
	switch {
	case domain.NotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case domain.Invalid(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, usecase.ErrDuplicateCheckout):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logging.From(c).Error("request failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
