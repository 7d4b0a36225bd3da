package handlers

import (
	"errors"
	"net/http"

	"tasklist/internal/logger"
	"tasklist/internal/repository"

	"github.com/gin-gonic/gin"
)

// storeError converts repository errors to the JSON error envelope.
// Raw store error text never reaches the client.
func storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, repository.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
	case errors.Is(err, repository.ErrUserMissing):
		c.JSON(http.StatusConflict, gin.H{"error": "referenced user does not exist"})
	default:
		logger.Error("store error", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
