package handlers

import (
	"net/http"
	"strings"

	"tasklist/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateUser(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		badRequest(c, "name is required")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		badRequest(c, "email is required")
		return
	}

	user := &domain.User{Name: req.Name, Email: req.Email}
	if err := h.Users.Create(c.Request.Context(), user); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
