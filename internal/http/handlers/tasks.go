package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"tasklist/internal/domain"

	"github.com/gin-gonic/gin"
)

// ListTasks returns every task, most recently created first.
// An empty table yields {"tasks": []}, never null.
func (h *Handler) ListTasks(c *gin.Context) {
	tasks, err := h.Tasks.List(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *Handler) GetTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	task, err := h.Tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (h *Handler) CreateTask(c *gin.Context) {
	var req struct {
		UserID      int64   `json:"userId"`
		Title       string  `json:"title"`
		Description *string `json:"description"`
	}
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.UserID <= 0 {
		badRequest(c, "userId is required")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		badRequest(c, "title is required")
		return
	}

	task := &domain.Task{UserID: req.UserID, Title: req.Title, Description: req.Description}
	if err := h.Tasks.Create(c.Request.Context(), task); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": task})
}

func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Completed   *bool   `json:"completed"`
	}
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		badRequest(c, "title must not be empty")
		return
	}

	ctx := c.Request.Context()
	task, err := h.Tasks.GetByID(ctx, id)
	if err != nil {
		storeError(c, err)
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := h.Tasks.Update(ctx, task); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (h *Handler) CompleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Tasks.SetCompleted(c.Request.Context(), id, true); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Tasks.Delete(c.Request.Context(), id); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// pathID parses the :id path parameter, writing a 400 on failure.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
