package handlers

import (
	"net/http"

	"todo_webapp/internal/domain"
	"todo_webapp/internal/logger"

	"github.com/gin-gonic/gin"
)

// ListUsers returns all users, unfiltered.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to fetch users", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	if users == nil {
		users = []*domain.User{}
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
