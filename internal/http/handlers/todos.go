package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"todo_webapp/internal/domain"
	"todo_webapp/internal/logger"
	"todo_webapp/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListTodos returns every todo in insertion order.
func (h *Handler) ListTodos(c *gin.Context) {
	ctx := c.Request.Context()
	todos, err := h.Todos.List(ctx)
	if err != nil {
		logger.Error("failed to fetch todos", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todos"})
		return
	}
	if todos == nil {
		todos = []*domain.Todo{}
	}
	c.JSON(http.StatusOK, gin.H{"todos": todos})
}

func (h *Handler) GetTodo(c *gin.Context) {
	id := c.Param("id")
	todo, err := h.Todos.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		logger.Error("failed to fetch todo", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"todo": todo})
}

type createTodoRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	UserID      string     `json:"user_id"`
	DueDate     *time.Time `json:"due_date"`
}

// CreateTodo inserts a new todo. New todos always start uncompleted,
// whatever the client sent.
func (h *Handler) CreateTodo(c *gin.Context) {
	var req createTodoRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Title == "" || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and user_id are required"})
		return
	}

	todo := &domain.Todo{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}

	if err := h.Todos.Create(c.Request.Context(), todo); err != nil {
		logger.Error("failed to create todo", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"todo": todo})
}

// UpdateTodo applies a partial update: only keys present in the body change.
// A null due_date or description clears the column.
func (h *Handler) UpdateTodo(c *gin.Context) {
	id := c.Param("id")

	var raw map[string]json.RawMessage
	if err := c.BindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var upd repository.TodoUpdate

	if v, ok := raw["title"]; ok {
		var title string
		if err := json.Unmarshal(v, &title); err != nil || title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid title"})
			return
		}
		upd.Title = &title
	}
	if v, ok := raw["description"]; ok {
		var desc *string
		if err := json.Unmarshal(v, &desc); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid description"})
			return
		}
		upd.Description = desc
		upd.DescriptionSet = true
	}
	if v, ok := raw["is_completed"]; ok {
		var completed bool
		if err := json.Unmarshal(v, &completed); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid is_completed"})
			return
		}
		upd.IsCompleted = &completed
	}
	if v, ok := raw["due_date"]; ok {
		var due *time.Time
		if err := json.Unmarshal(v, &due); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_date"})
			return
		}
		upd.DueDate = due
		upd.DueDateSet = true
	}

	todo, err := h.Todos.Update(c.Request.Context(), id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		logger.Error("failed to update todo", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"todo": todo})
}

func (h *Handler) DeleteTodo(c *gin.Context) {
	id := c.Param("id")
	if err := h.Todos.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		logger.Error("failed to delete todo", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}
