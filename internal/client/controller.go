package client

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"todo_webapp/internal/domain"

	"github.com/google/uuid"
)

// NoticeLevel classifies controller notifications.
type NoticeLevel int

const (
	NoticeSuccess NoticeLevel = iota
	NoticeError
)

// Notifier receives transient user-facing messages from the controller.
type Notifier func(level NoticeLevel, msg string)

// Controller owns the in-memory todo list and keeps it in sync with the API.
// Toggle and Delete apply their mutation locally before the network call and
// roll it back if the call fails. The controller is meant to be driven from a
// single goroutine; it does no internal locking.
type Controller struct {
	api        *Client
	anonUserID string
	notify     Notifier
	todos      []domain.Todo

	now func() time.Time
}

// NewController creates a controller backed by api. Todos created without a
// signed-in user are attributed to anonUserID; when empty, a random UUID is
// generated once and used for the controller's lifetime. notify may be nil.
func NewController(api *Client, anonUserID string, notify Notifier) *Controller {
	if anonUserID == "" {
		anonUserID = uuid.NewString()
	}
	if notify == nil {
		notify = func(NoticeLevel, string) {}
	}
	return &Controller{
		api:        api,
		anonUserID: anonUserID,
		notify:     notify,
		now:        time.Now,
	}
}

// Todos returns a copy of the current list in server order.
func (c *Controller) Todos() []domain.Todo {
	return slices.Clone(c.todos)
}

// Refresh replaces the local list with the server's. On failure the list is
// cleared rather than left stale.
func (c *Controller) Refresh(ctx context.Context) error {
	todos, err := c.api.ListTodos(ctx)
	if err != nil {
		c.todos = nil
		return err
	}
	c.todos = todos
	return nil
}

// Toggle flips completion of the todo with the given id. The flip is applied
// locally first; if the server rejects it the prior state is restored. The
// todo's position in the list never changes.
func (c *Controller) Toggle(ctx context.Context, id string) error {
	i := slices.IndexFunc(c.todos, func(t domain.Todo) bool { return t.ID == id })
	if i < 0 {
		return fmt.Errorf("todo %s not in local list", id)
	}

	prevCompleted := c.todos[i].IsCompleted
	prevCompletedAt := c.todos[i].CompletedAt

	completed := !prevCompleted
	c.todos[i].IsCompleted = completed
	if completed {
		now := c.now()
		c.todos[i].CompletedAt = &now
	} else {
		c.todos[i].CompletedAt = nil
	}
	c.todos[i].UpdatedAt = c.now()

	updated, err := c.api.UpdateTodo(ctx, id, UpdateTodoRequest{IsCompleted: &completed})
	if err != nil {
		c.todos[i].IsCompleted = prevCompleted
		c.todos[i].CompletedAt = prevCompletedAt
		c.notify(NoticeError, "Failed to update todo")
		return err
	}

	// server is authoritative for completed_at/updated_at precision
	c.todos[i] = *updated
	return nil
}

// Delete removes the todo locally, then on the server. On failure the todo is
// re-inserted at its original index.
func (c *Controller) Delete(ctx context.Context, id string) error {
	i := slices.IndexFunc(c.todos, func(t domain.Todo) bool { return t.ID == id })
	if i < 0 {
		return fmt.Errorf("todo %s not in local list", id)
	}

	removed := c.todos[i]
	c.todos = slices.Delete(c.todos, i, i+1)

	if err := c.api.DeleteTodo(ctx, id); err != nil {
		c.todos = slices.Insert(c.todos, i, removed)
		c.notify(NoticeError, "Failed to delete todo")
		return err
	}

	c.notify(NoticeSuccess, "Todo deleted")
	return nil
}

// Add creates a new todo with an optional due date. Whitespace-only titles
// are ignored. The list is only updated after the server confirms, via a full
// refetch.
func (c *Controller) Add(ctx context.Context, title string, due *time.Time) error {
	if strings.TrimSpace(title) == "" {
		return nil
	}

	_, err := c.api.CreateTodo(ctx, CreateTodoRequest{
		Title:   title,
		UserID:  c.anonUserID,
		DueDate: due,
	})
	if err != nil {
		c.notify(NoticeError, "Failed to add todo")
		return err
	}

	if err := c.Refresh(ctx); err != nil {
		return err
	}
	c.notify(NoticeSuccess, "Todo added")
	return nil
}
