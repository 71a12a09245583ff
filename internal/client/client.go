package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"todo_webapp/internal/domain"
)

// Client is an HTTP client for the todo API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a todo API client. baseURL should include the /api prefix,
// e.g. "http://localhost:8080/api".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateTodoRequest is the POST /todos body.
type CreateTodoRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	UserID      string     `json:"user_id"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateTodoRequest is the PUT /todos/:id body. Nil fields are omitted and
// therefore left unchanged by the server.
type UpdateTodoRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	IsCompleted *bool      `json:"is_completed,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

type todoEnvelope struct {
	Todo domain.Todo `json:"todo"`
}

type todosEnvelope struct {
	Todos []domain.Todo `json:"todos"`
}

type usersEnvelope struct {
	Users []domain.User `json:"users"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("api error: %s (status %d)", apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("api error: status %d", resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Health checks the API health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// ListTodos fetches all todos in server order.
func (c *Client) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	var env todosEnvelope
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &env); err != nil {
		return nil, err
	}
	return env.Todos, nil
}

// GetTodo fetches a single todo by id.
func (c *Client) GetTodo(ctx context.Context, id string) (*domain.Todo, error) {
	var env todoEnvelope
	if err := c.do(ctx, http.MethodGet, "/todos/"+id, nil, &env); err != nil {
		return nil, err
	}
	return &env.Todo, nil
}

// CreateTodo creates a new todo and returns the server copy.
func (c *Client) CreateTodo(ctx context.Context, req CreateTodoRequest) (*domain.Todo, error) {
	var env todoEnvelope
	if err := c.do(ctx, http.MethodPost, "/todos", req, &env); err != nil {
		return nil, err
	}
	return &env.Todo, nil
}

// UpdateTodo applies a partial update and returns the server copy.
func (c *Client) UpdateTodo(ctx context.Context, id string, req UpdateTodoRequest) (*domain.Todo, error) {
	var env todoEnvelope
	if err := c.do(ctx, http.MethodPut, "/todos/"+id, req, &env); err != nil {
		return nil, err
	}
	return &env.Todo, nil
}

// DeleteTodo removes a todo by id.
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/todos/"+id, nil, nil)
}

// ListUsers fetches all users.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var env usersEnvelope
	if err := c.do(ctx, http.MethodGet, "/users", nil, &env); err != nil {
		return nil, err
	}
	return env.Users, nil
}
