package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todo_webapp/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAPI is an in-memory stand-in for the todo API with switchable failure
// modes, so rollback paths can be exercised deterministically.
type fakeAPI struct {
	todos []domain.Todo

	failList   bool
	failCreate bool
	failUpdate bool
	failDelete bool

	requests int
}

func (f *fakeAPI) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")

	api.GET("/todos", func(c *gin.Context) {
		f.requests++
		if f.failList {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todos"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"todos": f.todos})
	})

	api.POST("/todos", func(c *gin.Context) {
		f.requests++
		if f.failCreate {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
			return
		}
		var req CreateTodoRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.Title == "" || req.UserID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title and user_id are required"})
			return
		}
		now := time.Now().UTC()
		todo := domain.Todo{
			ID:          uuid.NewString(),
			UserID:      req.UserID,
			Title:       req.Title,
			Description: req.Description,
			DueDate:     req.DueDate,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		f.todos = append(f.todos, todo)
		c.JSON(http.StatusCreated, gin.H{"todo": todo})
	})

	api.PUT("/todos/:id", func(c *gin.Context) {
		f.requests++
		if f.failUpdate {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
			return
		}
		var req UpdateTodoRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		for i := range f.todos {
			if f.todos[i].ID != c.Param("id") {
				continue
			}
			now := time.Now().UTC()
			f.todos[i].UpdatedAt = now
			if req.IsCompleted != nil {
				f.todos[i].IsCompleted = *req.IsCompleted
				if *req.IsCompleted {
					f.todos[i].CompletedAt = &now
				} else {
					f.todos[i].CompletedAt = nil
				}
			}
			if req.Title != nil {
				f.todos[i].Title = *req.Title
			}
			c.JSON(http.StatusOK, gin.H{"todo": f.todos[i]})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
	})

	api.DELETE("/todos/:id", func(c *gin.Context) {
		f.requests++
		if f.failDelete {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
			return
		}
		for i := range f.todos {
			if f.todos[i].ID == c.Param("id") {
				f.todos = append(f.todos[:i], f.todos[i+1:]...)
				c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
	})

	api.GET("/todos/:id", func(c *gin.Context) {
		f.requests++
		for i := range f.todos {
			if f.todos[i].ID == c.Param("id") {
				c.JSON(http.StatusOK, gin.H{"todo": f.todos[i]})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
	})

	return r
}

func seedTodos(titles ...string) []domain.Todo {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	todos := make([]domain.Todo, 0, len(titles))
	for i, title := range titles {
		todos = append(todos, domain.Todo{
			ID:        uuid.NewString(),
			UserID:    "u1",
			Title:     title,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return todos
}

type notice struct {
	level NoticeLevel
	msg   string
}

func newTestController(t *testing.T, f *fakeAPI) (*Controller, *[]notice) {
	t.Helper()
	srv := httptest.NewServer(f.router())
	t.Cleanup(srv.Close)

	var notices []notice
	ctrl := NewController(New(srv.URL+"/api"), "u1", func(level NoticeLevel, msg string) {
		notices = append(notices, notice{level, msg})
	})
	if err := ctrl.Refresh(context.Background()); err != nil {
		t.Fatalf("initial refresh: %v", err)
	}
	return ctrl, &notices
}

func titles(todos []domain.Todo) []string {
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.Title)
	}
	return out
}

func TestToggleSuccess(t *testing.T) {
	f := &fakeAPI{todos: seedTodos("a", "b", "c")}
	ctrl, _ := newTestController(t, f)

	id := ctrl.Todos()[1].ID
	if err := ctrl.Toggle(context.Background(), id); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	got := ctrl.Todos()
	if !got[1].IsCompleted || got[1].CompletedAt == nil {
		t.Fatalf("todo not completed: %+v", got[1])
	}
	// local copy must be the server's, not the optimistic stamp
	if !got[1].CompletedAt.Equal(*f.todos[1].CompletedAt) {
		t.Fatalf("completed_at = %v; want server value %v", got[1].CompletedAt, f.todos[1].CompletedAt)
	}
	if got[1].ID != id {
		t.Fatal("toggle moved the todo")
	}
}

func TestToggleRollbackOnFailure(t *testing.T) {
	f := &fakeAPI{todos: seedTodos("a", "b", "c")}
	ctrl, notices := newTestController(t, f)

	before := ctrl.Todos()
	f.failUpdate = true

	id := before[1].ID
	if err := ctrl.Toggle(context.Background(), id); err == nil {
		t.Fatal("expected toggle to fail")
	}

	after := ctrl.Todos()
	if len(after) != len(before) {
		t.Fatalf("list length changed: %d != %d", len(after), len(before))
	}
	for i := range before {
		if after[i].ID != before[i].ID {
			t.Fatalf("order changed at %d: %s != %s", i, after[i].ID, before[i].ID)
		}
		if after[i].IsCompleted != before[i].IsCompleted {
			t.Fatalf("is_completed not rolled back at %d", i)
		}
		if (after[i].CompletedAt == nil) != (before[i].CompletedAt == nil) {
			t.Fatalf("completed_at not rolled back at %d", i)
		}
	}
	if len(*notices) == 0 || (*notices)[0].level != NoticeError {
		t.Fatalf("expected an error notice, got %v", *notices)
	}
}

func TestToggleRoundTrip(t *testing.T) {
	f := &fakeAPI{todos: seedTodos("a")}
	ctrl, _ := newTestController(t, f)

	id := ctrl.Todos()[0].ID
	ctx := context.Background()

	if err := ctrl.Toggle(ctx, id); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if err := ctrl.Toggle(ctx, id); err != nil {
		t.Fatalf("second toggle: %v", err)
	}

	got := ctrl.Todos()[0]
	if got.IsCompleted || got.CompletedAt != nil {
		t.Fatalf("round-trip did not return to uncompleted/null: %+v", got)
	}
}

func TestDeleteSuccess(t *testing.T) {
	f := &fakeAPI{todos: seedTodos("a", "b", "c")}
	ctrl, notices := newTestController(t, f)

	id := ctrl.Todos()[1].ID
	if err := ctrl.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got := titles(ctrl.Todos())
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("list after delete = %v", got)
	}
	if len(*notices) == 0 || (*notices)[0].level != NoticeSuccess {
		t.Fatalf("expected a success notice, got %v", *notices)
	}
}

func TestDeleteRollbackRestoresIndex(t *testing.T) {
	f := &fakeAPI{todos: seedTodos("a", "b", "c")}
	ctrl, notices := newTestController(t, f)

	f.failDelete = true
	id := ctrl.Todos()[1].ID
	if err := ctrl.Delete(context.Background(), id); err == nil {
		t.Fatal("expected delete to fail")
	}

	got := titles(ctrl.Todos())
	// the todo must come back at its original index, not the end
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("list after failed delete = %v; want [a b c]", got)
	}
	if len(*notices) == 0 || (*notices)[0].level != NoticeError {
		t.Fatalf("expected an error notice, got %v", *notices)
	}
}

func TestAddWhitespaceTitleIsNoop(t *testing.T) {
	f := &fakeAPI{}
	ctrl, _ := newTestController(t, f)

	requestsBefore := f.requests
	for _, title := range []string{"", "   ", "\t\n"} {
		if err := ctrl.Add(context.Background(), title, nil); err != nil {
			t.Fatalf("Add(%q) = %v; want nil", title, err)
		}
	}
	if f.requests != requestsBefore {
		t.Fatalf("whitespace-only add hit the network (%d requests)", f.requests-requestsBefore)
	}
}

func TestAddRefetchesList(t *testing.T) {
	f := &fakeAPI{todos: seedTodos("a")}
	ctrl, _ := newTestController(t, f)

	due := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	if err := ctrl.Add(context.Background(), "new todo", &due); err != nil {
		t.Fatalf("add: %v", err)
	}

	got := ctrl.Todos()
	if len(got) != 2 {
		t.Fatalf("list has %d todos; want 2", len(got))
	}
	added := got[1]
	if added.Title != "new todo" || added.UserID != "u1" {
		t.Fatalf("added todo = %+v", added)
	}
	if added.DueDate == nil || !added.DueDate.Equal(due) {
		t.Fatalf("due_date = %v; want %v", added.DueDate, due)
	}
	if added.IsCompleted {
		t.Fatal("added todo must start uncompleted")
	}
}

func TestAddFailureLeavesListAlone(t *testing.T) {
	f := &fakeAPI{todos: seedTodos("a")}
	ctrl, notices := newTestController(t, f)

	f.failCreate = true
	if err := ctrl.Add(context.Background(), "doomed", nil); err == nil {
		t.Fatal("expected add to fail")
	}

	got := titles(ctrl.Todos())
	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("list after failed add = %v; want [a]", got)
	}
	if len(*notices) == 0 || (*notices)[0].level != NoticeError {
		t.Fatalf("expected an error notice, got %v", *notices)
	}
}

func TestRefreshFailureClearsList(t *testing.T) {
	f := &fakeAPI{todos: seedTodos("a", "b")}
	ctrl, _ := newTestController(t, f)

	if len(ctrl.Todos()) != 2 {
		t.Fatal("seed refresh failed")
	}

	f.failList = true
	if err := ctrl.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh to fail")
	}
	if got := ctrl.Todos(); len(got) != 0 {
		t.Fatalf("stale list kept after failed refresh: %v", titles(got))
	}
}

func TestAnonymousUserFallback(t *testing.T) {
	f := &fakeAPI{}
	srv := httptest.NewServer(f.router())
	t.Cleanup(srv.Close)

	ctrl := NewController(New(srv.URL+"/api"), "", nil)
	if err := ctrl.Add(context.Background(), "anon todo", nil); err != nil {
		t.Fatalf("add: %v", err)
	}

	got := ctrl.Todos()
	if len(got) != 1 {
		t.Fatalf("list has %d todos; want 1", len(got))
	}
	if _, err := uuid.Parse(got[0].UserID); err != nil {
		t.Fatalf("fallback user id %q is not a UUID: %v", got[0].UserID, err)
	}
}

// End-to-end lifecycle: create, complete, delete, verify gone.
func TestLifecycleScenario(t *testing.T) {
	f := &fakeAPI{}
	srv := httptest.NewServer(f.router())
	t.Cleanup(srv.Close)

	api := New(srv.URL + "/api")
	ctx := context.Background()

	created, err := api.CreateTodo(ctx, CreateTodoRequest{Title: "Buy milk", UserID: "u1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.IsCompleted {
		t.Fatal("created todo must start uncompleted")
	}

	completed := true
	updated, err := api.UpdateTodo(ctx, created.ID, UpdateTodoRequest{IsCompleted: &completed})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.IsCompleted || updated.CompletedAt == nil {
		t.Fatalf("completed_at not set: %+v", updated)
	}

	if err := api.DeleteTodo(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := api.GetTodo(ctx, created.ID); err == nil {
		t.Fatal("get after delete should fail with 404")
	}
}
