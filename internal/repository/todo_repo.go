package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"todo_webapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("not found")

const todoColumns = `id, user_id, title, description, is_completed, due_date, reminder_time, completed_at, created_at, updated_at`

type TodoRepository struct {
	db *pgxpool.Pool
}

func NewTodoRepository(db *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{db: db}
}

func scanTodo(row pgx.Row) (*domain.Todo, error) {
	var t domain.Todo
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&t.Description,
		&t.IsCompleted,
		&t.DueDate,
		&t.ReminderTime,
		&t.CompletedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TodoRepository) List(ctx context.Context) ([]*domain.Todo, error) {
	rows, err := r.db.Query(ctx, `SELECT `+todoColumns+` FROM todos ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

func (r *TodoRepository) GetByID(ctx context.Context, id string) (*domain.Todo, error) {
	row := r.db.QueryRow(ctx, `SELECT `+todoColumns+` FROM todos WHERE id = $1`, id)
	return scanTodo(row)
}

// Create inserts a new todo. is_completed always starts false; the store
// fills id and timestamps.
func (r *TodoRepository) Create(ctx context.Context, t *domain.Todo) error {
	row := r.db.QueryRow(ctx,
		`INSERT INTO todos (user_id, title, description, due_date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+todoColumns,
		t.UserID, t.Title, t.Description, t.DueDate,
	)
	created, err := scanTodo(row)
	if err != nil {
		return err
	}
	*t = *created
	return nil
}

// TodoUpdate is a partial update: unset fields are left untouched. The Set
// flags distinguish "clear this nullable column" from "leave it alone".
type TodoUpdate struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	IsCompleted    *bool
	DueDate        *time.Time
	DueDateSet     bool
}

// Update applies the non-nil fields of upd to the todo in one statement.
// updated_at is always refreshed. Completing a todo stamps completed_at;
// un-completing clears it.
func (r *TodoRepository) Update(ctx context.Context, id string, upd TodoUpdate) (*domain.Todo, error) {
	sets := []string{"updated_at = now()"}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if upd.Title != nil {
		sets = append(sets, "title = "+arg(*upd.Title))
	}
	if upd.DescriptionSet {
		sets = append(sets, "description = "+arg(upd.Description))
	}
	if upd.IsCompleted != nil {
		sets = append(sets, "is_completed = "+arg(*upd.IsCompleted))
		if *upd.IsCompleted {
			sets = append(sets, "completed_at = now()")
		} else {
			sets = append(sets, "completed_at = NULL")
		}
	}
	if upd.DueDateSet {
		sets = append(sets, "due_date = "+arg(upd.DueDate))
	}

	query := `UPDATE todos SET ` + strings.Join(sets, ", ") +
		` WHERE id = ` + arg(id) + ` RETURNING ` + todoColumns

	row := r.db.QueryRow(ctx, query, args...)
	return scanTodo(row)
}

func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
