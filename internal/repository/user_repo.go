package repository

import (
	"context"
	"errors"

	"todo_webapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, name, avatar_url, created_at, updated_at`

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	return res, rows.Err()
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (email, name, avatar_url)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		u.Email, u.Name, u.AvatarURL,
	)
	created, err := scanUser(row)
	if err != nil {
		return err
	}
	*u = *created
	return nil
}

// CreateWithID inserts a user with a caller-chosen id. Used to seed the
// anonymous user row that unauthenticated todo creation points at.
func (r *UserRepository) CreateWithID(ctx context.Context, id string, u *domain.User) error {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (id, email, name, avatar_url)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET updated_at = now()
		 RETURNING `+userColumns,
		id, u.Email, u.Name, u.AvatarURL,
	)
	created, err := scanUser(row)
	if err != nil {
		return err
	}
	*u = *created
	return nil
}
