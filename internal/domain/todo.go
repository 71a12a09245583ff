package domain

import "time"

type Todo struct {
	ID           string     `db:"id" json:"id"`
	UserID       string     `db:"user_id" json:"user_id"`
	Title        string     `db:"title" json:"title"`
	Description  *string    `db:"description" json:"description"`
	IsCompleted  bool       `db:"is_completed" json:"is_completed"`
	DueDate      *time.Time `db:"due_date" json:"due_date"`
	ReminderTime *time.Time `db:"reminder_time" json:"reminder_time"`
	CompletedAt  *time.Time `db:"completed_at" json:"completed_at"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
