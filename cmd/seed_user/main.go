package main

import (
	"context"
	"log"

	"todo_webapp/internal/config"
	"todo_webapp/internal/db"
	"todo_webapp/internal/domain"
	"todo_webapp/internal/repository"
)

// Seeds the anonymous user row that unauthenticated todo creation points at.
// Safe to run repeatedly.
func main() {
	cfg := config.Load()

	pool := db.Connect(cfg.DatabaseURL)
	defer pool.Close()

	repo := repository.NewUserRepository(pool)
	ctx := context.Background()

	existing, err := repo.GetByID(ctx, cfg.AnonUserID)
	if err == nil {
		log.Printf("anonymous user already exists id=%s email=%s\n", existing.ID, existing.Email)
		return
	}

	u := &domain.User{Email: cfg.AnonUserEmail}
	if err := repo.CreateWithID(ctx, cfg.AnonUserID, u); err != nil {
		log.Fatalf("create anonymous user failed: %v", err)
	}
	log.Printf("anonymous user created id=%s email=%s\n", u.ID, u.Email)

	// verify read
	u2, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		log.Fatalf("get by id failed: %v", err)
	}
	log.Printf("fetched user id=%s email=%s created_at=%v\n", u2.ID, u2.Email, u2.CreatedAt)
}
