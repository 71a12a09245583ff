package main

import (
	"context"
	"flag"
	"log"
	"time"

	"todo_webapp/internal/client"
)

// Smoke test against a running server: create a todo, complete it, delete it.
func main() {
	baseURL := flag.String("url", "http://localhost:8080/api", "API base URL")
	userID := flag.String("user", "", "owning user id (defaults to a random UUID)")
	flag.Parse()

	api := client.New(*baseURL)
	ctrl := client.NewController(api, *userID, func(level client.NoticeLevel, msg string) {
		log.Printf("notice level=%d msg=%s", level, msg)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := api.Health(ctx); err != nil {
		log.Fatalf("health check failed: %v", err)
	}
	log.Println("health ok")

	due := time.Now().AddDate(0, 0, 1)
	if err := ctrl.Add(ctx, "smoke test todo", &due); err != nil {
		log.Fatalf("add failed: %v", err)
	}

	todos := ctrl.Todos()
	log.Printf("list has %d todos", len(todos))
	if len(todos) == 0 {
		log.Fatal("expected at least one todo after add")
	}

	last := todos[len(todos)-1]
	log.Printf("created todo id=%s title=%q due=%s", last.ID, last.Title, last.DueStatus(time.Now()))

	if err := ctrl.Toggle(ctx, last.ID); err != nil {
		log.Fatalf("toggle failed: %v", err)
	}
	for _, t := range ctrl.Todos() {
		if t.ID == last.ID && !t.IsCompleted {
			log.Fatal("todo not completed after toggle")
		}
	}
	log.Println("toggle ok")

	if err := ctrl.Delete(ctx, last.ID); err != nil {
		log.Fatalf("delete failed: %v", err)
	}
	log.Println("delete ok")
}
