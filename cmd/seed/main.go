package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"tasklist/internal/db"
	"tasklist/internal/domain"
	"tasklist/internal/repository"
)

// Seeds one demo user and a handful of tasks for local development.
func main() {
	name := flag.String("name", "Demo User", "user display name")
	email := flag.String("email", "demo@example.com", "user email")
	tasks := flag.Int("tasks", 3, "number of demo tasks to create")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	ctx := context.Background()
	users := repository.NewUserRepository(pool)
	taskRepo := repository.NewTaskRepository(pool)

	u := &domain.User{Name: *name, Email: *email}
	if err := users.Create(ctx, u); err != nil {
		if !errors.Is(err, repository.ErrDuplicateEmail) {
			log.Fatalf("create user failed: %v", err)
		}
		existing, err := users.GetByEmail(ctx, *email)
		if err != nil {
			log.Fatalf("fetch existing user failed: %v", err)
		}
		u = existing
		log.Printf("user already exists id=%d", u.ID)
	} else {
		log.Printf("user created id=%d", u.ID)
	}

	titles := []string{
		"Write project readme",
		"Review open pull requests",
		"Plan next sprint",
		"Clean up stale branches",
		"Update dependency pins",
	}
	for i := 0; i < *tasks; i++ {
		title := titles[i%len(titles)]
		t := &domain.Task{UserID: u.ID, Title: title}
		if err := taskRepo.Create(ctx, t); err != nil {
			log.Fatalf("create task failed: %v", err)
		}
		log.Printf("task created id=%d title=%q", t.ID, t.Title)
	}
}
