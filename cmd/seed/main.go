package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"inventory-management/config"
	"inventory-management/internal/domain/repository"
	pginfra "inventory-management/internal/infrastructure/postgres"
)

// Seeds a development user through the repository, the only component
// allowed to write to the users table.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	name := flag.String("name", "demoUser", "display name")
	email := flag.String("email", "demo@example.com", "login email")
	password := flag.String("password", "password123", "raw password")
	flag.Parse()

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	repo := pginfra.NewUserRepository(pool)
	u, err := repo.Create(ctx, *name, *email, *password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			log.Fatalf("seed user already exists: %s", *email)
		}
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s name=%s\n", u.ID, u.Email, u.Name)
}
