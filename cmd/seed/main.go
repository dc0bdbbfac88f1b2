// Command seed creates the administrative login used to access the API.
// It is idempotent: re-running against a seeded database is a no-op.
package main

import (
	"context"
	"log"

	"candidate-management-api/config"
	"candidate-management-api/internal/domain"
	"candidate-management-api/internal/repository/postgres"
	"candidate-management-api/pkg/auth"
	"candidate-management-api/pkg/database"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()
	userRepo := postgres.NewUserRepository(dbPool)

	existing, err := userRepo.GetByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatalf("Failed to look up admin user: %v", err)
	}
	if existing != nil {
		log.Println("Admin user already exists.")
		return
	}

	hash, err := auth.HashPassword(adminPassword, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := userRepo.Create(ctx, &domain.User{Email: adminEmail, PasswordHash: hash}); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Println("Admin user created.")
}
