// Command create_admin seeds an operator account for the admin API.
//
//	go run ./cmd/scripts -email ops@example.com -password secret
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/projectzeus/checkin-backend/internal/config"
	mongorepo "github.com/projectzeus/checkin-backend/internal/repositories/mongodb"
	"github.com/projectzeus/checkin-backend/internal/services"
	"github.com/projectzeus/checkin-backend/pkg/mongodb"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	role := flag.String("role", "admin", "admin role")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := client.Database(cfg.MongoDB.Database)
	adminRepo := mongorepo.NewAdminUserRepository(db)
	authService := services.NewAuthService(adminRepo, cfg)

	admin, err := authService.CreateAdmin(context.Background(), *email, *password, *role)
	if err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Created admin user %s (%s) with role %s", admin.Email, admin.ID.Hex(), admin.Role)
}
