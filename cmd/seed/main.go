package main

import (
	"context"
	"log"
	"os"

	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/repository/unitofwork"
	"event-ticketing-be/internal/service"
	"event-ticketing-be/pkg/database"

	"github.com/joho/godotenv"
)

// Seeds the initial superuser account from SEED_ADMIN_* env vars.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	name := os.Getenv("SEED_ADMIN_NAME")
	if email == "" || password == "" {
		log.Fatal("Error: SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}
	if name == "" {
		name = "Admin"
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	authService := service.NewAuthService(uowFactory)

	user, err := authService.CreateStaff(context.Background(), email, name, password, entity.StaffRoleSuperuser)
	if err != nil {
		log.Fatal("Error: Failed to create superuser:", err)
	}

	log.Printf("✅ Superuser created: %s (%s)", user.Email, user.Id)
}
