package main

import (
	"context"
	"log"
	"os"

	"conjoint-survey-be/internal/pkg/logger"
	"conjoint-survey-be/internal/repository/unitofwork"
	"conjoint-survey-be/internal/service"
	"conjoint-survey-be/pkg/database"

	"github.com/joho/godotenv"
)

// Seeds the default attribute catalog. Idempotent: attributes already
// present by key are left untouched.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	attributeService := service.NewAttributeService(uowFactory, logger.NewZapLogger("seed.log", false))

	if err := attributeService.EnsureSeeded(context.Background()); err != nil {
		log.Fatal("Error: Failed to seed attributes:", err)
	}

	log.Println("✅ Attribute catalog seeded")
}
