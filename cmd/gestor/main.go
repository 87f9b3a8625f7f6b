package main

import (
	"log"

	"github.com/gestor-dev/gestor/db"
	"github.com/gestor-dev/gestor/internal/auth"
	"github.com/gestor-dev/gestor/internal/config"
	"github.com/gestor-dev/gestor/internal/handlers"
	"github.com/gestor-dev/gestor/internal/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	tokens := auth.NewManager(cfg.JWTSecret)
	h := handlers.New(gdb, tokens, cfg.UploadDir)
	r := router.New(h, tokens, cfg.AllowedOrigins)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
