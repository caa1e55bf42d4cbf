package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/brtkwt/BestStoreAPI/internal/app"
	"github.com/brtkwt/BestStoreAPI/internal/config"
)

func main() {
	// Secrets may come from a local .env in development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
