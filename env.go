package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func mustLoadEnv() {
	_ = godotenv.Load() // load .env if present (ok if missing in prod)
	// minimal checks
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("missing required env JWT_SECRET")
	}
	if os.Getenv("DATABASE_URL") == "" {
		log.Println("[env] DATABASE_URL not set; falling back to the in-memory store")
	}
}
