// Package config reads service settings from the environment.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the service settings. Title and Description only surface in
// the generated API documentation.
type Config struct {
	Title       string
	Description string
	Port        string
}

// Load reads a .env file if one exists, then resolves settings from the
// environment with defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Title:       getEnv("TITLE", "Todo API"),
		Description: getEnv("DESCRIPTION", "A simple Todo application"),
		Port:        getEnv("PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
