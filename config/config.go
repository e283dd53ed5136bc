package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN    string
	Port           string
	GinMode        string
	AllowedOrigins string
}

// Load reads .env if present, then the environment, falling back to
// development defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseDSN:    getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=swiftcart port=5432 sslmode=disable"),
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
