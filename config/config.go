package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	// Canonical public origin, e.g. https://wellnesstal.de
	PUBLIC_BASE_URL string

	// Object storage (S3 / MinIO compatible)
	STORAGE_BUCKET        string
	AWS_REGION            string
	AWS_ACCESS_KEY_ID     string
	AWS_SECRET_ACCESS_KEY string
	AWS_ENDPOINT          string

	REDIS_ADDR     string
	REDIS_PASSWORD string

	CORS_ORIGIN string

	ADMIN_EMAIL    string
	ADMIN_PASSWORD string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	PUBLIC_BASE_URL = strings.TrimRight(getEnv("PUBLIC_BASE_URL", "https://wellnesstal.de"), "/")

	STORAGE_BUCKET = getEnv("STORAGE_BUCKET", "wellnesstal-media")
	AWS_REGION = getEnv("AWS_REGION", "eu-central-1")
	AWS_ACCESS_KEY_ID = getEnv("AWS_ACCESS_KEY_ID", "")
	AWS_SECRET_ACCESS_KEY = getEnv("AWS_SECRET_ACCESS_KEY", "")
	AWS_ENDPOINT = getEnv("AWS_ENDPOINT", "")

	REDIS_ADDR = getEnv("REDIS_ADDR", "")
	REDIS_PASSWORD = getEnv("REDIS_PASSWORD", "")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")

	// Used by cmd/seed to create the initial admin account
	ADMIN_EMAIL = getEnv("ADMIN_EMAIL", "")
	ADMIN_PASSWORD = getEnv("ADMIN_PASSWORD", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
