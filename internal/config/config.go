package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the web frontend needs from the environment.
type Config struct {
	Port          string
	BackendURL    string
	RedisAddr     string
	RedisPass     string
	RedisDB       int
	SessionSecret string
	IsProd        bool
}

// Load reads configuration from environment variables, consulting a .env
// file when one is present.
func Load() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	return &Config{
		Port:          getEnv("PORT", "8080"),
		BackendURL:    strings.TrimSuffix(getEnv("BACKEND_URL", "http://localhost:8090"), "/"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:     os.Getenv("REDIS_PASS"),
		RedisDB:       redisDB,
		SessionSecret: os.Getenv("SESSION_SECRET"),
		IsProd:        os.Getenv("IS_PROD") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
