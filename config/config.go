package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr         string
	DatabaseDSN  string
	PageSize     int
	RedisAddr    string
	GithubAPIURL string
	GithubToken  string
	SyncInterval time.Duration
}

// C is set by Load and read by the handler and worker paths.
var C *Config

func Load() *Config {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	C = &Config{
		Addr:         getEnv("ADDR", ":8080"),
		DatabaseDSN:  getEnv("DATABASE_URL", "scienceapi.db"),
		PageSize:     getEnvAsInt("PAGE_SIZE", 20),
		RedisAddr:    getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		GithubAPIURL: getEnv("GITHUB_API_URL", "https://api.github.com"),
		GithubToken:  getEnv("GITHUB_TOKEN", ""),
		SyncInterval: getEnvAsDuration("GITHUB_SYNC_INTERVAL", time.Hour),
	}
	return C
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}
	return value
}
