package config

import (
	"os"
	"strconv"
	"time"
)

// RedisConfig holds connection settings for the optional Redis backend.
// An empty Addr means the application runs on the in-memory cache instead.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// ToolsConfig holds retention settings for usage history and shared snippets.
type ToolsConfig struct {
	HistoryTTL time.Duration
	HistoryMax int
	SnippetTTL time.Duration
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost string
	Port    string
	Redis   RedisConfig
	Tools   ToolsConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"),
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Prefix:   getEnv("REDIS_PREFIX", "devtools:"),
		},
		Tools: ToolsConfig{
			HistoryTTL: time.Duration(getEnvInt("HISTORY_TTL_HOURS", 7*24)) * time.Hour,
			HistoryMax: getEnvInt("HISTORY_MAX_ENTRIES", 50),
			SnippetTTL: time.Duration(getEnvInt("SNIPPET_TTL_HOURS", 24)) * time.Hour,
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
