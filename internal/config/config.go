package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBPath      string
	DatabaseURL string
	JWTSecret   string
	RedisURL    string
	RedisAddr   string
	RedisDB     int
	ProfileTTL  time.Duration
}

// Load reads configuration from the environment. A .env file is applied
// first when present, matching how the service is run in development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        GetEnvAsString("PORT", "4000"),
		DBPath:      GetEnvAsString("DB_PATH", "database.sqlite"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   GetEnvAsString("JWT_SECRET", "dev_secret_change_me"),
		RedisURL:    os.Getenv("REDIS_URL"),
		RedisAddr:   GetEnvAsString("REDIS_ADDR", ""),
		RedisDB:     GetEnvAsInt("REDIS_DB", 0),
		ProfileTTL:  GetEnvAsDuration("PROFILE_CACHE_TTL", 24*time.Hour),
	}
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
