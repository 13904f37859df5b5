package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrBackendURLRequired = errors.New("BACKEND_URL is required")

type Config struct {
	Port       string
	BackendURL string
	JWTSecret  string

	RedisAddr       string
	CatalogCacheTTL time.Duration
	BackendTimeout  time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		BackendURL: os.Getenv("BACKEND_URL"),
		JWTSecret:  getEnv("JWT_SECRET", "secret-key"),

		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		CatalogCacheTTL: getDuration("CATALOG_CACHE_TTL", 30*time.Second),
		BackendTimeout:  getDuration("BACKEND_TIMEOUT", 10*time.Second),

		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 20),
	}

	if cfg.BackendURL == "" {
		return nil, ErrBackendURLRequired
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
