package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	// API
	APIBaseURL     string
	RequestTimeout time.Duration

	// Session mirror
	StateFile string
	RedisAddr string
	RedisPass string

	// Stub API server
	StubAddr string
}

// Load reads environment variables into Config. Callers run
// godotenv.Load first if they want .env support.
func Load() Config {
	return Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080/api"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),

		StateFile: getEnv("STATE_FILE", defaultStateFile()),
		RedisAddr: getEnv("REDIS_ADDR", ""),
		RedisPass: getEnv("REDIS_PASS", ""),

		StubAddr: getEnv("STUB_ADDR", ":8080"),
	}
}

func defaultStateFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "storefront-state.json"
	}
	return filepath.Join(home, ".storefront", "state.json")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
