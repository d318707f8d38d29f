package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application
type Config struct {
	APIBaseURL  string
	DataDir     string
	HTTPTimeout time.Duration
	LogLevel    string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:  getEnv("UNBORED_API_URL", "https://www.boredapi.com"),
		DataDir:     getEnv("UNBORED_DATA_DIR", filepath.Join(xdg.DataHome, "unbored")),
		HTTPTimeout: getDurationEnv("UNBORED_HTTP_TIMEOUT", 10*time.Second),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}, nil
}

// ActivityFile returns the full path of the persisted activity list
func (c *Config) ActivityFile() string {
	return filepath.Join(c.DataDir, "unbored.json")
}

// LogFile returns the full path of the application log
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "unbored.log")
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
