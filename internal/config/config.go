// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Gateway GatewayConfig
	Logger  LoggerConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port    int
	BaseURL string // public base URL used to build success/failure callback URLs
}

// GatewayConfig holds YagoutPay gateway configuration.
type GatewayConfig struct {
	MerchantID    string // plaintext merchant id (me_id)
	EncryptionKey string // base64-encoded 32-byte AES key
	Environment   string // "test" selects the UAT endpoint, "production" the live one
	OrdersDSN     string // optional PostgreSQL DSN; empty means in-memory order store
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Development bool
}

// LoadFromEnv loads configuration from environment variables. A .env file in
// the working directory is applied first when present.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnvAsInt("SERVER_PORT", 8080),
			BaseURL: getEnv("BASE_URL", "http://localhost:8080"),
		},
		Gateway: GatewayConfig{
			MerchantID:    getEnv("YAGOUT_MERCHANT_ID", ""),
			EncryptionKey: getEnv("YAGOUT_ENCRYPTION_KEY", ""),
			Environment:   getEnv("YAGOUT_ENVIRONMENT", "test"),
			OrdersDSN:     getEnv("ORDERS_DSN", ""),
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", true),
		},
	}

	if cfg.Gateway.MerchantID == "" {
		return nil, fmt.Errorf("YAGOUT_MERCHANT_ID is required")
	}
	if cfg.Gateway.EncryptionKey == "" {
		return nil, fmt.Errorf("YAGOUT_ENCRYPTION_KEY is required")
	}
	if env := cfg.Gateway.Environment; env != "test" && env != "production" {
		return nil, fmt.Errorf("YAGOUT_ENVIRONMENT must be 'test' or 'production', got %q", env)
	}

	return cfg, nil
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
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
