package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	HubSpot  HubSpotConfig
	Scan     ScanConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds the upstream OCR collaborator configuration
type OCRConfig struct {
	APIURL     string
	APIKey     string
	Timeout    time.Duration
	MaxRetries uint64
}

// HubSpotConfig holds the CRM bridge configuration
type HubSpotConfig struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	MaxRetries uint64
}

// ScanConfig holds the async scan queue configuration
type ScanConfig struct {
	Workers    int
	QueueSize  int
	JobTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			APIURL:     getEnv("OCR_API_URL", ""),
			APIKey:     getEnv("OCR_API_KEY", ""),
			Timeout:    getEnvAsDuration("OCR_TIMEOUT", 30*time.Second),
			MaxRetries: uint64(getEnvAsInt("OCR_MAX_RETRIES", 3)),
		},
		HubSpot: HubSpotConfig{
			BaseURL:    getEnv("HUBSPOT_BASE_URL", "https://api.hubapi.com"),
			Token:      getEnv("HUBSPOT_TOKEN", ""),
			Timeout:    getEnvAsDuration("HUBSPOT_TIMEOUT", 15*time.Second),
			MaxRetries: uint64(getEnvAsInt("HUBSPOT_MAX_RETRIES", 3)),
		},
		Scan: ScanConfig{
			Workers:    getEnvAsInt("SCAN_WORKERS", 4),
			QueueSize:  getEnvAsInt("SCAN_QUEUE_SIZE", 256),
			JobTimeout: getEnvAsDuration("SCAN_JOB_TIMEOUT", 2*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration. The OCR and HubSpot
// collaborators are optional features; the database and server are not.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.OCR.APIURL != "" && c.OCR.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OCR_API_KEY is required when OCR_API_URL is set", ErrInvalidInput)
	}
	return nil
}
