package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	// Environment: "development" or "production"
	Env string

	// Acting user; mutations and queries are scoped to this identity.
	User string

	// Storage
	StorageBackend string
	DataDir        string

	// Database (postgres backend only)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Presentation
	DefaultCurrency string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		User: getEnv("FINCONTROL_USER", ""),

		StorageBackend: getEnv("STORAGE_BACKEND", BackendFile),
		DataDir:        getEnv("DATA_DIR", "./data"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "financecontrol"),
		DBPassword: getEnv("DB_PASSWORD", "financecontrol"),
		DBName:     getEnv("DB_NAME", "financecontrol"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "BRL"),
	}

	switch config.StorageBackend {
	case BackendFile, BackendSQLite, BackendPostgres:
	default:
		log.Printf("Warning: unknown STORAGE_BACKEND %q, falling back to %q\n", config.StorageBackend, BackendFile)
		config.StorageBackend = BackendFile
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
