package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Storage selection: "jsonfile" keeps the original whole-file JSON
	// mapping, "sqlite" uses the embedded per-user store.
	StorageDriver string
	UsersFile     string
	SQLitePath    string
	// Session token configuration
	JWTSecret     string
	TokenTTLHours int
}

const (
	DriverJSONFile = "jsonfile"
	DriverSQLite   = "sqlite"
)

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally; ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		FrontendURL:   strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		StorageDriver: getEnv("STORAGE_DRIVER", DriverJSONFile),
		UsersFile:     getEnv("USERS_FILE", "users.json"),
		SQLitePath:    getEnv("SQLITE_PATH", "futurejob.db"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 24),
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "default_secret_key"
		log.Println("WARNING: JWT_SECRET is not set. Using default key; do not run like this in production.")
	}
	if cfg.StorageDriver != DriverJSONFile && cfg.StorageDriver != DriverSQLite {
		log.Printf("WARNING: unknown STORAGE_DRIVER %q, falling back to %q.", cfg.StorageDriver, DriverJSONFile)
		cfg.StorageDriver = DriverJSONFile
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
