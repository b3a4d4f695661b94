package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Seed sources.
const (
	SeedRandom = "random"
	SeedNone   = "none"
)

// Config holds application configuration
type Config struct {
	// Server
	Env  string
	Port string

	// Calendar used for month windows and daily series.
	Location *time.Location

	// Seed data
	SeedSource   string
	SeedExpenses int
	SeedRandom   uint64

	// Storage
	StorageDriver string
	SQLitePath    string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	MigrationsDir string
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
		Port: getEnv("PORT", "8080"),

		SeedSource:   getEnv("SEED_SOURCE", SeedRandom),
		SeedExpenses: getEnvInt("SEED_EXPENSES", 50),
		SeedRandom:   getEnvUint("SEED_RANDOM", 0),

		StorageDriver: getEnv("STORAGE_DRIVER", StorageMemory),
		SQLitePath:    getEnv("SQLITE_PATH", "budgetly.db"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "budgetly"),
		DBPassword:    getEnv("DB_PASSWORD", "budgetly"),
		DBName:        getEnv("DB_NAME", "budgetly"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
	}

	locName := getEnv("TZ_LOCATION", "Local")
	loc, err := time.LoadLocation(locName)
	if err != nil {
		return nil, fmt.Errorf("invalid TZ_LOCATION %q: %w", locName, err)
	}
	config.Location = loc

	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfig = config
	return config, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number between 1 and 65535", c.Port))
	}

	switch c.SeedSource {
	case SeedRandom, SeedNone:
	default:
		problems = append(problems, fmt.Sprintf("invalid seed source %q: must be %q or %q", c.SeedSource, SeedRandom, SeedNone))
	}
	if c.SeedExpenses < 0 {
		problems = append(problems, fmt.Sprintf("invalid seed expense count %d: must not be negative", c.SeedExpenses))
	}

	switch c.StorageDriver {
	case StorageMemory:
	case StorageSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, "SQLITE_PATH cannot be empty when using the sqlite driver")
		}
	case StoragePostgres:
		if c.DBHost == "" || c.DBName == "" {
			problems = append(problems, "DB_HOST and DB_NAME are required when using the postgres driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid storage driver %q: must be one of memory, sqlite, postgres", c.StorageDriver))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
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

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if u, err := strconv.ParseUint(value, 10, 64); err == nil {
			return u
		}
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, value, defaultValue)
	}
	return defaultValue
}
