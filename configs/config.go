package configs

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration values.
type Config struct {
	ServiceName      string
	ServerHost       string
	ServerPort       string `validate:"required,numeric"`
	ServerMode       string `validate:"oneof=debug release test"`
	DatabaseHost     string
	DatabasePort     string
	DatabaseUser     string `validate:"required"`
	DatabasePassword string `validate:"required"`
	DatabaseName     string `validate:"required"`
	DatabaseURL      string
	LogLevel         string `validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFormat        string `validate:"oneof=console json"`

	// PageSize is the process-wide default page size.
	PageSize int `validate:"gte=1"`
	// UserPageSize overrides PageSize for the users collection; 0 inherits.
	UserPageSize int `validate:"gte=0"`
	// SeedUsers is the number of fixture users created at startup.
	SeedUsers int `validate:"gte=0"`
}

// Load reads configuration exclusively from environment variables (optionally .env file).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.ServiceName = getEnv("SERVICE_NAME", "gopaginate")
	cfg.ServerHost = getEnv("HOST", "0.0.0.0")
	cfg.ServerPort = getEnv("PORT", "8080")
	cfg.ServerMode = getEnv("GIN_MODE", "debug")

	// Database
	cfg.DatabaseHost = getEnv("DB_HOST", "localhost")
	cfg.DatabasePort = getEnv("DB_PORT", "3306")
	cfg.DatabaseUser = getEnv("DB_USER", "")
	cfg.DatabasePassword = getEnv("DB_PASSWORD", "")
	cfg.DatabaseName = getEnv("DB_NAME", "")
	// Build DSN: user:pass@tcp(host:port)/dbname?parseTime=true
	cfg.DatabaseURL = fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DatabaseUser, cfg.DatabasePassword,
		cfg.DatabaseHost, cfg.DatabasePort,
		cfg.DatabaseName,
	)

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")

	// Pagination
	var err error
	if cfg.PageSize, err = getEnvInt("PAGE_SIZE", 20); err != nil {
		return nil, err
	}
	if cfg.UserPageSize, err = getEnvInt("USER_PAGE_SIZE", 0); err != nil {
		return nil, err
	}
	if cfg.SeedUsers, err = getEnvInt("SEED_USERS", 0); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values against their constraints.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// getEnv returns env var or default.
func getEnv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func getEnvInt(key string, def int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
