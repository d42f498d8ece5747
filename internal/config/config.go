package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Menu     MenuConfig
	Pricing  PricingConfig
	Logger   LoggerConfig
	S3       S3Config
	Archive  ArchiveConfig
	Database DatabaseConfig
}

// MenuConfig holds menu persistence configuration.
type MenuConfig struct {
	// File is loaded at startup and overwritten on exit.
	File string
}

// PricingConfig holds the order discount configuration.
type PricingConfig struct {
	DiscountThreshold int
	DiscountRate      float64
	Currency          string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
	File   string // empty means stderr
}

// S3Config holds AWS S3 configuration for the menu file.
type S3Config struct {
	Enabled bool
	Bucket  string
	Region  string
	Prefix  string // Path prefix within bucket (e.g., "menus/")
}

// ArchiveConfig controls recording of processed orders.
type ArchiveConfig struct {
	Enabled bool
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// Load loads configuration from environment variables.
// A .env file in the working directory is read first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	cfg := &Config{
		Menu: MenuConfig{
			File: getEnv("MENU_FILE", "menu.json"),
		},
		Pricing: PricingConfig{
			DiscountThreshold: getEnvAsInt("DISCOUNT_THRESHOLD", 3),
			DiscountRate:      getEnvAsFloat("DISCOUNT_RATE", 0.1),
			Currency:          getEnv("CURRENCY_SYMBOL", "$"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "warn"),
			Format: getEnv("LOG_FORMAT", "console"),
			File:   getEnv("LOG_FILE", ""),
		},
		S3: S3Config{
			Enabled: getEnvAsBool("S3_ENABLED", false),
			Bucket:  getEnv("S3_BUCKET", ""),
			Region:  getEnv("S3_REGION", "us-east-1"),
			Prefix:  getEnv("S3_PREFIX", "menus/"),
		},
		Archive: ArchiveConfig{
			Enabled: getEnvAsBool("ARCHIVE_ENABLED", false),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "restaurant"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 4),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 1),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Menu.File == "" {
		return fmt.Errorf("menu file is required")
	}

	if c.Pricing.DiscountThreshold < 1 {
		return fmt.Errorf("discount threshold must be at least 1")
	}

	if math.IsNaN(c.Pricing.DiscountRate) || c.Pricing.DiscountRate < 0 || c.Pricing.DiscountRate >= 1 {
		return fmt.Errorf("invalid discount rate: %g (must be in [0, 1))", c.Pricing.DiscountRate)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.S3.Enabled {
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
	}

	if c.Archive.Enabled {
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Validate validates the archive database settings.
func (c *DatabaseConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}

	if c.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.MinConnections > c.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
