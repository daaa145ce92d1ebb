package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported storage drivers
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Logging configuration
	Log LogConfig

	// CORS configuration
	CORS CORSConfig

	// Metrics configuration
	Metrics MetricsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port               string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	ShutdownTimeout    time.Duration
	ExposeErrorDetails bool
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver      string
	URL         string
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int32
	MinConns    int32
	MaxLifetime time.Duration
	ConnTimeout time.Duration
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// MetricsConfig holds Prometheus exposition settings
type MetricsConfig struct {
	Enabled bool
	Path    string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load("../.env"); err != nil {
		if err := godotenv.Load(".env"); err != nil {
			slog.Warn(".env file not found, using process environment", "error", err)
		}
	}

	config := FromEnv()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FromEnv builds a Config from the current process environment without touching .env files.
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "5000"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:        getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout:    getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
			ExposeErrorDetails: getBoolEnv("EXPOSE_ERROR_DETAILS", false),
		},
		Database: DatabaseConfig{
			Driver:      strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			URL:         getEnv("CONNECTION_STR", ""),
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", ""),
			Name:        getEnv("DB_NAME", "postgres"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			MaxConns:    getInt32Env("DB_MAX_CONNS", 0),
			MinConns:    getInt32Env("DB_MIN_CONNS", 0),
			MaxLifetime: getDurationEnv("DB_MAX_LIFETIME", 0),
			ConnTimeout: getDurationEnv("DB_CONN_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getStringSliceEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getStringSliceEnv("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getBoolEnv("CORS_ALLOW_CREDENTIALS", false),
		},
		Metrics: MetricsConfig{
			Enabled: getBoolEnv("METRICS_ENABLED", true),
			Path:    getEnv("METRICS_PATH", "/metrics"),
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.GetDSN() == "" {
			return fmt.Errorf("CONNECTION_STR is required when DB_DRIVER=%s", DriverPostgres)
		}
	case DriverMemory:
		slog.Warn("using in-memory storage; data is lost on restart")
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported LOG_LEVEL %q", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported LOG_FORMAT %q", c.Log.Format)
	}

	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}

	return nil
}

// GetDSN returns the database connection string. CONNECTION_STR wins; otherwise a DSN is
// composed from the DB_* parts, but only once a password has been configured.
func (c *Config) GetDSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	if c.Database.Password == "" {
		return ""
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&connect_timeout=%d",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
		int(c.Database.ConnTimeout.Seconds()),
	)
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt32Env(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intValue)
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := []string{}
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}
