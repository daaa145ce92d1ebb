package config

import (
	"strings"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("CONNECTION_STR", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SERVER_PORT", "")

	cfg := FromEnv()

	if cfg.Server.Port != "5000" {
		t.Errorf("Server.Port = %q, want 5000", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("Database.Driver = %q, want %q", cfg.Database.Driver, DriverPostgres)
	}
	if cfg.Server.ExposeErrorDetails {
		t.Error("ExposeErrorDetails should default to false")
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics should be enabled by default")
	}
	if cfg.Database.MaxConns != 0 {
		t.Errorf("MaxConns = %d, want 0 (driver default)", cfg.Database.MaxConns)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("DB_MAX_CONNS", "12")
	t.Setenv("EXPOSE_ERROR_DETAILS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := FromEnv()

	if cfg.Addr() != ":8081" {
		t.Errorf("Addr() = %q, want :8081", cfg.Addr())
	}
	if cfg.Server.ShutdownTimeout != 2*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 2s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Database.MaxConns != 12 {
		t.Errorf("MaxConns = %d, want 12", cfg.Database.MaxConns)
	}
	if !cfg.Server.ExposeErrorDetails {
		t.Error("ExposeErrorDetails should be true")
	}
	if got := cfg.CORS.AllowedOrigins; len(got) != 2 || got[1] != "https://b.example" {
		t.Errorf("AllowedOrigins = %v", got)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestGetDSN(t *testing.T) {
	tests := []struct {
		name string
		db   DatabaseConfig
		want string
	}{
		{
			name: "connection string wins",
			db:   DatabaseConfig{URL: "postgres://u:p@db/app", Password: "other"},
			want: "postgres://u:p@db/app",
		},
		{
			name: "no password means no dsn",
			db:   DatabaseConfig{Host: "localhost"},
			want: "",
		},
		{
			name: "composed from parts",
			db: DatabaseConfig{
				Host: "db", Port: "5432", User: "app", Password: "secret",
				Name: "todos", SSLMode: "disable", ConnTimeout: 10 * time.Second,
			},
			want: "postgres://app:secret@db:5432/todos?sslmode=disable&connect_timeout=10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Database: tt.db}
			if got := cfg.GetDSN(); got != tt.want {
				t.Errorf("GetDSN() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "5000"},
			Database: DatabaseConfig{Driver: DriverPostgres, URL: "postgres://localhost/app"},
			Log:      LogConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid postgres", mutate: func(c *Config) {}},
		{name: "memory needs no dsn", mutate: func(c *Config) {
			c.Database = DatabaseConfig{Driver: DriverMemory}
		}},
		{name: "missing dsn", mutate: func(c *Config) { c.Database.URL = "" }, wantErr: "CONNECTION_STR"},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: "DB_DRIVER"},
		{name: "unknown level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "LOG_LEVEL"},
		{name: "unknown format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "LOG_FORMAT"},
		{name: "empty port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "SERVER_PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
