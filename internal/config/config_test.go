package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

auth:
  jwt_secret: "this-is-a-very-long-jwt-secret-for-testing-32+"
  jwt_issuer: "dewikt-test"
  token_ttl: "1h"

log:
  level: "debug"
  format: "text"

parser:
  max_body_bytes: 65536
  rate_limit: 2.5
  rate_burst: 5
`

func TestLoad_ValidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}

	// Database
	if cfg.Database.DSN != "postgres://u:p@localhost:5432/testdb" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}

	// Auth
	if cfg.Auth.JWTIssuer != "dewikt-test" {
		t.Errorf("auth.jwt_issuer = %q", cfg.Auth.JWTIssuer)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("auth.token_ttl = %v, want 1h", cfg.Auth.TokenTTL)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}

	// Parser
	if cfg.Parser.MaxBodyBytes != 65536 {
		t.Errorf("parser.max_body_bytes = %d, want 65536", cfg.Parser.MaxBodyBytes)
	}
	if cfg.Parser.RateLimit != 2.5 {
		t.Errorf("parser.rate_limit = %v, want 2.5", cfg.Parser.RateLimit)
	}
	if cfg.Parser.RateBurst != 5 {
		t.Errorf("parser.rate_burst = %d, want 5", cfg.Parser.RateBurst)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("PARSER_RATE_BURST", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
	if cfg.Parser.RateBurst != 50 {
		t.Errorf("parser.rate_burst = %d, want 50 (ENV override)", cfg.Parser.RateBurst)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Auth.JWTIssuer != "dewiktionary" {
		t.Errorf("auth.jwt_issuer = %q, want default", cfg.Auth.JWTIssuer)
	}
	if cfg.Parser.MaxBodyBytes != 2<<20 {
		t.Errorf("parser.max_body_bytes = %d, want %d (default)", cfg.Parser.MaxBodyBytes, 2<<20)
	}
}

func TestLoad_NoFile_MissingRequired(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Chdir(t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatal("expected error when required env vars are missing")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "DEWIKT_TEST_FROM_DOTENV=loaded\nDEWIKT_TEST_PRESET=from-file\n")
	t.Setenv("DEWIKT_TEST_FROM_DOTENV", "")
	os.Unsetenv("DEWIKT_TEST_FROM_DOTENV")
	t.Setenv("DEWIKT_TEST_PRESET", "from-env")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("DEWIKT_TEST_FROM_DOTENV") })

	if got := os.Getenv("DEWIKT_TEST_FROM_DOTENV"); got != "loaded" {
		t.Errorf("DEWIKT_TEST_FROM_DOTENV = %q, want %q", got, "loaded")
	}
	if got := os.Getenv("DEWIKT_TEST_PRESET"); got != "from-env" {
		t.Errorf("DEWIKT_TEST_PRESET = %q, existing env must win", got)
	}
}

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing .env should be ignored, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "jwt secret too short", mutate: func(c *Config) { c.Auth.JWTSecret = "short" }, wantErr: true},
		{name: "jwt secret empty", mutate: func(c *Config) { c.Auth.JWTSecret = "" }, wantErr: true},
		{name: "token ttl zero", mutate: func(c *Config) { c.Auth.TokenTTL = 0 }, wantErr: true},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "port upper bound", mutate: func(c *Config) { c.Server.Port = 65535 }},
		{name: "min conns above max", mutate: func(c *Config) { c.Database.MinConns = 30 }, wantErr: true},
		{name: "negative statement timeout", mutate: func(c *Config) { c.Database.StatementTimeout = -time.Second }, wantErr: true},
		{name: "body limit zero", mutate: func(c *Config) { c.Parser.MaxBodyBytes = 0 }, wantErr: true},
		{name: "rate limit negative", mutate: func(c *Config) { c.Parser.RateLimit = -1 }, wantErr: true},
		{name: "rate burst zero", mutate: func(c *Config) { c.Parser.RateBurst = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{DSN: "postgres://localhost/test", MaxConns: 25, MinConns: 5},
		Auth: AuthConfig{
			JWTSecret: "this-is-a-very-long-jwt-secret-for-testing-32+",
			JWTIssuer: "dewiktionary",
			TokenTTL:  time.Hour,
		},
		Parser: ParserConfig{MaxBodyBytes: 1 << 20, RateLimit: 10, RateBurst: 20},
	}
}
