package config

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func envFunc(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envFunc(map[string]string{
		"DATABASE_URL": "postgres://localhost/todo",
		"JWT_SECRET":   "secret",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppPort != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.AppPort)
	}
	if cfg.JWTTTL != time.Hour {
		t.Fatalf("expected 1h ttl, got %s", cfg.JWTTTL)
	}
	if cfg.JWTIssuer != "todo_api" {
		t.Fatalf("unexpected issuer %q", cfg.JWTIssuer)
	}
	if cfg.BcryptCost != bcrypt.DefaultCost {
		t.Fatalf("expected default bcrypt cost, got %d", cfg.BcryptCost)
	}
	if cfg.AuthRateLimit != 5 || cfg.AuthRateWindow != time.Minute {
		t.Fatalf("unexpected auth rate limit %d/%s", cfg.AuthRateLimit, cfg.AuthRateWindow)
	}
	if cfg.AutoMigrate {
		t.Fatalf("auto migrate should be off by default")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envFunc(map[string]string{
		"DATABASE_URL":    "postgres://localhost/todo",
		"JWT_SECRET":      "secret",
		"APP_PORT":        "9000",
		"JWT_TTL_MINUTES": "15",
		"REDIS_ADDR":      "localhost:6379",
		"REDIS_DB":        "2",
		"BCRYPT_COST":     "4",
		"AUTH_RATE_LIMIT": "not-a-number",
		"LOG_LEVEL":       "DEBUG",
		"LOG_FORMAT":      "json",
		"AUTO_MIGRATE":    "true",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppPort != "9000" {
		t.Fatalf("expected port 9000, got %s", cfg.AppPort)
	}
	if cfg.JWTTTL != 15*time.Minute {
		t.Fatalf("expected 15m ttl, got %s", cfg.JWTTTL)
	}
	if cfg.RedisAddr != "localhost:6379" || cfg.RedisDB != 2 {
		t.Fatalf("unexpected redis config %q/%d", cfg.RedisAddr, cfg.RedisDB)
	}
	if cfg.BcryptCost != 4 {
		t.Fatalf("expected bcrypt cost 4, got %d", cfg.BcryptCost)
	}
	if cfg.AuthRateLimit != 5 {
		t.Fatalf("malformed value should fall back to default, got %d", cfg.AuthRateLimit)
	}
	if cfg.LogLevel != "debug" || !cfg.LogJSON {
		t.Fatalf("unexpected log config %q/%v", cfg.LogLevel, cfg.LogJSON)
	}
	if !cfg.AutoMigrate {
		t.Fatalf("expected auto migrate on")
	}
}

func TestFromEnv_Required(t *testing.T) {
	_, err := FromEnv(envFunc(map[string]string{"JWT_SECRET": "secret"}))
	if !errors.Is(err, ErrMissingDatabaseURL) {
		t.Fatalf("expected ErrMissingDatabaseURL, got %v", err)
	}

	_, err = FromEnv(envFunc(map[string]string{"DATABASE_URL": "postgres://localhost/todo"}))
	if !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}
