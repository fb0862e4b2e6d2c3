package config

import (
	"testing"
	"time"

	"gorm.io/gorm/logger"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default server port 8080, got %q", cfg.Server.Port)
	}
	if cfg.DB.Host != "localhost" || cfg.DB.Port != "5432" {
		t.Errorf("unexpected default DB address %s:%s", cfg.DB.Host, cfg.DB.Port)
	}
	if cfg.DB.ConnMaxLifetime != time.Hour {
		t.Errorf("expected default conn lifetime 1h, got %v", cfg.DB.ConnMaxLifetime)
	}
	if cfg.JWT.ExpirationHours != 24 {
		t.Errorf("expected default JWT expiration 24h, got %d", cfg.JWT.ExpirationHours)
	}
	if cfg.Metrics.Prefix != "inventory" {
		t.Errorf("expected metrics prefix inventory, got %q", cfg.Metrics.Prefix)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "stock")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("DB_LOG_LEVEL", "silent")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.DB.Host != "db.internal" || cfg.DB.DBName != "stock" {
		t.Errorf("env overrides not applied: %s/%s", cfg.DB.Host, cfg.DB.DBName)
	}
	if cfg.DB.MaxOpenConns != 25 {
		t.Errorf("expected 25 max open conns, got %d", cfg.DB.MaxOpenConns)
	}
	if cfg.DB.LogLevel != logger.Silent {
		t.Errorf("expected silent gorm log level, got %v", cfg.DB.LogLevel)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Server.Port)
	}
}

func TestGetDSN(t *testing.T) {
	db := DBConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "secret",
		DBName:   "inventory",
		SSLMode:  "disable",
	}

	want := "host=localhost port=5432 user=postgres password=secret dbname=inventory sslmode=disable"
	if got := db.GetDSN(); got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}

func TestGetEnvAsIntIgnoresGarbage(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DB.MaxIdleConns != 10 {
		t.Errorf("expected fallback to default 10, got %d", cfg.DB.MaxIdleConns)
	}
}
