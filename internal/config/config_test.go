package config

import (
	"testing"
	"time"
)

func TestBuildDSN(t *testing.T) {
	dsn := buildDSN(DatabaseConfig{
		Host:     "db.internal",
		Port:     "3307",
		User:     "frontdesk",
		Password: "s3cret",
		DBName:   "frontdesk",
	})

	expected := "frontdesk:s3cret@tcp(db.internal:3307)/frontdesk?charset=utf8mb4&parseTime=True&loc=Local"
	if dsn != expected {
		t.Fatalf("unexpected DSN: %s", dsn)
	}
}

func TestLoadDatabaseConfigPoolDefaults(t *testing.T) {
	t.Setenv("DEV_DB_MAX_IDLE_CONNS", "")
	t.Setenv("DEV_DB_MAX_OPEN_CONNS", "")
	t.Setenv("DEV_DB_CONN_MAX_LIFETIME_MINS", "")

	d := loadDatabaseConfig("dev")

	if d.MaxIdleConns != 10 {
		t.Fatalf("expected 10 idle conns, got %d", d.MaxIdleConns)
	}
	if d.MaxOpenConns != 100 {
		t.Fatalf("expected 100 open conns, got %d", d.MaxOpenConns)
	}
	if d.ConnMaxLifetime != time.Hour {
		t.Fatalf("expected 1h lifetime, got %s", d.ConnMaxLifetime)
	}
}

func TestLoadDatabaseConfigPoolOverrides(t *testing.T) {
	t.Setenv("PROD_DB_MAX_IDLE_CONNS", "4")
	t.Setenv("PROD_DB_MAX_OPEN_CONNS", "40")
	t.Setenv("PROD_DB_CONN_MAX_LIFETIME_MINS", "30")

	d := loadDatabaseConfig("prod")

	if d.MaxIdleConns != 4 || d.MaxOpenConns != 40 {
		t.Fatalf("expected pool 4/40, got %d/%d", d.MaxIdleConns, d.MaxOpenConns)
	}
	if d.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("expected 30m lifetime, got %s", d.ConnMaxLifetime)
	}
}
