package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.App.Name != "pakwan-api" {
		t.Errorf("App.Name = %q, want pakwan-api", cfg.App.Name)
	}
	if cfg.App.Port != "8080" {
		t.Errorf("App.Port = %q, want 8080", cfg.App.Port)
	}
	if cfg.App.AuthRequired {
		t.Error("AuthRequired should default to false")
	}
	if cfg.Database.Name != "pakwan" {
		t.Errorf("Database.Name = %q, want pakwan", cfg.Database.Name)
	}
	if cfg.Session.TTL != 72*time.Hour {
		t.Errorf("Session.TTL = %v, want 72h", cfg.Session.TTL)
	}
	if cfg.Session.CookieName != "pakwan_session" {
		t.Errorf("Session.CookieName = %q, want pakwan_session", cfg.Session.CookieName)
	}
	if cfg.Printer.Type != "none" {
		t.Errorf("Printer.Type = %q, want none", cfg.Printer.Type)
	}
	if cfg.RateLimit.Requests <= 0 || cfg.RateLimit.Duration <= 0 {
		t.Errorf("rate limit defaults should be positive: %+v", cfg.RateLimit)
	}
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.local",
		Port:     "5433",
		Name:     "pakwan",
		User:     "api",
		Password: "secret",
		SSLMode:  "disable",
		Timezone: "Asia/Karachi",
	}

	want := "host=db.local user=api password=secret dbname=pakwan port=5433 sslmode=disable TimeZone=Asia/Karachi"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
