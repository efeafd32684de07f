package config

import (
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("CARD_ENTITY", "sensor.local_forecast")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.PollInterval != time.Minute || cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("intervals = %v/%v, want 1m/10s", cfg.PollInterval, cfg.HTTPTimeout)
	}
	if cfg.HassURL != "" {
		t.Fatalf("HassURL = %q, want empty", cfg.HassURL)
	}

	raw := cfg.Card.Raw()
	if raw.Entity != "sensor.local_forecast" || raw.Type != "custom:local-weather-forecast-card" {
		t.Fatalf("raw card config = %+v", raw)
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("HASS_URL", "http://homeassistant.local:8123")
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("CARD_ICON_NOW", "mdi:home")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" || cfg.PollInterval != 30*time.Second {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Card.IconNow != "mdi:home" {
		t.Fatalf("IconNow = %q, want %q", cfg.Card.IconNow, "mdi:home")
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "soon")
	if _, err := Parse(); err == nil {
		t.Fatal("expected error for invalid duration")
	}

	t.Setenv("POLL_INTERVAL", "0s")
	if _, err := Parse(); err == nil {
		t.Fatal("expected error for zero interval")
	}
}
