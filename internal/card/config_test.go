package card

import (
	"errors"
	"testing"
)

func TestValidateConfigRequiresEntity(t *testing.T) {
	for name, raw := range map[string]*RawConfig{
		"nil":   nil,
		"empty": {},
		"blank entity": {Entity: " \t "},
		"only optional fields": {
			DetailEntity: "sensor.detail",
			IconNow:      "mdi:home",
		},
	} {
		_, err := ValidateConfig(raw)
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("%s: expected ConfigurationError, got %v", name, err)
		}
		if !errors.Is(err, ErrMissingEntity) {
			t.Fatalf("%s: expected ErrMissingEntity, got %v", name, err)
		}
	}
}

func TestValidateConfigAppliesDefaults(t *testing.T) {
	cfg, err := ValidateConfig(&RawConfig{Entity: "sensor.x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Config{
		Entity:               "sensor.x",
		DetailEntity:         "sensor.local_forecast_zambretti_detail",
		PressureChangeEntity: "sensor.local_forecast_pressurechange",
		IconNow:              "mdi:weather-cloudy-clock",
	}
	if cfg != want {
		t.Fatalf("ValidateConfig = %+v, want %+v", cfg, want)
	}
}

func TestValidateConfigOverridesDefaults(t *testing.T) {
	cfg, err := ValidateConfig(&RawConfig{
		Type:                 "custom:local-weather-forecast-card",
		Entity:               "sensor.x",
		DetailEntity:         "sensor.y",
		PressureChangeEntity: "  ",
		IconNow:              "mdi:weather-windy",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DetailEntity != "sensor.y" || cfg.IconNow != "mdi:weather-windy" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.PressureChangeEntity != DefaultPressureChangeEntity {
		t.Fatalf("PressureChangeEntity = %q, want default", cfg.PressureChangeEntity)
	}
	if cfg.Type != "custom:local-weather-forecast-card" {
		t.Fatalf("Type = %q, want it preserved", cfg.Type)
	}
	if ids := cfg.EntityIDs(); len(ids) != 3 || ids[0] != "sensor.x" || ids[1] != "sensor.y" {
		t.Fatalf("EntityIDs = %v", ids)
	}
}

func TestValidateConfigTrimsEntity(t *testing.T) {
	cfg, err := ValidateConfig(&RawConfig{Entity: " sensor.local_forecast ", DetailEntity: "sensor.y "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Entity != "sensor.local_forecast" {
		t.Fatalf("Entity = %q, want %q", cfg.Entity, "sensor.local_forecast")
	}
	if cfg.DetailEntity != "sensor.y" {
		t.Fatalf("DetailEntity = %q, want %q", cfg.DetailEntity, "sensor.y")
	}
}

func TestStubConfigIsValid(t *testing.T) {
	stub := StubConfig()
	cfg, err := ValidateConfig(&stub)
	if err != nil {
		t.Fatalf("stub config rejected: %v", err)
	}
	if cfg.Entity != "sensor.local_forecast" {
		t.Fatalf("stub entity = %q, want %q", cfg.Entity, "sensor.local_forecast")
	}
}
