package card

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Default entity ids and icon produced by the Local Weather Forecast integration.
const (
	DefaultDetailEntity         = "sensor.local_forecast_zambretti_detail"
	DefaultPressureChangeEntity = "sensor.local_forecast_pressurechange"
	DefaultIconNow              = "mdi:weather-cloudy-clock"

	stubEntity = "sensor.local_forecast"
)

// ErrMissingEntity is matched by every ConfigurationError.
var ErrMissingEntity = errors.New("missing required entity")

// ConfigurationError reports an unusable card configuration. It is only
// ever returned at setup time.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "card configuration: " + e.Reason + " (e.g. " + stubEntity + ")"
}

func (e *ConfigurationError) Unwrap() error { return ErrMissingEntity }

// RawConfig is the configuration as written by the dashboard author.
type RawConfig struct {
	Type                 string `json:"type,omitempty"`
	Entity               string `json:"entity" validate:"required"`
	DetailEntity         string `json:"detail_entity,omitempty"`
	PressureChangeEntity string `json:"pressure_change_entity,omitempty"`
	IconNow              string `json:"icon_now,omitempty"`
}

// Config is the effective, fully populated configuration.
type Config struct {
	Type                 string `json:"type,omitempty"`
	Entity               string `json:"entity"`
	DetailEntity         string `json:"detail_entity"`
	PressureChangeEntity string `json:"pressure_change_entity"`
	IconNow              string `json:"icon_now"`
}

// EntityIDs lists the three entities the card reads, primary first.
func (c Config) EntityIDs() []string {
	return []string{c.Entity, c.DetailEntity, c.PressureChangeEntity}
}

func defaultConfig() Config {
	return Config{
		DetailEntity:         DefaultDetailEntity,
		PressureChangeEntity: DefaultPressureChangeEntity,
		IconNow:              DefaultIconNow,
	}
}

// ValidateConfig checks raw and overlays it onto the defaults. Entity ids
// are trimmed; optional fields left blank keep their default.
func ValidateConfig(raw *RawConfig) (Config, error) {
	if raw == nil {
		return Config{}, &ConfigurationError{Reason: "missing required entity"}
	}
	if err := validate.Struct(raw); err != nil {
		return Config{}, &ConfigurationError{Reason: "missing required entity"}
	}

	entity := strings.TrimSpace(raw.Entity)
	if entity == "" {
		return Config{}, &ConfigurationError{Reason: "missing required entity"}
	}

	cfg := defaultConfig()
	cfg.Type = raw.Type
	cfg.Entity = entity
	if v := strings.TrimSpace(raw.DetailEntity); v != "" {
		cfg.DetailEntity = v
	}
	if v := strings.TrimSpace(raw.PressureChangeEntity); v != "" {
		cfg.PressureChangeEntity = v
	}
	if v := strings.TrimSpace(raw.IconNow); v != "" {
		cfg.IconNow = v
	}
	return cfg, nil
}

// StubConfig returns a working example configuration for editors and previews.
func StubConfig() RawConfig {
	return RawConfig{
		Entity:               stubEntity,
		DetailEntity:         DefaultDetailEntity,
		PressureChangeEntity: DefaultPressureChangeEntity,
		IconNow:              DefaultIconNow,
	}
}
