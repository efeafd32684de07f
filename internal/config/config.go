package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/i474232898/local-weather-forecast-card/internal/card"
)

// CardConfig is the card configuration as read from the environment.
type CardConfig struct {
	Entity               string `env:"CARD_ENTITY"`
	DetailEntity         string `env:"CARD_DETAIL_ENTITY"`
	PressureChangeEntity string `env:"CARD_PRESSURE_CHANGE_ENTITY"`
	IconNow              string `env:"CARD_ICON_NOW"`
}

// Raw converts the environment values into the card's raw configuration.
func (c CardConfig) Raw() *card.RawConfig {
	return &card.RawConfig{
		Type:                 "custom:" + card.Registration.Type,
		Entity:               c.Entity,
		DetailEntity:         c.DetailEntity,
		PressureChangeEntity: c.PressureChangeEntity,
		IconNow:              c.IconNow,
	}
}

type AppConfig struct {
	Port string `env:"PORT" envDefault:"8080"`

	// HassURL is the Home Assistant base URL. Empty means states only
	// arrive through the push endpoint.
	HassURL   string `env:"HASS_URL"`
	HassToken string `env:"HASS_TOKEN"`

	// PollInterval controls how often the card entities are fetched.
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"1m"`
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	// Outbound request budget towards Home Assistant.
	HassRateLimit float64 `env:"HASS_RATE_LIMIT" envDefault:"2"`
	HassRateBurst int     `env:"HASS_RATE_BURST" envDefault:"3"`

	// StateMaxAge drops entities not updated for this long (0 = never).
	StateMaxAge time.Duration `env:"STATE_MAX_AGE" envDefault:"0s"`

	Card CardConfig
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	return Parse()
}

// Parse reads configuration from the current environment only.
func Parse() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PollInterval <= 0 {
		return nil, fmt.Errorf("invalid POLL_INTERVAL: must be positive")
	}
	if cfg.HassRateBurst <= 0 {
		return nil, fmt.Errorf("invalid HASS_RATE_BURST: must be positive")
	}
	return cfg, nil
}
