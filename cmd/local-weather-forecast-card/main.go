package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/time/rate"

	httpapi "github.com/i474232898/local-weather-forecast-card/internal/api/http"
	"github.com/i474232898/local-weather-forecast-card/internal/card"
	"github.com/i474232898/local-weather-forecast-card/internal/config"
	"github.com/i474232898/local-weather-forecast-card/internal/dashboard"
	"github.com/i474232898/local-weather-forecast-card/internal/hass"
	"github.com/i474232898/local-weather-forecast-card/internal/scheduler"
	"github.com/i474232898/local-weather-forecast-card/internal/store"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Card types offered by this host; registered once at startup.
	registry := card.NewRegistry()
	if err := card.RegisterCard(registry); err != nil {
		log.Fatalf("failed to register card: %v", err)
	}

	// Home Assistant source, only when a URL is configured.
	var source hass.StateSource
	if cfg.HassURL != "" {
		httpClient := &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
		limiter := rate.NewLimiter(rate.Limit(cfg.HassRateLimit), cfg.HassRateBurst)
		source = hass.NewClient(httpClient, cfg.HassURL, cfg.HassToken, limiter)
	} else {
		log.Println("INFO: HASS_URL not set; waiting for pushed states on /api/v1/states")
	}

	memStore := store.NewMemoryStore(cfg.StateMaxAge)

	// The card fails here, once, if its configuration is unusable.
	service, err := dashboard.NewService(cfg.Card.Raw(), card.New(), memStore, source)
	if err != nil {
		log.Fatalf("failed to configure card: %v", err)
	}

	if source != nil {
		sched := scheduler.New(service, cfg.PollInterval, 30*time.Second)
		if err := sched.Start(); err != nil {
			log.Fatalf("failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

	app := fiber.New(fiber.Config{
		AppName:               card.Registration.Type,
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": card.Registration.Type,
		})
	})

	httpapi.RegisterRoutes(app, service, registry)

	go func() {
		log.Printf("INFO: serving %s on :%s", card.Registration.Name, cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
