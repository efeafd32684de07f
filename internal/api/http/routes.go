package httpapi

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/local-weather-forecast-card/internal/card"
	"github.com/i474232898/local-weather-forecast-card/internal/dashboard"
	"github.com/i474232898/local-weather-forecast-card/internal/hass"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *dashboard.Service, registry *card.Registry) {
	app.Get("/card", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(service.HTML())
	})

	v1 := app.Group("/api/v1")

	v1.Get("/card", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"type":        card.Registration.Type,
			"name":        card.Registration.Name,
			"description": card.Registration.Description,
			"size":        service.CardSize(),
			"config":      service.Config(),
		})
	})

	v1.Get("/card/model", func(c *fiber.Ctx) error {
		return c.JSON(service.Model())
	})

	v1.Get("/card/stub", func(c *fiber.Ctx) error {
		return c.JSON(card.StubConfig())
	})

	v1.Get("/cards", func(c *fiber.Ctx) error {
		return c.JSON(registry.List())
	})

	v1.Post("/states", func(c *fiber.Ctx) error {
		states, err := parseStates(c.Body())
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		for _, st := range states {
			if err := validate.Struct(st); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}

		accepted, err := service.Push(states...)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render card")
		}
		return c.JSON(fiber.Map{
			"accepted": accepted,
			"ignored":  len(states) - accepted,
		})
	})
}

// parseStates accepts either a single state object or a list of them.
func parseStates(body []byte) ([]hass.EntityState, error) {
	var list []hass.EntityState
	if err := json.Unmarshal(body, &list); err == nil {
		if len(list) == 0 {
			return nil, fmt.Errorf("no states in request body")
		}
		return list, nil
	}

	var one hass.EntityState
	if err := json.Unmarshal(body, &one); err != nil {
		return nil, fmt.Errorf("invalid state payload: %w", err)
	}
	return []hass.EntityState{one}, nil
}
