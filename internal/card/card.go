package card

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/i474232898/local-weather-forecast-card/internal/hass"
)

// CardSize is the layout height hint reported to the dashboard grid.
const CardSize = 4

// Surface is the card's isolated rendering target. It is created once per
// card and only written from within SetHass.
type Surface struct {
	id      string
	content string
}

func newSurface() *Surface {
	return &Surface{id: uuid.NewString()}
}

// ID identifies the surface for the lifetime of its card.
func (s *Surface) ID() string { return s.id }

// Content returns the current style and markup fragment.
func (s *Surface) Content() string { return s.content }

// Mount wraps the fragment in the card element with a declarative shadow
// root so the style stays scoped to the card.
func (s *Surface) Mount() string {
	var b strings.Builder
	b.WriteString(`<` + Registration.Type + ` id="card-` + s.id + `">`)
	b.WriteString(`<template shadowrootmode="open">` + "\n")
	b.WriteString(s.content)
	b.WriteString(`</template></` + Registration.Type + ">\n")
	return b.String()
}

// Card binds a frozen configuration to a rendering surface. Callers must
// not use one Card from several goroutines at once.
type Card struct {
	config     Config
	configured bool
	surface    *Surface
}

// New returns an unconfigured card. It renders nothing until SetConfig
// succeeds.
func New() *Card {
	return &Card{}
}

// SetConfig validates raw and freezes the effective configuration. The
// rendering surface is created on first success and kept afterwards.
func (c *Card) SetConfig(raw *RawConfig) error {
	cfg, err := ValidateConfig(raw)
	if err != nil {
		c.configured = false
		return err
	}
	c.config = cfg
	c.configured = true
	if c.surface == nil {
		c.surface = newSurface()
	}
	return nil
}

// Config returns the effective configuration and whether one is set.
func (c *Card) Config() (Config, bool) {
	return c.config, c.configured
}

// Surface returns the rendering surface, or nil before the first SetConfig.
func (c *Card) Surface() *Surface {
	return c.surface
}

// SetHass renders snapshot into the surface. An unconfigured card or a nil
// snapshot is a no-op.
func (c *Card) SetHass(snapshot hass.Snapshot) error {
	if !c.configured || snapshot == nil {
		return nil
	}
	out, err := Render(context.Background(), BuildModel(snapshot, c.config))
	if err != nil {
		return err
	}
	c.surface.content = out
	return nil
}

// CardSize reports the fixed layout size hint.
func (c *Card) CardSize() int {
	return CardSize
}
