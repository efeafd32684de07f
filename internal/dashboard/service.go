package dashboard

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/i474232898/local-weather-forecast-card/internal/card"
	"github.com/i474232898/local-weather-forecast-card/internal/hass"
	"github.com/i474232898/local-weather-forecast-card/internal/store"
)

// Service plays the host for one card: it keeps the entity store current
// and pushes every new snapshot into the card, one call at a time.
type Service struct {
	mu     sync.Mutex
	card   *card.Card
	config card.Config
	store  *store.MemoryStore
	source hass.StateSource
}

// NewService configures c with raw and binds it to st. source may be nil
// when states only arrive through Push.
func NewService(raw *card.RawConfig, c *card.Card, st *store.MemoryStore, source hass.StateSource) (*Service, error) {
	if err := c.SetConfig(raw); err != nil {
		return nil, err
	}
	cfg, _ := c.Config()
	svc := &Service{
		card:   c,
		config: cfg,
		store:  st,
		source: source,
	}
	if err := svc.render(); err != nil {
		return nil, err
	}
	return svc, nil
}

// Refresh fetches the card's entities from the source, stores them and
// re-renders the card.
func (s *Service) Refresh(ctx context.Context) error {
	if s.source == nil {
		return fmt.Errorf("no state source configured")
	}

	ids := s.config.EntityIDs()
	log.Printf("DEBUG: Refresh called for %v from %s", ids, s.source.Name())

	snap, err := s.source.FetchStates(ctx, ids)
	if err != nil {
		// Keep the last rendered card; the host retries on the next tick.
		return fmt.Errorf("fetch states from %s: %w", s.source.Name(), err)
	}
	s.store.Replace(ids, snap)
	return s.render()
}

// Push applies externally pushed states and re-renders the card. States of
// entities the card does not read are dropped; the returned count is the
// number of states kept.
func (s *Service) Push(states ...hass.EntityState) (int, error) {
	wanted := make(map[string]struct{}, 3)
	for _, id := range s.config.EntityIDs() {
		wanted[id] = struct{}{}
	}

	accepted := make([]hass.EntityState, 0, len(states))
	for _, st := range states {
		st.EntityID = strings.TrimSpace(st.EntityID)
		if _, ok := wanted[st.EntityID]; !ok {
			continue
		}
		accepted = append(accepted, st)
	}
	if len(accepted) == 0 {
		return 0, nil
	}

	s.store.Apply(accepted...)
	if err := s.render(); err != nil {
		return 0, err
	}
	return len(accepted), nil
}

func (s *Service) render() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.card.SetHass(s.store.Snapshot()); err != nil {
		return fmt.Errorf("render card: %w", err)
	}
	return nil
}

// HTML returns the card mounted in its host element.
func (s *Service) HTML() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.card.Surface().Mount()
}

// Model derives a fresh render model from the stored states.
func (s *Service) Model() card.RenderModel {
	return card.BuildModel(s.store.Snapshot(), s.config)
}

// Config returns the card's effective configuration.
func (s *Service) Config() card.Config {
	return s.config
}

// CardSize returns the card's layout size hint.
func (s *Service) CardSize() int {
	return s.card.CardSize()
}
