package hass

import (
	"context"
	"time"
)

// EntityState is one entity as reported by Home Assistant: a scalar state
// plus an attribute mapping. State is nil when the host has no value yet.
type EntityState struct {
	EntityID    string         `json:"entity_id" validate:"required"`
	State       any            `json:"state"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	LastChanged time.Time      `json:"last_changed,omitzero"`
	LastUpdated time.Time      `json:"last_updated,omitzero"`
}

// Value returns the entity state, or nil for a missing entity.
func (e *EntityState) Value() any {
	if e == nil {
		return nil
	}
	return e.State
}

// Attr returns the named attribute, or nil when the entity or the
// attribute is missing.
func (e *EntityState) Attr(name string) any {
	if e == nil || e.Attributes == nil {
		return nil
	}
	return e.Attributes[name]
}

// Snapshot maps entity ids to their states at one update tick.
// Any id may be absent; that is a normal condition.
type Snapshot map[string]EntityState

// Lookup returns the state for id, or nil if the snapshot does not carry it.
func (s Snapshot) Lookup(id string) *EntityState {
	if s == nil {
		return nil
	}
	st, ok := s[id]
	if !ok {
		return nil
	}
	return &st
}

// StateSource abstracts where entity states come from (the Home Assistant
// REST API, a test double, ...).
type StateSource interface {
	Name() string
	FetchStates(ctx context.Context, ids []string) (Snapshot, error)
}
