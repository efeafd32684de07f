package card

import (
	"fmt"
	"sort"
	"sync"
)

// CardType describes a card to the dashboard editor.
type CardType struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Registration is this card's entry in the card registry.
var Registration = CardType{
	Type:        "local-weather-forecast-card",
	Name:        "Local Weather Forecast Card",
	Description: "A polished 12h local weather card for sensors from Local Weather Forecast integration",
}

// Registry holds the card types offered by the host.
type Registry struct {
	mu    sync.RWMutex
	types map[string]CardType
}

func NewRegistry() *Registry {
	return &Registry{types: make(map[string]CardType)}
}

// Register adds ct. Registering the same type twice is an error.
func (r *Registry) Register(ct CardType) error {
	if ct.Type == "" {
		return fmt.Errorf("card type is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[ct.Type]; exists {
		return fmt.Errorf("card type %q already registered", ct.Type)
	}
	r.types[ct.Type] = ct
	return nil
}

// List returns the registered card types ordered by type.
func (r *Registry) List() []CardType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]CardType, 0, len(r.types))
	for _, ct := range r.types {
		out = append(out, ct)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// RegisterCard announces this card to reg. Hosts call it once at startup.
func RegisterCard(reg *Registry) error {
	return reg.Register(Registration)
}
