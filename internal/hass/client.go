package hass

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// Client reads entity states from the Home Assistant REST API.
type Client struct {
	name    string
	baseURL string
	token   string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewClient creates a Client for the instance at baseURL. limiter may be nil.
func NewClient(client *http.Client, baseURL, token string, limiter *rate.Limiter) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "homeassistant",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		name:    "homeassistant",
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
			Limiter: limiter,
		},
		circuit: cb,
	}
}

func (c *Client) Name() string {
	return c.name
}

// FetchStates returns the states of ids. Entities unknown to Home Assistant
// are left out of the snapshot rather than reported as errors.
func (c *Client) FetchStates(ctx context.Context, ids []string) (Snapshot, error) {
	snap := make(Snapshot, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, seen := snap[id]; seen {
			continue
		}

		st, found, err := c.fetchState(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", id, err)
		}
		if found {
			snap[id] = st
		}
	}
	return snap, nil
}

func (c *Client) fetchState(ctx context.Context, id string) (EntityState, bool, error) {
	buildRequest := func() (*http.Request, error) {
		u := c.baseURL + "/api/states/" + url.PathEscape(id)
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, c.httpCfg, c.circuit, buildRequest)
	if err != nil {
		return EntityState{}, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return EntityState{}, false, nil
	}

	var st EntityState
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return EntityState{}, false, fmt.Errorf("decode state: %w", err)
	}
	if st.EntityID == "" {
		st.EntityID = id
	}
	return st, true, nil
}

var _ StateSource = (*Client)(nil)
