// Package geo provides a best-effort IP geolocation lookup against the
// ipinfo.io API. Failures and timeouts never propagate to the redirect path.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kirankumar485/urlshortner/internal/config"
)

// Location holds the fields returned by the geolocation API
type Location struct {
	IP      string `json:"ip"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
	Org     string `json:"org"`
}

// ClientInterface defines the interface for geolocation lookups
type ClientInterface interface {
	Lookup(ctx context.Context, ip string) (*Location, error)
}

// Client calls the geolocation API with a bounded timeout
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a new geolocation client
func NewClient(cfg *config.GeoConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		endpoint:   cfg.Endpoint,
	}
}

// Lookup resolves an IP address to a location. The request is bounded by
// both the client timeout and the caller's context.
func (c *Client) Lookup(ctx context.Context, ip string) (*Location, error) {
	url := fmt.Sprintf("%s/%s/json", c.endpoint, ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geolocation request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation lookup returned status %d", resp.StatusCode)
	}

	var loc Location
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return nil, fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	return &loc, nil
}
