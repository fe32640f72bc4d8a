// Package api provides the client for a remote geocoding service speaking
// the Nominatim search format.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"

	"github.com/dplocate/locator/internal/cache"
	"github.com/dplocate/locator/internal/search"
)

type hit struct {
	location orb.Point
	label    string
}

// Client handles communication with the geocoding service. Resolved queries
// are cached for the life of the client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	results    *cache.Cache[string, hit]
}

// New creates a new geocoding client.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		results:    cache.New[string, hit](),
	}
}

// Healthcheck checks if the geocoding service is reachable.
func (c *Client) Healthcheck() error {
	resp, err := c.httpClient.Get(c.baseURL + "/status")
	if err != nil {
		return fmt.Errorf("healthcheck request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("healthcheck returned status %d", resp.StatusCode)
	}
	return nil
}

// searchResult is one entry of the service's response array.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a free-text query to a coordinate and display label.
// A query with no results returns an error; the resolver chain decides
// whether that ends the search.
func (c *Client) Geocode(ctx context.Context, query string) (orb.Point, string, error) {
	if h, ok := c.results.Get(query); ok {
		return h.location, h.label, nil
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return orb.Point{}, "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return orb.Point{}, "", fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, "", fmt.Errorf("geocode returned status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return orb.Point{}, "", fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return orb.Point{}, "", fmt.Errorf("%w for %q", search.ErrNoResults, query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return orb.Point{}, "", fmt.Errorf("bad latitude in geocode response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return orb.Point{}, "", fmt.Errorf("bad longitude in geocode response: %w", err)
	}

	h := hit{location: orb.Point{lon, lat}, label: results[0].DisplayName}
	c.results.Set(query, h)
	return h.location, h.label, nil
}
