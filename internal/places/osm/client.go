// Package osm is the OpenStreetMap place-data adapter, combining the Overpass
// API for nearby points of interest with Nominatim for geocoding.
package osm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

const (
	// DefaultOverpassURL is the public Overpass interpreter endpoint.
	DefaultOverpassURL = "https://overpass-api.de/api/interpreter"
	// DefaultNominatimURL is the public Nominatim endpoint.
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"

	userAgent = "brightside-server/1.0 (local business directory)"
)

// Client provides access to Overpass and Nominatim.
type Client struct {
	httpClient   *retryablehttp.Client
	rateLimiter  *rate.Limiter
	logger       *slog.Logger
	overpassURL  string
	nominatimURL string
}

// Options configures the OSM client. Empty URLs use the public endpoints.
type Options struct {
	OverpassURL  string
	NominatimURL string
	Logger       *slog.Logger
}

// NewClient creates a new OSM client.
// Nominatim's usage policy caps anonymous clients at 1 request per second;
// Overpass shares the same limiter for simplicity.
func NewClient(opts Options) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 2
	httpClient.HTTPClient.Timeout = 30 * time.Second
	httpClient.Logger = nil

	overpassURL := opts.OverpassURL
	if overpassURL == "" {
		overpassURL = DefaultOverpassURL
	}
	nominatimURL := opts.NominatimURL
	if nominatimURL == "" {
		nominatimURL = DefaultNominatimURL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		httpClient:   httpClient,
		rateLimiter:  rate.NewLimiter(rate.Every(time.Second), 2),
		logger:       logger,
		overpassURL:  overpassURL,
		nominatimURL: nominatimURL,
	}
}

// Name identifies this provider.
func (c *Client) Name() string { return "osm" }

// wait blocks until the rate limiter allows a request.
func (c *Client) wait(ctx context.Context) error {
	return c.rateLimiter.Wait(ctx)
}

// get performs a rate-limited GET and returns the response body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// post performs a rate-limited form POST and returns the response body.
func (c *Client) post(ctx context.Context, url string, body string) ([]byte, error) {
	if err := c.wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, []byte(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
