// Package geoapify is the Geoapify place-data adapter, covering the Places,
// Geocoding, and Place Details APIs. All endpoints are keyed GETs.
package geoapify

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

// DefaultBaseURL is the public Geoapify API endpoint.
const DefaultBaseURL = "https://api.geoapify.com"

// Client provides access to the Geoapify APIs.
type Client struct {
	httpClient  *retryablehttp.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger
	baseURL     string
	apiKey      string
}

// Options configures the Geoapify client. APIKey is required; an empty
// BaseURL uses the public endpoint.
type Options struct {
	APIKey  string
	BaseURL string
	Logger  *slog.Logger
}

// NewClient creates a new Geoapify client.
// The free tier allows 5 requests per second.
func NewClient(opts Options) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 2
	httpClient.HTTPClient.Timeout = 30 * time.Second
	httpClient.Logger = nil

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		httpClient:  httpClient,
		rateLimiter: rate.NewLimiter(rate.Limit(5), 5),
		logger:      logger,
		baseURL:     baseURL,
		apiKey:      opts.APIKey,
	}
}

// Name identifies this provider.
func (c *Client) Name() string { return "geoapify" }

// Configured reports whether an API key is present. An unconfigured client
// is skipped in the provider fallback chain.
func (c *Client) Configured() bool { return c.apiKey != "" }

// get performs a rate-limited GET and returns the response body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
