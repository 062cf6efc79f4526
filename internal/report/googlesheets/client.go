// Package googlesheets provides a client for the Google Sheets values API.
package googlesheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/veggierescue/veggierescue/internal/api/middleware"
	"github.com/veggierescue/veggierescue/internal/provider/resilience"
)

const (
	// DefaultBaseURL is the base URL for the Sheets values API.
	DefaultBaseURL = "https://sheets.googleapis.com/v4"

	// ProviderName identifies this provider.
	ProviderName = "google-sheets"
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Sheets client.
type ClientConfig struct {
	// APIKey authenticates requests to the values API.
	APIKey string

	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use. If nil, a default resilient
	// client is created.
	HTTPClient HTTPDoer

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration

	// Metrics records provider request metrics when set.
	Metrics *middleware.ProviderMetrics
}

// Client is a Google Sheets values API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPDoer
	metrics    *middleware.ProviderMetrics
}

// NewClient creates a new Sheets client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = resilience.NewClient(resilience.ClientConfig{
			Name:            ProviderName,
			Timeout:         timeout,
			MaxRetries:      3,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		})
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		metrics:    cfg.Metrics,
	}
}

// valuesResponse is the Sheets values API payload.
type valuesResponse struct {
	Range          string     `json:"range"`
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}

// FetchValues retrieves the cell values of one range of one spreadsheet.
func (c *Client) FetchValues(ctx context.Context, spreadsheetID, valueRange string) ([][]string, error) {
	start := time.Now()
	values, err := c.fetchValues(ctx, spreadsheetID, valueRange)
	if c.metrics != nil {
		c.metrics.RecordRequest(ProviderName, "values.get", time.Since(start), err)
	}
	return values, err
}

func (c *Client) fetchValues(ctx context.Context, spreadsheetID, valueRange string) ([][]string, error) {
	reqURL := fmt.Sprintf("%s/spreadsheets/%s/values/%s?key=%s",
		c.baseURL, spreadsheetID, url.PathEscape(valueRange), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sheet values: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheets API error: %s", resp.Status)
	}

	var payload valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding sheet values: %w", err)
	}

	return payload.Values, nil
}
