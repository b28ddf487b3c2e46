package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/yourusername/gridpace/internal/models"
)

// HTTPProvider fetches event bundles from a feature-extractor service
type HTTPProvider struct {
	baseURL string
	client  *RateLimitedHTTPClient
}

// NewHTTPProvider creates a provider over a rate-limited retrying client
func NewHTTPProvider(baseURL string, client *RateLimitedHTTPClient) (*HTTPProvider, error) {
	if client == nil {
		return nil, fmt.Errorf("HTTP client is required")
	}
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	return &HTTPProvider{baseURL: baseURL, client: client}, nil
}

// Name returns the provider name
func (h *HTTPProvider) Name() string {
	return "http"
}

// Events fetches the full season bundle
func (h *HTTPProvider) Events(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := h.getJSON(ctx, h.baseURL+"/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Event fetches a single event bundle
func (h *HTTPProvider) Event(ctx context.Context, eventID string) (*models.Event, error) {
	event := &models.Event{}
	if err := h.getJSON(ctx, h.baseURL+"/events/"+eventID, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (h *HTTPProvider) getJSON(ctx context.Context, url string, out any) error {
	resp, err := h.client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}
	return nil
}
