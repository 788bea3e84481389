// Package films fetches the recently watched films list.
package films

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Film is one watched film. Rating is out of ten.
type Film struct {
	WatchedAt string `json:"watched_at"`
	Name      string `json:"name"`
	Rating    uint32 `json:"rating"`
	PosterURL string `json:"poster_url"`
}

// Stars renders the rating as half-star steps out of five.
func (f Film) Stars() string {
	r := min(f.Rating, 10)
	return strings.Repeat("★", int(r/2)) + strings.Repeat("½", int(r%2))
}

// Client fetches films from the films service.
type Client struct {
	url    string
	client *http.Client
}

// NewClient returns a client for url. A nil http client uses a default
// one with a ten second timeout.
func NewClient(url string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{url: url, client: client}
}

// List returns every film the service knows about.
func (c *Client) List(ctx context.Context) ([]Film, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch films: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch films: http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out []Film
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode films: %w", err)
	}
	return out, nil
}
