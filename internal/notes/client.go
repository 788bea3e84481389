package notes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client talks to the remote notes service. Fields are sent as query
// parameters and responses are JSON.
type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

var _ Store = (*Client)(nil)

// NewClient returns a client for baseURL using http.DefaultClient.
func NewClient(baseURL string) *Client {
	return NewWithClient(baseURL, nil)
}

// NewWithClient returns a client that sends requests through client.
func NewWithClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		timeout: defaultTimeout,
	}
}

// List returns every note.
func (c *Client) List(ctx context.Context) ([]Note, error) {
	body, err := c.request(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return nil, err
	}
	var out []Note
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return out, nil
}

// Create adds a note and returns it with its assigned id.
func (c *Client) Create(ctx context.Context, content string, x, y int) (Note, error) {
	body, err := c.request(ctx, http.MethodPost, "/", noteQuery(content, x, y))
	if err != nil {
		return Note{}, err
	}
	var n Note
	if err := json.Unmarshal(body, &n); err != nil {
		return Note{}, fmt.Errorf("decode created note: %w", err)
	}
	return n, nil
}

// Update overwrites the content and position of an existing note.
func (c *Client) Update(ctx context.Context, n Note) error {
	_, err := c.request(ctx, http.MethodPatch, "/"+strconv.Itoa(n.ID), noteQuery(n.Content, n.X, n.Y))
	return err
}

// Delete removes a note.
func (c *Client) Delete(ctx context.Context, id int) error {
	_, err := c.request(ctx, http.MethodDelete, "/"+strconv.Itoa(id), nil)
	return err
}

func noteQuery(content string, x, y int) url.Values {
	q := url.Values{}
	q.Set("content", content)
	q.Set("x", strconv.Itoa(x))
	q.Set("y", strconv.Itoa(y))
	return q
}

func (c *Client) request(ctx context.Context, method, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	if c.timeout > 0 {
		if deadline, ok := ctx.Deadline(); !ok || time.Until(deadline) > c.timeout {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: string(payload)}
	}
	return payload, nil
}
