// Package admin is the owner's view of received contact messages: it fetches
// the list from the API, filters it, summarizes it and renders it for a
// terminal.
package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/folio/backend/internal/model"
)

// DefaultTimeout bounds a single fetch.
const DefaultTimeout = 15 * time.Second

// Client reads GET /api/contacts.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

// NewClient builds a Client for the API at baseURL. token may be empty when
// the server runs without an admin token.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   strings.TrimRight(baseURL, "/") + "/api/contacts",
		token:      token,
	}
}

// Fetch returns every stored message in the order the server lists them.
func (c *Client) Fetch(ctx context.Context) ([]*model.ContactMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("admin: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("admin: fetch contacts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("admin: fetch contacts: status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var msgs []*model.ContactMessage
	if err := json.NewDecoder(resp.Body).Decode(&msgs); err != nil {
		return nil, fmt.Errorf("admin: decode contacts: %w", err)
	}
	if msgs == nil {
		msgs = []*model.ContactMessage{}
	}
	return msgs, nil
}
