package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/ports"
)

// Client sends dialog requests to a running server
type Client struct {
	baseURL string
	http    *http.Client
}

// Verify interface compliance at compile time
var _ ports.MessageSender = (*Client)(nil)

// NewClient creates a Client for the server at addr (host:port or URL)
func NewClient(addr string, timeout time.Duration) *Client {
	base := strings.TrimRight(addr, "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
	}
}

// Send implements ports.MessageSender
func (c *Client) Send(ctx context.Context, req domain.Request) (*domain.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/messages", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrHostUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	var out domain.Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", req.Action, err)
	}
	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusBadRequest && strings.HasPrefix(out.Error, domain.ErrUnknownAction.Error()) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAction, req.Action)
		}
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, out.Error)
	}
	return &out, nil
}
