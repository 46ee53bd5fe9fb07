package scout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/samgozman/coin-thread/pkg/rotator"
)

// DefaultUserAgent is used when no user agent is configured.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

const requestAttempts = 3

// Client is the shared HTTP transport for all exchange sources.
// Every request attempt picks the next proxy from the rotator
// (direct connection when the rotator is empty).
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a Client that routes requests through the given rotator.
func NewClient(r *rotator.Rotator, userAgent string, timeout time.Duration) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout == 0 {
		timeout = 20 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: r.ProxyFunc(),
			},
		},
		userAgent: userAgent,
	}
}

// GetJSON fetches the URL and decodes the JSON response body into out.
// Transient failures are retried with backoff before giving up.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	return retry.Do(
		func() error {
			return c.getJSONOnce(ctx, url, out)
		},
		retry.Attempts(requestAttempts),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
}

func (c *Client) getJSONOnce(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
