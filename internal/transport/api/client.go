package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/pkg/log"
)

const (
	maxResponseSize       = 1 << 20 // 1MB limit
	defaultRequestTimeout = 30 * time.Second
)

// Client posts questions to the chat backend.
type Client struct {
	endpoint string
	client   *http.Client
}

func NewClientWithTimeout(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func NewClient(cfg core.AppConfig) *Client {
	return NewClientWithTimeout(cfg.GetEndpoint(), cfg.GetRequestTimeout())
}

// Ask sends the question as a form field. Any 2xx body is decoded, so a
// malformed reply comes back as core.UnknownResponse rather than an error.
func (c *Client) Ask(ctx context.Context, question string) (core.ServerResponse, error) {
	logger := log.FromCtx(ctx)

	form := url.Values{"question": {question}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", core.CausetteUserAgent)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach backend: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("backend replied")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d", core.ErrServerStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return core.DecodeServerResponse(body), nil
}
