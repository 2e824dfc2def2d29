package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-kit/log/level"

	"github.com/n3eg/fetchx/apierr"
)

// do issues one request and returns the raw response body. Failures come
// back as *apierr.ErrorDetails: transport errors (no response at all) via
// FromTransport, non-2xx statuses via the after-error hook.
func (c *Client) do(ctx context.Context, method, rawURL string, body io.Reader) ([]byte, error) {
	endpoint := c.resolveURL(rawURL)

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for key, values := range c.Headers {
		for _, v := range values {
			req.Header.Set(key, v)
		}
	}
	if c.before != nil {
		c.before(req)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		level.Error(c.logger).Log("method", method, "url", endpoint, "err", err)
		return nil, apierr.FromTransport(err, endpoint)
	}
	defer resp.Body.Close()

	level.Debug(c.logger).Log("method", method, "url", endpoint,
		"status", resp.StatusCode, "took", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, defaultErrCap))
		return nil, c.onError(resp.StatusCode, slurp, endpoint)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.FromTransport(err, endpoint)
	}
	return data, nil
}
