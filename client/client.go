// Package client implements the request layer: two configured HTTP clients
// (one bound to the primary backend, one for third-party endpoints), a
// before-request header hook, an after-error normalization hook, and verb
// helpers returning reactive fetch handles.
package client

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-kit/log"

	"github.com/n3eg/fetchx/apierr"
	"github.com/n3eg/fetchx/config"
)

// error bodies are slurped up to this cap
const defaultErrCap = 8192

// BeforeRequestHook runs before every outgoing call and may mutate headers.
type BeforeRequestHook func(*http.Request)

// AfterErrorHook normalizes a non-2xx response into ErrorDetails.
type AfterErrorHook func(status int, body []byte, endpoint string) *apierr.ErrorDetails

// Client issues JSON requests against one backend. Configuration is
// read-only after construction; concurrent calls share nothing else.
type Client struct {
	BaseURL    string // empty for the external client
	HTTPClient *http.Client
	Headers    http.Header

	logger  log.Logger
	before  BeforeRequestHook
	onError AfterErrorHook
}

type Option func(*Client) error

// WithHTTPClient swaps the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("client: nil http client")
		}
		c.HTTPClient = hc
		return nil
	}
}

// WithTimeout sets a per-request timeout on the underlying http.Client.
// The default is no timeout (transport defaults apply).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		c.HTTPClient.Timeout = d
		return nil
	}
}

// WithHeader adds a default header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) error {
		c.Headers.Set(key, value)
		return nil
	}
}

// WithLogger attaches a go-kit logger; the default discards everything.
func WithLogger(l log.Logger) Option {
	return func(c *Client) error {
		if l == nil {
			return errors.New("client: nil logger")
		}
		c.logger = l
		return nil
	}
}

// WithBeforeRequestHook replaces the default auth-header hook.
func WithBeforeRequestHook(h BeforeRequestHook) Option {
	return func(c *Client) error {
		c.before = h
		return nil
	}
}

// WithAfterErrorHook replaces the default error classification.
func WithAfterErrorHook(h AfterErrorHook) Option {
	return func(c *Client) error {
		if h == nil {
			return errors.New("client: nil error hook")
		}
		c.onError = h
		return nil
	}
}

// New builds the bound client: relative paths resolve against the
// configured base URL.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	return newClient(cfg, cfg.BaseURL, opts)
}

// NewExternal builds the unbound client for third-party endpoints; every
// URL must be absolute.
func NewExternal(cfg *config.Config, opts ...Option) (*Client, error) {
	return newClient(cfg, "", opts)
}

func newClient(cfg *config.Config, baseURL string, opts []Option) (*Client, error) {
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("client: invalid base url %q", baseURL)
		}
		baseURL = strings.TrimRight(baseURL, "/")
	}

	headers := make(http.Header)
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")

	c := &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
		Headers:    headers,
		logger:     log.NewNopLogger(),
		before:     AuthHeaderHook(cfg),
		onError:    apierr.Classify,
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// resolveURL joins a relative path with the base URL; absolute URLs pass
// through so the bound client can still hit them when asked to.
func (c *Client) resolveURL(raw string) string {
	if c.BaseURL == "" || strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return c.BaseURL + raw
}
