package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/n3eg/fetchx/fetch"
	"github.com/n3eg/fetchx/utils"
)

// Get resolves the URL and query, appends the encoded query string, and
// returns the handle tracking the request.
func (c *Client) Get(ctx context.Context, url fetch.Source[string], query fetch.Source[any]) *fetch.Handle {
	return fetch.Start(ctx, func(ctx context.Context) ([]byte, error) {
		u := url.Resolve()
		qs, err := utils.EncodeQuery(query.Resolve())
		if err != nil {
			return nil, fmt.Errorf("encode query: %w", err)
		}
		if qs != "" {
			sep := "?"
			if strings.Contains(u, "?") {
				sep = "&"
			}
			u += sep + qs
		}
		return c.do(ctx, http.MethodGet, u, nil)
	})
}

// Post sends the resolved payload as a JSON body.
func (c *Client) Post(ctx context.Context, url fetch.Source[string], payload fetch.Source[any]) *fetch.Handle {
	return c.send(ctx, http.MethodPost, url, payload)
}

func (c *Client) Put(ctx context.Context, url fetch.Source[string], payload fetch.Source[any]) *fetch.Handle {
	return c.send(ctx, http.MethodPut, url, payload)
}

func (c *Client) Patch(ctx context.Context, url fetch.Source[string], payload fetch.Source[any]) *fetch.Handle {
	return c.send(ctx, http.MethodPatch, url, payload)
}

func (c *Client) Delete(ctx context.Context, url fetch.Source[string], payload fetch.Source[any]) *fetch.Handle {
	return c.send(ctx, http.MethodDelete, url, payload)
}

func (c *Client) send(ctx context.Context, method string, url fetch.Source[string], payload fetch.Source[any]) *fetch.Handle {
	return fetch.Start(ctx, func(ctx context.Context) ([]byte, error) {
		var body io.Reader
		if p := payload.Resolve(); p != nil {
			buf, err := utils.EncodeJSONBody(p)
			if err != nil {
				return nil, fmt.Errorf("encode payload: %w", err)
			}
			body = buf
		}
		return c.do(ctx, method, url.Resolve(), body)
	})
}
