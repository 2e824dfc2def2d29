package client

import (
	"context"

	"github.com/n3eg/fetchx/config"
	"github.com/n3eg/fetchx/fetch"
)

// Facade pairs the bound and external clients behind the verb surface the
// UI consumes: default variants target the primary backend, *External
// variants hit arbitrary third-party endpoints.
type Facade struct {
	Bound    *Client
	External *Client
}

// NewFacade builds both clients from one configuration. Options apply to
// each client.
func NewFacade(cfg *config.Config, opts ...Option) (*Facade, error) {
	bound, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	external, err := NewExternal(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Facade{Bound: bound, External: external}, nil
}

func (f *Facade) Get(ctx context.Context, url fetch.Source[string], query fetch.Source[any]) *fetch.Handle {
	return f.Bound.Get(ctx, url, query)
}

func (f *Facade) Post(ctx context.Context, url fetch.Source[string], payload fetch.Source[any]) *fetch.Handle {
	return f.Bound.Post(ctx, url, payload)
}

func (f *Facade) Put(ctx context.Context, url fetch.Source[string], payload fetch.Source[any]) *fetch.Handle {
	return f.Bound.Put(ctx, url, payload)
}

func (f *Facade) Patch(ctx context.Context, url fetch.Source[string], payload fetch.Source[any]) *fetch.Handle {
	return f.Bound.Patch(ctx, url, payload)
}

func (f *Facade) Delete(ctx context.Context, url fetch.Source[string], payload fetch.Source[any]) *fetch.Handle {
	return f.Bound.Delete(ctx, url, payload)
}

func (f *Facade) GetExternal(ctx context.Context, url fetch.Source[string], query fetch.Source[any]) *fetch.Handle {
	return f.External.Get(ctx, url, query)
}

func (f *Facade) PostExternal(ctx context.Context, url fetch.Source[string], payload fetch.Source[any]) *fetch.Handle {
	return f.External.Post(ctx, url, payload)
}

func (f *Facade) PutExternal(ctx context.Context, url fetch.Source[string], payload fetch.Source[any]) *fetch.Handle {
	return f.External.Put(ctx, url, payload)
}

func (f *Facade) PatchExternal(ctx context.Context, url fetch.Source[string], payload fetch.Source[any]) *fetch.Handle {
	return f.External.Patch(ctx, url, payload)
}

func (f *Facade) DeleteExternal(ctx context.Context, url fetch.Source[string], payload fetch.Source[any]) *fetch.Handle {
	return f.External.Delete(ctx, url, payload)
}
