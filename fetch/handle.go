// Package fetch models the reactive handle a request returns to its caller:
// live data/error/loading fields plus abort and refetch. Each request is an
// independent, stateless cycle; the handle only mirrors its progress.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/n3eg/fetchx/store"
)

// ErrNoData is returned by Decode before any response body has arrived.
var ErrNoData = errors.New("fetch: no data")

// RunFunc performs one request cycle and returns the raw JSON body.
type RunFunc func(ctx context.Context) ([]byte, error)

// Handle exposes the live state of an asynchronous request. All accessors
// are safe for concurrent use.
type Handle struct {
	loading *store.Value[bool]
	data    *store.Value[[]byte]
	err     *store.Value[error]

	parent context.Context
	run    RunFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Start launches run on its own goroutine and returns the handle tracking
// it. The parent context bounds the request and every later Refetch.
func Start(parent context.Context, run RunFunc) *Handle {
	h := &Handle{
		loading: store.New(false),
		data:    store.New[[]byte](nil),
		err:     store.New[error](nil),
		parent:  parent,
		run:     run,
	}
	h.Refetch()
	return h
}

// Refetch aborts any in-flight request on this handle and runs a fresh one,
// re-resolving dynamic inputs. A superseded run never clobbers the newer
// run's state.
func (h *Handle) Refetch() {
	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
	}
	ctx, cancel := context.WithCancel(h.parent)
	done := make(chan struct{})
	h.cancel = cancel
	h.done = done
	h.mu.Unlock()

	h.loading.Set(true)
	go func() {
		data, err := h.run(ctx)

		h.mu.Lock()
		stale := h.done != done
		h.mu.Unlock()

		if !stale {
			if err != nil {
				h.err.Set(err)
			} else {
				h.err.Set(nil)
				h.data.Set(data)
			}
			h.loading.Set(false)
		}
		close(done)
	}()
}

// Abort cancels the current request's context. The run surfaces the
// cancellation through Err like any other transport failure.
func (h *Handle) Abort() {
	h.mu.Lock()
	cancel := h.cancel
	h.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Done returns a channel closed when the current request cycle settles.
func (h *Handle) Done() <-chan struct{} {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.done
}

// Loading reports whether a request is in flight.
func (h *Handle) Loading() bool { return h.loading.Get() }

// Err returns the current error, usually an *apierr.ErrorDetails.
func (h *Handle) Err() error { return h.err.Get() }

// Data returns the raw JSON body of the last successful response.
func (h *Handle) Data() []byte { return h.data.Get() }

// Decode unmarshals the last successful response body into v.
func (h *Handle) Decode(v any) error {
	raw := h.data.Get()
	if len(raw) == 0 {
		return ErrNoData
	}
	return json.Unmarshal(raw, v)
}

// OnChange runs fn after any of data, error, or loading changes.
func (h *Handle) OnChange(fn func()) (cancel func()) {
	c1 := h.loading.Subscribe(func(bool) { fn() })
	c2 := h.data.Subscribe(func([]byte) { fn() })
	c3 := h.err.Subscribe(func(error) { fn() })
	return func() {
		c1()
		c2()
		c3()
	}
}
