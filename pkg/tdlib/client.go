// gotdlib - Typed Go bindings for the TDLib JSON interface.
// Copyright (C) 2026 Sumner Evans
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tdlib

import (
	"context"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"go.mau.fi/gotdlib/pkg/tdapi"
	"go.mau.fi/gotdlib/pkg/tderr"
	"go.mau.fi/gotdlib/pkg/tdjson"
)

// Client is a single TDLib instance.
type Client struct {
	id        int32
	mux       *Mux
	transport Transport
	log       *zap.Logger
	tracer    trace.Tracer

	invoker tdapi.Invoker
	api     *tdapi.Client

	handler       tdapi.UpdateHandler
	onError       func(error)
	updates       chan tdapi.UpdateClass
	updateTimeout time.Duration
	workers       *errgroup.Group

	// mu guards pending and the transition to closed.
	mu      sync.Mutex
	pending map[string]*future[[]byte]

	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	closed    atomic.Bool
	closeOnce sync.Once

	self  atomic.Pointer[tdapi.User]
	state atomic.Pointer[tdapi.UpdateAuthorizationState]
}

var _ tdapi.Invoker = (*Client)(nil)

func newClient(mux *Mux, id int32, opts Options) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		id:            id,
		mux:           mux,
		transport:     mux.transport,
		log:           opts.Logger.With(zap.Int32("client_id", id)),
		handler:       opts.UpdateHandler,
		onError:       opts.OnError,
		updates:       make(chan tdapi.UpdateClass, opts.UpdateQueue),
		updateTimeout: opts.UpdateTimeout,
		pending:       map[string]*future[[]byte]{},
		ctx:           ctx,
		cancel:        cancel,
		done:          make(chan struct{}),
	}
	if opts.TracerProvider != nil {
		c.tracer = opts.TracerProvider.Tracer(tracerName)
	}
	c.invoker = chainMiddlewares(InvokeFunc(c.invokeDirect), opts.Middlewares...)
	c.api = tdapi.NewClient(c)
	return c
}

func (c *Client) start() {
	c.workers = &errgroup.Group{}
	c.workers.Go(c.runUpdates)
}

// ID returns the TDLib client identifier.
func (c *Client) ID() int32 {
	return c.id
}

// API returns *tdapi.Client for calling TDLib methods.
func (c *Client) API() *tdapi.Client {
	return c.api
}

// Done is closed when the client stops.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// AuthorizationState returns the last authorization state announced by TDLib,
// or nil if there was none yet.
func (c *Client) AuthorizationState() tdapi.AuthorizationStateClass {
	if u := c.state.Load(); u != nil {
		return u.AuthorizationState
	}
	return nil
}

// Self returns the current user. The result is cached and kept up to date by
// updateUser.
func (c *Client) Self(ctx context.Context) (*tdapi.User, error) {
	if u := c.self.Load(); u != nil {
		return u, nil
	}
	u, err := c.api.GetMe(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get me")
	}
	c.self.Store(u)
	return u, nil
}

// Execute synchronously executes a request without waiting for the receive loop.
func (c *Client) Execute(ctx context.Context, input tdapi.Function, output tdjson.TDLibDecoder) error {
	return c.mux.Execute(ctx, input, output)
}

// Close closes the TDLib instance and waits for it to confirm. Pending calls
// fail with tderr.ErrClosed.
//
// Close waits for the update handler to return, so it must not be called
// from an update handler.
func (c *Client) Close(ctx context.Context) error {
	if c.closed.Load() {
		return nil
	}
	var err error
	if closeErr := c.api.Close(ctx); closeErr != nil && !errors.Is(closeErr, tderr.ErrClosed) {
		err = errors.Wrap(closeErr, "close")
	}
	multierr.AppendInto(&err, c.shutdown())
	return err
}

// shutdown stops the client locally.
func (c *Client) shutdown() error {
	var err error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed.Store(true)
		pending := c.pending
		c.pending = map[string]*future[[]byte]{}
		c.mu.Unlock()

		for _, f := range pending {
			f.fail(tderr.ErrClosed)
		}
		close(c.done)
		c.cancel()
		c.mux.remove(c.id)
		if c.workers != nil {
			err = c.workers.Wait()
		}
		c.log.Debug("Client closed", zap.Int("failed_calls", len(pending)))
	})
	return err
}

func (c *Client) handleIncoming(h tdjson.Header, data []byte) {
	if h.Extra != "" {
		c.mu.Lock()
		f, ok := c.pending[h.Extra]
		delete(c.pending, h.Extra)
		c.mu.Unlock()
		if ok {
			f.set(data)
		} else {
			c.log.Debug("Dropping reply without pending request",
				zap.String("type", h.Type),
				zap.String("extra", h.Extra),
			)
		}
		return
	}

	update, err := tdapi.DecodeTDLibJSONUpdate(tdjson.DecodeBytes(data))
	if err != nil {
		var unknown *tdjson.UnknownTypeError
		if errors.As(err, &unknown) {
			c.log.Debug("Ignoring unsupported object", zap.String("type", h.Type))
			return
		}
		c.log.Warn("Failed to decode update", zap.String("type", h.Type), zap.Error(err))
		c.onError(errors.Wrap(tderr.Mark(err, tderr.ErrJSON), "decode update"))
		return
	}
	c.intercept(update)
	if err := c.enqueue(update); err != nil {
		c.log.Warn("Dropping update", zap.String("type", h.Type), zap.Error(err))
		c.onError(errors.Wrapf(err, "enqueue %s", h.Type))
	}
}
