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
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"go.mau.fi/gotdlib/pkg/tdapi"
	"go.mau.fi/gotdlib/pkg/tderr"
	"go.mau.fi/gotdlib/pkg/tdjson"
)

// Mux multiplexes the clients of one Transport.
type Mux struct {
	transport      Transport
	log            *zap.Logger
	receiveTimeout time.Duration

	mu      sync.Mutex
	clients map[int32]*Client
	closed  atomic.Bool
}

// NewMux creates a new Mux over transport. Run must be called for clients to
// receive anything.
func NewMux(transport Transport, opts MuxOptions) *Mux {
	opts.setDefaults()
	return &Mux{
		transport:      transport,
		log:            opts.Logger,
		receiveTimeout: opts.ReceiveTimeout,
		clients:        map[int32]*Client{},
	}
}

// Run receives incoming objects and routes them to clients by @client_id
// until ctx is done or the Mux is closed.
func (m *Mux) Run(ctx context.Context) error {
	m.log.Debug("Receive loop started")
	defer m.log.Debug("Receive loop stopped")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if m.closed.Load() {
			return nil
		}
		data, err := m.transport.Receive(ctx, m.receiveTimeout)
		if err != nil {
			if m.closed.Load() {
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return errors.Wrap(tderr.Mark(err, tderr.ErrIO), "receive")
		}
		if data == nil {
			continue
		}
		m.route(data)
	}
}

func (m *Mux) route(data []byte) {
	h, err := tdjson.Peek(data)
	if err != nil {
		m.log.Warn("Failed to parse incoming object", zap.Error(err), zap.ByteString("data", data))
		return
	}
	m.mu.Lock()
	c, ok := m.clients[h.ClientID]
	m.mu.Unlock()
	if !ok {
		m.log.Debug("Dropping object of unknown client",
			zap.Int32("client_id", h.ClientID),
			zap.String("type", h.Type),
		)
		return
	}
	c.handleIncoming(h, data)
}

// NewClient creates a new TDLib instance and a Client bound to it.
func (m *Mux) NewClient(ctx context.Context, opts Options) (*Client, error) {
	if m.closed.Load() {
		return nil, tderr.ErrClosed
	}
	id, err := m.transport.CreateClientID(ctx)
	if err != nil {
		return nil, errors.Wrap(tderr.Mark(err, tderr.ErrIO), "create client id")
	}
	opts.setDefaults(m)
	c := newClient(m, id, opts)

	m.mu.Lock()
	m.clients[id] = c
	m.mu.Unlock()

	c.start()
	c.log.Debug("Client created")
	return c, nil
}

// Client returns a registered client by its identifier.
func (m *Mux) Client(id int32) (*Client, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.clients[id]
	return c, ok
}

func (m *Mux) remove(id int32) {
	m.mu.Lock()
	delete(m.clients, id)
	m.mu.Unlock()
}

// Execute synchronously executes a request that TDLib allows to call without
// a client, like setLogVerbosityLevel or getTextEntities.
func (m *Mux) Execute(ctx context.Context, input tdapi.Function, output tdjson.TDLibDecoder) error {
	data, err := tdjson.Marshal(input)
	if err != nil {
		return errors.Wrapf(tderr.Mark(err, tderr.ErrBadRequest), "encode %s", input.TypeName())
	}
	reply, err := m.transport.Execute(ctx, data)
	if err != nil {
		return errors.Wrap(tderr.Mark(err, tderr.ErrIO), "execute")
	}
	if reply == nil {
		return errors.Wrapf(tderr.ErrBadRequest, "%s can't be executed synchronously", input.TypeName())
	}
	return decodeReply(reply, output)
}

// Close stops all clients without closing their TDLib instances and closes
// the transport.
func (m *Mux) Close() error {
	if m.closed.Swap(true) {
		return nil
	}
	m.mu.Lock()
	clients := make([]*Client, 0, len(m.clients))
	for _, c := range m.clients {
		clients = append(clients, c)
	}
	m.clients = map[int32]*Client{}
	m.mu.Unlock()

	var err error
	for _, c := range clients {
		multierr.AppendInto(&err, c.shutdown())
	}
	multierr.AppendInto(&err, m.transport.Close())
	return err
}
