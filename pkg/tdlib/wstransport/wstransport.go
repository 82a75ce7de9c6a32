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

// Package wstransport implements tdlib.Transport over a websocket relay.
package wstransport

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/coder/websocket"
	"github.com/go-faster/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"go.mau.fi/gotdlib/pkg/relay"
	"go.mau.fi/gotdlib/pkg/tdjson"
	"go.mau.fi/gotdlib/pkg/tdlib"
)

// ErrClosed is returned after Close or when reconnection gave up.
var ErrClosed = errors.New("relay transport closed")

// Options of Transport.
type Options struct {
	// Logger is instance of zap.Logger. No logs by default.
	Logger *zap.Logger
	// BackOff creates the policy of dial attempts. Defaults to exponential
	// back-off giving up after 5 minutes.
	BackOff func() backoff.BackOff
	// DialOptions are passed to websocket.Dial.
	DialOptions *websocket.DialOptions
	// ReadLimit is the maximum frame size. Defaults to 16 MiB.
	ReadLimit int64
	// IncomingQueue is the number of received objects buffered until
	// Receive. Defaults to 1024.
	IncomingQueue int
}

func (opts *Options) setDefaults() {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.BackOff == nil {
		opts.BackOff = func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.MaxElapsedTime = 5 * time.Minute
			return b
		}
	}
	if opts.ReadLimit == 0 {
		opts.ReadLimit = 16 << 20
	}
	if opts.IncomingQueue == 0 {
		opts.IncomingQueue = 1024
	}
}

// Transport talks to a relay server. It reconnects when the connection is
// lost and re-attaches the clients it created.
type Transport struct {
	url  string
	opts Options
	log  *zap.Logger

	mu      sync.Mutex
	conn    *websocket.Conn
	ids     []int32
	pending map[string]chan *relay.Frame

	incoming chan []byte
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	closed   atomic.Bool
}

var _ tdlib.Transport = (*Transport)(nil)

// Dial connects to the relay websocket endpoint at url.
func Dial(ctx context.Context, url string, opts Options) (*Transport, error) {
	opts.setDefaults()
	tctx, cancel := context.WithCancel(context.Background())
	t := &Transport{
		url:      url,
		opts:     opts,
		log:      opts.Logger.With(zap.String("relay", url)),
		pending:  map[string]chan *relay.Frame{},
		incoming: make(chan []byte, opts.IncomingQueue),
		ctx:      tctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	conn, err := t.dial(ctx)
	if err != nil {
		cancel()
		return nil, err
	}
	t.conn = conn
	go t.run()
	return t, nil
}

func (t *Transport) dial(ctx context.Context) (*websocket.Conn, error) {
	var conn *websocket.Conn
	attempt := 0
	op := func() error {
		attempt++
		c, _, err := websocket.Dial(ctx, t.url, t.opts.DialOptions)
		if err != nil {
			t.log.Debug("Dial failed", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}
		conn = c
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(t.opts.BackOff(), ctx)); err != nil {
		return nil, errors.Wrap(err, "dial relay")
	}
	conn.SetReadLimit(t.opts.ReadLimit)
	return conn, nil
}

func (t *Transport) current() *websocket.Conn {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.conn
}

func (t *Transport) run() {
	defer close(t.done)
	for {
		err := t.readLoop(t.current())
		if t.closed.Load() {
			return
		}
		t.log.Warn("Relay connection lost, reconnecting", zap.Error(err))
		t.failPending()

		conn, err := t.dial(t.ctx)
		if err != nil {
			t.log.Error("Failed to reconnect to relay", zap.Error(err))
			t.closed.Store(true)
			return
		}
		t.mu.Lock()
		t.conn = conn
		ids := slices.Clone(t.ids)
		t.mu.Unlock()
		if len(ids) > 0 {
			// The reply is matched by nothing, failures are logged by dispatch.
			frame := &relay.Frame{Op: relay.OpAttach, ClientIDs: ids}
			if err := t.write(t.ctx, frame.Bytes()); err != nil {
				t.log.Warn("Failed to re-attach clients", zap.Error(err))
			}
		}
		t.log.Info("Reconnected to relay", zap.Int("clients", len(ids)))
	}
}

func (t *Transport) readLoop(conn *websocket.Conn) error {
	for {
		typ, data, err := conn.Read(t.ctx)
		if err != nil {
			return err
		}
		if typ != websocket.MessageText {
			continue
		}
		t.dispatch(data)
	}
}

func (t *Transport) dispatch(data []byte) {
	if !relay.IsControl(data) {
		select {
		case t.incoming <- data:
		case <-t.ctx.Done():
		}
		return
	}
	frame, err := relay.ParseFrame(data)
	if err != nil {
		t.log.Warn("Invalid control frame", zap.Error(err))
		return
	}
	t.mu.Lock()
	ch, ok := t.pending[frame.Extra]
	delete(t.pending, frame.Extra)
	t.mu.Unlock()
	if ok {
		ch <- frame
		return
	}
	if frame.Failed() {
		t.log.Warn("Relay operation failed",
			zap.String("op", frame.Op),
			zap.Int32("code", frame.Code),
			zap.String("message", frame.Message),
		)
	}
}

func (t *Transport) failPending() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for extra, ch := range t.pending {
		close(ch)
		delete(t.pending, extra)
	}
}

func (t *Transport) write(ctx context.Context, data []byte) error {
	if t.closed.Load() {
		return ErrClosed
	}
	return t.current().Write(ctx, websocket.MessageText, data)
}

func (t *Transport) control(ctx context.Context, frame *relay.Frame) (*relay.Frame, error) {
	frame.Extra = tdjson.NewExtra()
	ch := make(chan *relay.Frame, 1)
	t.mu.Lock()
	t.pending[frame.Extra] = ch
	t.mu.Unlock()
	defer func() {
		t.mu.Lock()
		delete(t.pending, frame.Extra)
		t.mu.Unlock()
	}()

	if err := t.write(ctx, frame.Bytes()); err != nil {
		return nil, errors.Wrapf(err, "write %s", frame.Op)
	}
	select {
	case reply, ok := <-ch:
		if !ok {
			return nil, errors.Errorf("%s: connection lost", frame.Op)
		}
		if reply.Failed() {
			return nil, errors.Errorf("%s: relay error %d: %s", frame.Op, reply.Code, reply.Message)
		}
		return reply, nil
	case <-t.done:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// CreateClientID implements tdlib.Transport.
func (t *Transport) CreateClientID(ctx context.Context) (int32, error) {
	reply, err := t.control(ctx, &relay.Frame{Op: relay.OpCreateClientID})
	if err != nil {
		return 0, err
	}
	t.mu.Lock()
	t.ids = append(t.ids, reply.ID)
	t.mu.Unlock()
	return reply.ID, nil
}

// Send implements tdlib.Transport. The request must carry its @client_id,
// which the relay uses for routing.
func (t *Transport) Send(ctx context.Context, clientID int32, request []byte) error {
	return t.write(ctx, request)
}

// Receive implements tdlib.Transport.
func (t *Transport) Receive(ctx context.Context, timeout time.Duration) ([]byte, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case data := <-t.incoming:
		return data, nil
	case <-timer.C:
		return nil, nil
	case <-t.done:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Execute implements tdlib.Transport.
func (t *Transport) Execute(ctx context.Context, request []byte) ([]byte, error) {
	reply, err := t.control(ctx, &relay.Frame{Op: relay.OpExecute, Request: request})
	if err != nil {
		return nil, err
	}
	if reply.Result == nil {
		return nil, nil
	}
	return reply.Result, nil
}

// Close implements tdlib.Transport.
func (t *Transport) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	err := t.current().Close(websocket.StatusNormalClosure, "")
	t.cancel()
	<-t.done
	var closeErr websocket.CloseError
	if errors.As(err, &closeErr) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
