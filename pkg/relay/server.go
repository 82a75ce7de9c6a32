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

package relay

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"go.mau.fi/util/exhttp"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"go.mau.fi/gotdlib/pkg/tdjson"
	"go.mau.fi/gotdlib/pkg/tdlib"
)

// Options of Server.
type Options struct {
	// Logger is the base logger, logging is disabled by default.
	Logger *zerolog.Logger
	// ReceiveTimeout is passed to every Transport.Receive call. Defaults to 1 second.
	ReceiveTimeout time.Duration
	// SendQueue is the number of frames buffered per connection. Defaults to 256.
	SendQueue int
	// WriteTimeout limits a single frame write. Defaults to 10 seconds.
	WriteTimeout time.Duration
	// CheckOrigin is passed to the websocket upgrader, all origins are allowed by default.
	CheckOrigin func(r *http.Request) bool
}

func (opts *Options) setDefaults() {
	if opts.Logger == nil {
		nop := zerolog.Nop()
		opts.Logger = &nop
	}
	if opts.ReceiveTimeout == 0 {
		opts.ReceiveTimeout = time.Second
	}
	if opts.SendQueue == 0 {
		opts.SendQueue = 256
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 10 * time.Second
	}
	if opts.CheckOrigin == nil {
		opts.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	}
}

// Server relays a Transport to websocket connections.
type Server struct {
	transport tdlib.Transport
	log       zerolog.Logger
	opts      Options
	upgrader  websocket.Upgrader

	mu      sync.Mutex
	owners  map[int32]*conn
	created map[int32]struct{}
	conns   map[*conn]struct{}

	dropped atomic.Int64
}

// NewServer creates a new Server. Run must be called to deliver objects
// received from TDLib.
func NewServer(transport tdlib.Transport, opts Options) *Server {
	opts.setDefaults()
	return &Server{
		transport: transport,
		log:       opts.Logger.With().Str("component", "relay").Logger(),
		opts:      opts,
		upgrader: websocket.Upgrader{
			CheckOrigin: opts.CheckOrigin,
		},
		owners:  map[int32]*conn{},
		created: map[int32]struct{}{},
		conns:   map[*conn]struct{}{},
	}
}

// Run receives objects from the transport and writes them to their owners
// until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := s.transport.Receive(ctx, s.opts.ReceiveTimeout)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return errors.Wrap(err, "receive")
		}
		if data == nil {
			continue
		}
		h, err := tdjson.Peek(data)
		if err != nil {
			s.log.Warn().Err(err).Msg("Failed to parse object from TDLib")
			continue
		}
		s.mu.Lock()
		c, ok := s.owners[h.ClientID]
		s.mu.Unlock()
		if !ok {
			s.dropped.Inc()
			s.log.Debug().
				Int32("client_id", h.ClientID).
				Str("type", h.Type).
				Msg("Dropping object of client without connection")
			continue
		}
		c.send(data)
	}
}

// Stats is the state of the relay.
type Stats struct {
	Connections int     `json:"connections"`
	Clients     []int32 `json:"clients"`
	Dropped     int64   `json:"dropped"`
}

// Stats returns the current state of the relay.
func (s *Server) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := Stats{Connections: len(s.conns), Dropped: s.dropped.Load(), Clients: []int32{}}
	for id := range s.created {
		stats.Clients = append(stats.Clients, id)
	}
	return stats
}

// Handler returns the HTTP handler of the relay: the websocket endpoint at
// /relay and a JSON status endpoint at /status.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/relay", s)
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		exhttp.WriteJSONResponse(w, http.StatusOK, s.Stats())
	})
	return mux
}

// ServeHTTP upgrades the request to a websocket connection and serves it.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := s.log.With().Str("remote_addr", r.RemoteAddr).Logger()
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Msg("Failed to upgrade connection to websocket")
		return
	}
	c := &conn{
		server: s,
		ws:     ws,
		log:    log,
		out:    make(chan []byte, s.opts.SendQueue),
	}
	s.mu.Lock()
	s.conns[c] = struct{}{}
	s.mu.Unlock()
	log.Debug().Msg("Relay connection opened")

	err = c.serve(log.WithContext(r.Context()))

	s.mu.Lock()
	delete(s.conns, c)
	for id, owner := range s.owners {
		if owner == c {
			delete(s.owners, id)
		}
	}
	s.mu.Unlock()
	if err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		log.Warn().Err(err).Msg("Relay connection failed")
	} else {
		log.Debug().Msg("Relay connection closed")
	}
}

func (s *Server) own(id int32, c *conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.created[id]; !ok {
		return errors.Errorf("client %d was not created by this relay", id)
	}
	s.owners[id] = c
	return nil
}

func (s *Server) owner(id int32) *conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owners[id]
}

func (s *Server) createClient(ctx context.Context, c *conn) (int32, error) {
	id, err := s.transport.CreateClientID(ctx)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	s.created[id] = struct{}{}
	s.owners[id] = c
	s.mu.Unlock()
	return id, nil
}

type conn struct {
	server *Server
	ws     *websocket.Conn
	log    zerolog.Logger
	out    chan []byte
}

func (c *conn) send(data []byte) {
	select {
	case c.out <- data:
	default:
		c.server.dropped.Inc()
		c.log.Warn().Msg("Send queue is full, dropping object")
	}
}

func (c *conn) serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return c.readLoop(ctx)
	})
	g.Go(func() error {
		return c.writeLoop(ctx)
	})
	return g.Wait()
}

func (c *conn) writeLoop(ctx context.Context) error {
	defer func() {
		if err := c.ws.Close(); err != nil {
			c.log.Debug().Err(err).Msg("Error closing websocket")
		}
	}()
	for {
		select {
		case <-ctx.Done():
			_ = c.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second),
			)
			return nil
		case data := <-c.out:
			if err := c.ws.SetWriteDeadline(time.Now().Add(c.server.opts.WriteTimeout)); err != nil {
				return err
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				return errors.Wrap(err, "write")
			}
		}
	}
}

func (c *conn) readLoop(ctx context.Context) error {
	for {
		typ, data, err := c.ws.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if typ != websocket.TextMessage {
			continue
		}
		c.handle(ctx, data)
	}
}

func (c *conn) handle(ctx context.Context, data []byte) {
	if IsControl(data) {
		frame, err := ParseFrame(data)
		if err != nil {
			c.log.Warn().Err(err).Msg("Invalid control frame")
			c.send((&Frame{Op: "unknown", Code: 400, Message: err.Error()}).Bytes())
			return
		}
		c.send(c.control(ctx, frame).Bytes())
		return
	}

	h, err := tdjson.Peek(data)
	if err != nil {
		c.log.Warn().Err(err).Msg("Invalid request")
		return
	}
	if c.server.owner(h.ClientID) != c {
		c.send(errorReply(h, 400, "client is not attached to this connection"))
		return
	}
	if err := c.server.transport.Send(ctx, h.ClientID, data); err != nil {
		c.log.Err(err).Int32("client_id", h.ClientID).Msg("Failed to send request to TDLib")
		c.send(errorReply(h, 500, err.Error()))
	}
}

func (c *conn) control(ctx context.Context, req *Frame) *Frame {
	reply := &Frame{Op: req.Op, Extra: req.Extra}
	fail := func(code int32, err error) *Frame {
		reply.Code = code
		reply.Message = err.Error()
		return reply
	}
	switch req.Op {
	case OpCreateClientID:
		id, err := c.server.createClient(ctx, c)
		if err != nil {
			return fail(500, err)
		}
		c.log.Debug().Int32("client_id", id).Msg("Created client")
		reply.ID = id
	case OpAttach:
		for _, id := range req.ClientIDs {
			if err := c.server.own(id, c); err != nil {
				return fail(400, err)
			}
		}
		c.log.Debug().Ints32("client_ids", req.ClientIDs).Msg("Attached clients")
	case OpExecute:
		if req.Request == nil {
			return fail(400, errors.New("missing request"))
		}
		res, err := c.server.transport.Execute(ctx, req.Request)
		if err != nil {
			return fail(500, err)
		}
		reply.Result = res
	default:
		return fail(400, errors.Errorf("unknown operation %q", req.Op))
	}
	return reply
}

func errorReply(h tdjson.Header, code int32, message string) []byte {
	e := tdjson.NewEncoder()
	e.ObjStart()
	e.PutID("error")
	e.PutMeta(tdjson.Meta{Extra: h.Extra, ClientID: h.ClientID})
	e.FieldStart("code")
	e.PutInt32(code)
	e.FieldStart("message")
	e.PutString(message)
	e.ObjEnd()
	return e.Bytes()
}
