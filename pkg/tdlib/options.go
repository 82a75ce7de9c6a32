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
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"go.mau.fi/gotdlib/pkg/tdapi"
)

// MuxOptions of Mux.
type MuxOptions struct {
	// Logger is instance of zap.Logger. No logs by default.
	Logger *zap.Logger
	// ReceiveTimeout is passed to every Transport.Receive call. Defaults to 1 second.
	ReceiveTimeout time.Duration
}

func (opts *MuxOptions) setDefaults() {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ReceiveTimeout == 0 {
		opts.ReceiveTimeout = time.Second
	}
}

// Options of Client.
type Options struct {
	// Logger is instance of zap.Logger. Defaults to the logger of the Mux.
	Logger *zap.Logger
	// TracerProvider enables Invoke spans when set.
	TracerProvider trace.TracerProvider
	// UpdateHandler receives every object that is not a reply to a request.
	UpdateHandler tdapi.UpdateHandler
	// UpdateQueue is the capacity of the update queue. Defaults to 128.
	UpdateQueue int
	// UpdateTimeout is how long an update may wait for room in the queue
	// before it is dropped. Defaults to 10 seconds.
	UpdateTimeout time.Duration
	// Middlewares wrap every Invoke call, first one is outermost.
	Middlewares []Middleware
	// OnError is called for errors that have no caller to return to, like
	// dropped updates and failing update handlers.
	OnError func(error)
}

func (opts *Options) setDefaults(mux *Mux) {
	if opts.Logger == nil {
		opts.Logger = mux.log
	}
	if opts.UpdateHandler == nil {
		opts.UpdateHandler = tdapi.NewUpdateDispatcher()
	}
	if opts.UpdateQueue == 0 {
		opts.UpdateQueue = 128
	}
	if opts.UpdateTimeout == 0 {
		opts.UpdateTimeout = 10 * time.Second
	}
	if opts.OnError == nil {
		opts.OnError = func(err error) {}
	}
}
