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

// Package tdlib implements a TDLib JSON client on top of a Transport.
//
// A Mux owns the transport and runs the only receive loop, since td_receive is
// shared by every client in the process. Each Client correlates its requests
// with responses by @extra and forwards everything else to an update handler.
package tdlib

import (
	"context"
	"time"
)

// Transport is a raw TDLib JSON interface, either the native td_json_client
// or a remote relay.
type Transport interface {
	// CreateClientID creates a new TDLib instance and returns its identifier.
	CreateClientID(ctx context.Context) (int32, error)
	// Send sends a request to the TDLib instance with the given identifier.
	Send(ctx context.Context, clientID int32, request []byte) error
	// Receive returns the next incoming object of any client, or nil if
	// nothing arrived within timeout.
	Receive(ctx context.Context, timeout time.Duration) ([]byte, error)
	// Execute synchronously executes a request that does not need a client.
	Execute(ctx context.Context, request []byte) ([]byte, error)
	// Close releases the transport.
	Close() error
}
