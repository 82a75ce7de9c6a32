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

//go:build !tdjson

package native

import (
	"context"
	"time"

	"go.mau.fi/gotdlib/pkg/tdlib"
)

// Transport is unavailable without the tdjson build tag.
type Transport struct{}

var _ tdlib.Transport = (*Transport)(nil)

// New always returns ErrUnavailable.
func New(opts Options) (*Transport, error) {
	opts.setDefaults()
	return nil, ErrUnavailable
}

// CreateClientID implements tdlib.Transport.
func (*Transport) CreateClientID(context.Context) (int32, error) {
	return 0, ErrUnavailable
}

// Send implements tdlib.Transport.
func (*Transport) Send(context.Context, int32, []byte) error {
	return ErrUnavailable
}

// Receive implements tdlib.Transport.
func (*Transport) Receive(context.Context, time.Duration) ([]byte, error) {
	return nil, ErrUnavailable
}

// Execute implements tdlib.Transport.
func (*Transport) Execute(context.Context, []byte) ([]byte, error) {
	return nil, ErrUnavailable
}

// Close implements tdlib.Transport.
func (*Transport) Close() error {
	return nil
}
