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

	"go.mau.fi/gotdlib/pkg/tdapi"
	"go.mau.fi/gotdlib/pkg/tdjson"
)

// InvokeFunc implements tdapi.Invoker as a function.
type InvokeFunc func(ctx context.Context, input tdapi.Function, output tdjson.TDLibDecoder) error

// Invoke implements tdapi.Invoker.
func (i InvokeFunc) Invoke(ctx context.Context, input tdapi.Function, output tdjson.TDLibDecoder) error {
	return i(ctx, input, output)
}

// Middleware wraps an Invoker.
type Middleware interface {
	Handle(next tdapi.Invoker) InvokeFunc
}

// MiddlewareFunc implements Middleware as a function.
type MiddlewareFunc func(next tdapi.Invoker) InvokeFunc

// Handle implements Middleware.
func (m MiddlewareFunc) Handle(next tdapi.Invoker) InvokeFunc {
	return m(next)
}

func chainMiddlewares(invoker tdapi.Invoker, chain ...Middleware) tdapi.Invoker {
	if len(chain) == 0 {
		return invoker
	}
	for i := len(chain) - 1; i >= 0; i-- {
		invoker = chain[i].Handle(invoker)
	}
	return invoker
}
