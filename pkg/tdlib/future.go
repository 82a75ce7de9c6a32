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
)

// future is a single assignment value, used as the pending slot of a request.
type future[T any] struct {
	value T
	err   error
	ready chan struct{}
	once  sync.Once
}

func newFuture[T any]() *future[T] {
	return &future[T]{
		ready: make(chan struct{}),
	}
}

func (f *future[T]) set(value T) bool {
	var ok bool
	f.once.Do(func() {
		f.value = value
		close(f.ready)
		ok = true
	})
	return ok
}

func (f *future[T]) fail(err error) bool {
	var ok bool
	f.once.Do(func() {
		f.err = err
		close(f.ready)
		ok = true
	})
	return ok
}

func (f *future[T]) get(ctx context.Context) (T, error) {
	select {
	case <-f.ready:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
