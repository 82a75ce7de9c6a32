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

//go:build tdjson

package native

// #cgo LDFLAGS: -ltdjson
// #include <stdlib.h>
// #include <td/telegram/td_json_client.h>
import "C"

import (
	"context"
	"sync"
	"time"
	"unsafe"

	"github.com/go-faster/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"go.mau.fi/gotdlib/pkg/tdapi"
	"go.mau.fi/gotdlib/pkg/tdjson"
	"go.mau.fi/gotdlib/pkg/tdlib"
)

// Transport calls td_json_client functions directly.
type Transport struct {
	log *zap.Logger

	// td_receive must not be called from two threads at once.
	recvMu sync.Mutex
	closed atomic.Bool
}

var _ tdlib.Transport = (*Transport)(nil)

// New creates a new Transport. TDLib allows only one receiver per process,
// so only one Transport should exist.
func New(opts Options) (*Transport, error) {
	opts.setDefaults()
	t := &Transport{log: opts.Logger}
	if opts.LogVerbosity >= 0 {
		req, err := tdjson.Marshal(&tdapi.SetLogVerbosityLevelRequest{NewVerbosityLevel: opts.LogVerbosity})
		if err != nil {
			return nil, errors.Wrap(err, "encode setLogVerbosityLevel")
		}
		reply := t.execute(req)
		if h, err := tdjson.Peek(reply); err != nil || h.Type != tdapi.OkTypeName {
			return nil, errors.Errorf("set log verbosity level: %s", reply)
		}
	}
	return t, nil
}

// CreateClientID implements tdlib.Transport.
func (t *Transport) CreateClientID(ctx context.Context) (int32, error) {
	if t.closed.Load() {
		return 0, errors.New("transport closed")
	}
	return int32(C.td_create_client_id()), nil
}

// Send implements tdlib.Transport.
func (t *Transport) Send(ctx context.Context, clientID int32, request []byte) error {
	if t.closed.Load() {
		return errors.New("transport closed")
	}
	s := C.CString(string(request))
	defer C.free(unsafe.Pointer(s))
	C.td_send(C.int(clientID), s)
	return nil
}

// Receive implements tdlib.Transport. The wait can't be interrupted by ctx,
// so timeout should be short.
func (t *Transport) Receive(ctx context.Context, timeout time.Duration) ([]byte, error) {
	if t.closed.Load() {
		return nil, errors.New("transport closed")
	}
	t.recvMu.Lock()
	defer t.recvMu.Unlock()
	res := C.td_receive(C.double(timeout.Seconds()))
	if res == nil {
		return nil, nil
	}
	// The returned buffer is owned by TDLib until the next call.
	return []byte(C.GoString(res)), nil
}

// Execute implements tdlib.Transport.
func (t *Transport) Execute(ctx context.Context, request []byte) ([]byte, error) {
	return t.execute(request), nil
}

func (t *Transport) execute(request []byte) []byte {
	s := C.CString(string(request))
	defer C.free(unsafe.Pointer(s))
	res := C.td_execute(s)
	if res == nil {
		return nil
	}
	return []byte(C.GoString(res))
}

// Close implements tdlib.Transport. TDLib instances are closed with the close
// method before, libtdjson itself has nothing to release.
func (t *Transport) Close() error {
	if !t.closed.Swap(true) {
		t.log.Debug("Native transport closed")
	}
	return nil
}
