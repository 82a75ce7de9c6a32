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

// Package native implements tdlib.Transport on top of libtdjson.
//
// The cgo binding is only compiled with the tdjson build tag, which requires
// TDLib headers and libtdjson to be installed. Without it New returns
// ErrUnavailable.
package native

import (
	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// ErrUnavailable is returned by New when the binary was built without the
// tdjson build tag.
var ErrUnavailable = errors.New("built without libtdjson, rebuild with -tags tdjson")

// Options of Transport.
type Options struct {
	// Logger is instance of zap.Logger. No logs by default.
	Logger *zap.Logger
	// LogVerbosity is the TDLib internal log verbosity level set on creation.
	// Defaults to 1 (errors and warnings). Negative values keep the TDLib default.
	LogVerbosity int32
}

func (opts *Options) setDefaults() {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.LogVerbosity == 0 {
		opts.LogVerbosity = 1
	}
}
