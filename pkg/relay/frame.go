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

// Package relay exposes a TDLib transport to remote clients over websocket.
//
// Every text frame carries one TDLib JSON object. Objects with a @relay field
// are control frames handled by the relay itself, everything else is passed
// to td_send for the @client_id of the object. Objects received from TDLib are
// written to the connection that owns their @client_id.
package relay

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/tidwall/gjson"

	"go.mau.fi/gotdlib/pkg/tdjson"
)

// ControlField marks control frames.
const ControlField = "@relay"

// Control operations.
const (
	// OpCreateClientID creates a TDLib instance owned by the connection.
	OpCreateClientID = "create_client_id"
	// OpAttach takes over instances created by a previous connection.
	OpAttach = "attach"
	// OpExecute calls td_execute.
	OpExecute = "execute"
)

// Frame is a control frame, both request and reply.
type Frame struct {
	Op    string
	Extra string

	// ClientIDs to attach.
	ClientIDs []int32
	// Request to execute.
	Request jx.Raw

	// ID of the created instance.
	ID int32
	// Result of execution, nil if the request can't be executed synchronously.
	Result jx.Raw

	// Code and Message are set if the operation failed.
	Code    int32
	Message string
}

// Failed reports whether the frame is an error reply.
func (f *Frame) Failed() bool {
	return f.Code != 0
}

var controlPath = `\` + ControlField

// IsControl reports whether data is a control frame.
func IsControl(data []byte) bool {
	return gjson.GetBytes(data, controlPath).Exists()
}

// Encode writes the frame.
func (f *Frame) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart(ControlField)
	e.Str(f.Op)
	if f.Extra != "" {
		e.FieldStart(tdjson.ExtraField)
		e.Str(f.Extra)
	}
	if f.Failed() {
		e.FieldStart(tdjson.TypeField)
		e.Str("error")
		e.FieldStart("code")
		e.Int32(f.Code)
		e.FieldStart("message")
		e.Str(f.Message)
		e.ObjEnd()
		return
	}
	if f.ClientIDs != nil {
		e.FieldStart("client_ids")
		e.ArrStart()
		for _, id := range f.ClientIDs {
			e.Int32(id)
		}
		e.ArrEnd()
	}
	if f.Request != nil {
		e.FieldStart("request")
		e.Raw(f.Request)
	}
	if f.ID != 0 {
		e.FieldStart(tdjson.TypeField)
		e.Str("clientId")
		e.FieldStart("id")
		e.Int32(f.ID)
	}
	if f.Op == OpExecute && f.Request == nil {
		e.FieldStart("result")
		if f.Result != nil {
			e.Raw(f.Result)
		} else {
			e.Null()
		}
	}
	e.ObjEnd()
}

// Bytes returns the encoded frame.
func (f *Frame) Bytes() []byte {
	e := &jx.Encoder{}
	f.Encode(e)
	return e.Bytes()
}

// Decode reads the frame.
func (f *Frame) Decode(d *jx.Decoder) error {
	return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case ControlField:
			f.Op, err = d.Str()
		case tdjson.ExtraField:
			f.Extra, err = d.Str()
		case "client_ids":
			err = d.Arr(func(d *jx.Decoder) error {
				id, err := d.Int32()
				if err != nil {
					return err
				}
				f.ClientIDs = append(f.ClientIDs, id)
				return nil
			})
		case "request":
			f.Request, err = d.Raw()
			f.Request = append(jx.Raw(nil), f.Request...)
		case "result":
			if d.Next() == jx.Null {
				return d.Null()
			}
			f.Result, err = d.Raw()
			f.Result = append(jx.Raw(nil), f.Result...)
		case "id":
			f.ID, err = d.Int32()
		case "code":
			f.Code, err = d.Int32()
		case "message":
			f.Message, err = d.Str()
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode %s", key)
		}
		return nil
	})
}

// ParseFrame decodes a control frame.
func ParseFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := f.Decode(jx.DecodeBytes(data)); err != nil {
		return nil, err
	}
	if f.Op == "" {
		return nil, errors.New("missing " + ControlField)
	}
	return &f, nil
}
