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

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"go.mau.fi/gotdlib/pkg/tdapi"
	"go.mau.fi/gotdlib/pkg/tderr"
	"go.mau.fi/gotdlib/pkg/tdjson"
)

const tracerName = "go.mau.fi/gotdlib/pkg/tdlib"

// Invoke sends input to TDLib and decodes the reply into output.
//
// The @client_id of input is set to the client, and a missing or already
// pending @extra is replaced by a fresh one, so input must not be shared
// between concurrent calls. TDLib errors are returned as *tderr.Error.
func (c *Client) Invoke(ctx context.Context, input tdapi.Function, output tdjson.TDLibDecoder) error {
	if c.tracer == nil || input == nil {
		return c.invoker.Invoke(ctx, input, output)
	}
	name := input.TypeName()
	spanCtx, span := c.tracer.Start(ctx, "Invoke: "+name,
		trace.WithAttributes(
			attribute.String("tdlib.method", name),
			attribute.Int("tdlib.client_id", int(c.id)),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
	defer span.End()
	err := c.invoker.Invoke(spanCtx, input, output)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Client) invokeDirect(ctx context.Context, input tdapi.Function, output tdjson.TDLibDecoder) error {
	if input == nil {
		return errors.Wrap(tderr.ErrBadRequest, "nil request")
	}
	meta := input.Envelope()
	f := newFuture[[]byte]()

	c.mu.Lock()
	if c.closed.Load() {
		c.mu.Unlock()
		return tderr.ErrClosed
	}
	if _, busy := c.pending[meta.Extra]; meta.Extra == "" || busy {
		meta.Extra = tdjson.NewExtra()
	}
	meta.ClientID = c.id
	extra := meta.Extra
	c.pending[extra] = f
	c.mu.Unlock()
	defer c.forget(extra, f)

	data, err := tdjson.Marshal(input)
	if err != nil {
		return errors.Wrapf(tderr.Mark(err, tderr.ErrBadRequest), "encode %s", input.TypeName())
	}
	if ce := c.log.Check(zap.DebugLevel, "Sending request"); ce != nil {
		ce.Write(zap.String("type", input.TypeName()), zap.String("extra", extra))
	}
	if err := c.transport.Send(ctx, c.id, data); err != nil {
		return errors.Wrap(tderr.Mark(err, tderr.ErrIO), "send")
	}

	reply, err := f.get(ctx)
	if err != nil {
		return err
	}
	return decodeReply(reply, output)
}

// forget removes the pending slot of a call that is over, so that a late reply
// is dropped instead of delivered.
func (c *Client) forget(extra string, f *future[[]byte]) {
	c.mu.Lock()
	if c.pending[extra] == f {
		delete(c.pending, extra)
	}
	c.mu.Unlock()
}

type typeNamer interface {
	TypeName() string
}

func decodeReply(reply []byte, output tdjson.TDLibDecoder) error {
	h, err := tdjson.Peek(reply)
	if err != nil {
		return errors.Wrap(tderr.Mark(err, tderr.ErrJSON), "peek reply")
	}
	// testReturnError legitimately returns an error object as its result.
	if t, ok := output.(typeNamer); h.Type == tdapi.ErrorTypeName && (!ok || t.TypeName() != tdapi.ErrorTypeName) {
		var e tdapi.Error
		if err := tdjson.Unmarshal(reply, &e); err != nil {
			return errors.Wrap(tderr.Mark(err, tderr.ErrJSON), "decode error")
		}
		return tderr.New(int(e.Code), e.Message)
	}
	if err := tdjson.Unmarshal(reply, output); err != nil {
		return errors.Wrapf(tderr.Mark(err, tderr.ErrJSON), "decode %s", h.Type)
	}
	return nil
}
