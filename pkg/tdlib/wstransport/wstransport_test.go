package wstransport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/zap/zaptest"

	"go.mau.fi/gotdlib/pkg/relay"
	"go.mau.fi/gotdlib/pkg/tdlib/wstransport"
)

// fakeRelay serves the n-th connection with serve.
type fakeRelay struct {
	serve  func(n int, ws *websocket.Conn)
	server *httptest.Server
}

func newFakeRelay(t *testing.T, serve func(n int, ws *websocket.Conn)) *fakeRelay {
	r := &fakeRelay{serve: serve}
	var n atomic.Int32
	upgrader := websocket.Upgrader{}
	r.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ws, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		r.serve(int(n.Inc()), ws)
	}))
	t.Cleanup(r.server.Close)
	return r
}

func (r *fakeRelay) url() string {
	return "ws" + strings.TrimPrefix(r.server.URL, "http")
}

func readFrame(t *testing.T, ws *websocket.Conn) *relay.Frame {
	_, data, err := ws.ReadMessage()
	if err != nil {
		return nil
	}
	frame, err := relay.ParseFrame(data)
	require.NoError(t, err)
	return frame
}

func writeFrame(ws *websocket.Conn, frame *relay.Frame) {
	_ = ws.WriteMessage(websocket.TextMessage, frame.Bytes())
}

func dial(t *testing.T, r *fakeRelay) *wstransport.Transport {
	tr, err := wstransport.Dial(context.Background(), r.url(), wstransport.Options{
		Logger: zaptest.NewLogger(t),
		BackOff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewConstantBackOff(10*time.Millisecond), 20)
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = tr.Close()
	})
	return tr
}

func TestTransport(t *testing.T) {
	r := newFakeRelay(t, func(n int, ws *websocket.Conn) {
		for {
			req := readFrame(t, ws)
			if req == nil {
				return
			}
			reply := &relay.Frame{Op: req.Op, Extra: req.Extra}
			switch req.Op {
			case relay.OpCreateClientID:
				reply.ID = 7
			case relay.OpExecute:
				if strings.Contains(string(req.Request), "getTextEntities") {
					reply.Result = []byte(`{"@type":"textEntities","entities":[]}`)
				}
			default:
				reply.Code = 400
				reply.Message = "bad"
			}
			writeFrame(ws, reply)
			_ = ws.WriteMessage(websocket.TextMessage, []byte(`{"@type":"updateOption","@client_id":7}`))
		}
	})
	tr := dial(t, r)
	ctx := context.Background()

	id, err := tr.CreateClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(7), id)

	data, err := tr.Receive(ctx, time.Second)
	require.NoError(t, err)
	assert.JSONEq(t, `{"@type":"updateOption","@client_id":7}`, string(data))

	res, err := tr.Execute(ctx, []byte(`{"@type":"getTextEntities","text":""}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"@type":"textEntities","entities":[]}`, string(res))

	res, err = tr.Execute(ctx, []byte(`{"@type":"getMe"}`))
	require.NoError(t, err)
	assert.Nil(t, res)

	data, err = tr.Receive(ctx, 10*time.Millisecond)
	require.NoError(t, err)
	assert.NotNil(t, data)
	data, err = tr.Receive(ctx, 10*time.Millisecond)
	require.NoError(t, err)
	assert.NotNil(t, data)
	data, err = tr.Receive(ctx, 10*time.Millisecond)
	require.NoError(t, err)
	assert.Nil(t, data, "timeout returns no object")

	require.NoError(t, tr.Close())
	_, err = tr.Receive(ctx, time.Second)
	assert.ErrorIs(t, err, wstransport.ErrClosed)
	assert.ErrorIs(t, tr.Send(ctx, 7, []byte(`{}`)), wstransport.ErrClosed)
}

func TestTransportRelayError(t *testing.T) {
	r := newFakeRelay(t, func(n int, ws *websocket.Conn) {
		req := readFrame(t, ws)
		if req == nil {
			return
		}
		writeFrame(ws, &relay.Frame{Op: req.Op, Extra: req.Extra, Code: 500, Message: "no more instances"})
		_ = readFrame(t, ws)
	})
	tr := dial(t, r)

	_, err := tr.CreateClientID(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relay error 500: no more instances")
}

func TestTransportReconnect(t *testing.T) {
	attached := make(chan []int32, 1)
	r := newFakeRelay(t, func(n int, ws *websocket.Conn) {
		switch n {
		case 1:
			req := readFrame(t, ws)
			if req == nil {
				return
			}
			writeFrame(ws, &relay.Frame{Op: req.Op, Extra: req.Extra, ID: 3})
			// Drop the connection.
		case 2:
			req := readFrame(t, ws)
			if req == nil {
				return
			}
			if assert.Equal(t, relay.OpAttach, req.Op) {
				attached <- req.ClientIDs
			}
			writeFrame(ws, &relay.Frame{Op: req.Op, Extra: req.Extra})
			_ = ws.WriteMessage(websocket.TextMessage, []byte(`{"@type":"updateOption","@client_id":3}`))
			_ = readFrame(t, ws)
		}
	})
	tr := dial(t, r)
	ctx := context.Background()

	id, err := tr.CreateClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(3), id)

	select {
	case ids := <-attached:
		assert.Equal(t, []int32{3}, ids)
	case <-time.After(5 * time.Second):
		t.Fatal("clients were not re-attached")
	}

	data, err := tr.Receive(ctx, 5*time.Second)
	require.NoError(t, err)
	assert.JSONEq(t, `{"@type":"updateOption","@client_id":3}`, string(data))
}

func TestTransportDialFailure(t *testing.T) {
	_, err := wstransport.Dial(context.Background(), "ws://127.0.0.1:1/relay", wstransport.Options{
		BackOff: func() backoff.BackOff {
			return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 1)
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dial relay")
}
