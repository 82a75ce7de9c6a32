package relay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"go.mau.fi/gotdlib/pkg/relay"
	"go.mau.fi/gotdlib/pkg/tdapi"
	"go.mau.fi/gotdlib/pkg/tderr"
	"go.mau.fi/gotdlib/pkg/tdlib"
	"go.mau.fi/gotdlib/pkg/tdlib/tdmock"
	"go.mau.fi/gotdlib/pkg/tdlib/wstransport"
)

func startRelay(t *testing.T) (*tdmock.Mock, *relay.Server, *httptest.Server) {
	mock := tdmock.New(t)
	log := zerolog.Nop()
	srv := relay.NewServer(mock, relay.Options{
		Logger:         &log,
		ReceiveTimeout: 10 * time.Millisecond,
	})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()
	httpSrv := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		httpSrv.Close()
		cancel()
		<-done
	})
	return mock, srv, httpSrv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/relay"
}

func TestRelayRoundTrip(t *testing.T) {
	ctx := context.Background()
	mock, srv, httpSrv := startRelay(t)

	tr, err := wstransport.Dial(ctx, wsURL(httpSrv), wstransport.Options{Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)

	mux := tdlib.NewMux(tr, tdlib.MuxOptions{ReceiveTimeout: 10 * time.Millisecond})
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		done <- mux.Run(runCtx)
	}()
	defer func() {
		cancel()
		<-done
		require.NoError(t, mux.Close())
	}()

	d := tdapi.NewUpdateDispatcher()
	updates := make(chan *tdapi.UpdateOption, 1)
	d.OnOption(func(ctx context.Context, update *tdapi.UpdateOption) error {
		updates <- update
		return nil
	})
	client, err := mux.NewClient(ctx, tdlib.Options{UpdateHandler: d})
	require.NoError(t, err)
	assert.Equal(t, int32(1), client.ID())

	mock.ExpectCall(tdapi.GetOptionRequestTypeName).ThenResult(&tdapi.OptionValueString{Value: "1.8.0"})
	value, err := client.API().GetOption(ctx, &tdapi.GetOptionRequest{Name: "version"})
	require.NoError(t, err)
	assert.Equal(t, "1.8.0", value.(*tdapi.OptionValueString).Value)

	mock.ExpectCall(tdapi.GetChatRequestTypeName).ThenErr(400, "CHAT_NOT_FOUND")
	_, err = client.API().GetChat(ctx, &tdapi.GetChatRequest{ChatID: 1})
	require.True(t, tderr.Is(err, "CHAT_NOT_FOUND"))

	mock.PushUpdate(client.ID(), &tdapi.UpdateOption{Name: "my_id", Value: &tdapi.OptionValueInteger{Value: 42}})
	select {
	case u := <-updates:
		assert.Equal(t, int64(42), u.Value.(*tdapi.OptionValueInteger).Value)
	case <-time.After(5 * time.Second):
		t.Fatal("update not relayed")
	}

	mock.ExpectCall(tdapi.SetLogVerbosityLevelRequestTypeName).ThenOK()
	require.NoError(t, mux.Execute(ctx, &tdapi.SetLogVerbosityLevelRequest{NewVerbosityLevel: 2}, &tdapi.Ok{}))

	mock.ExpectCall(tdapi.GetMeRequestTypeName).ThenNoReply()
	err = mux.Execute(ctx, &tdapi.GetMeRequest{}, &tdapi.User{})
	require.ErrorIs(t, err, tderr.ErrBadRequest)

	stats := srv.Stats()
	assert.Equal(t, 1, stats.Connections)
	assert.Equal(t, []int32{1}, stats.Clients)
}

func TestRelayStatus(t *testing.T) {
	_, _, httpSrv := startRelay(t)

	resp, err := http.Get(httpSrv.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats relay.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 0, stats.Connections)
	assert.Empty(t, stats.Clients)
}

func TestRelayRejectsForeignClient(t *testing.T) {
	ctx := context.Background()
	_, _, httpSrv := startRelay(t)

	tr, err := wstransport.Dial(ctx, wsURL(httpSrv), wstransport.Options{})
	require.NoError(t, err)
	defer tr.Close()

	require.NoError(t, tr.Send(ctx, 7, []byte(`{"@type":"getMe","@extra":"x","@client_id":7}`)))
	var data []byte
	require.Eventually(t, func() bool {
		data, err = tr.Receive(ctx, 10*time.Millisecond)
		return err != nil || data != nil
	}, 5*time.Second, time.Millisecond)
	require.NoError(t, err)
	assert.JSONEq(t, `{"@type":"error","@extra":"x","@client_id":7,"code":400,"message":"client is not attached to this connection"}`, string(data))
}

func TestFrame(t *testing.T) {
	for _, tt := range []struct {
		name  string
		frame relay.Frame
		json  string
	}{
		{
			name:  "CreateRequest",
			frame: relay.Frame{Op: relay.OpCreateClientID, Extra: "a"},
			json:  `{"@relay":"create_client_id","@extra":"a"}`,
		},
		{
			name:  "CreateReply",
			frame: relay.Frame{Op: relay.OpCreateClientID, Extra: "a", ID: 3},
			json:  `{"@relay":"create_client_id","@extra":"a","@type":"clientId","id":3}`,
		},
		{
			name:  "Attach",
			frame: relay.Frame{Op: relay.OpAttach, ClientIDs: []int32{1, 2}},
			json:  `{"@relay":"attach","client_ids":[1,2]}`,
		},
		{
			name:  "ExecuteRequest",
			frame: relay.Frame{Op: relay.OpExecute, Extra: "b", Request: []byte(`{"@type":"getTextEntities","text":"x"}`)},
			json:  `{"@relay":"execute","@extra":"b","request":{"@type":"getTextEntities","text":"x"}}`,
		},
		{
			name:  "ExecuteReply",
			frame: relay.Frame{Op: relay.OpExecute, Extra: "b", Result: []byte(`{"@type":"ok"}`)},
			json:  `{"@relay":"execute","@extra":"b","result":{"@type":"ok"}}`,
		},
		{
			name:  "Error",
			frame: relay.Frame{Op: relay.OpAttach, Extra: "c", Code: 400, Message: "nope"},
			json:  `{"@relay":"attach","@extra":"c","@type":"error","code":400,"message":"nope"}`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.frame.Bytes()
			require.JSONEq(t, tt.json, string(data))
			require.True(t, relay.IsControl(data))

			parsed, err := relay.ParseFrame(data)
			require.NoError(t, err)
			assert.Equal(t, tt.frame.Op, parsed.Op)
			assert.Equal(t, tt.frame.Extra, parsed.Extra)
			assert.Equal(t, tt.frame.ClientIDs, parsed.ClientIDs)
			assert.Equal(t, tt.frame.ID, parsed.ID)
			assert.Equal(t, tt.frame.Code, parsed.Code)
		})
	}

	require.False(t, relay.IsControl([]byte(`{"@type":"getMe"}`)))
	_, err := relay.ParseFrame([]byte(`{"@type":"getMe"}`))
	require.Error(t, err)
}
