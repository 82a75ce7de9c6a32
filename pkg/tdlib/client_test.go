package tdlib_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"go.mau.fi/gotdlib/pkg/tdapi"
	"go.mau.fi/gotdlib/pkg/tderr"
	"go.mau.fi/gotdlib/pkg/tdjson"
	"go.mau.fi/gotdlib/pkg/tdlib"
	"go.mau.fi/gotdlib/pkg/tdlib/hook"
	"go.mau.fi/gotdlib/pkg/tdlib/tdmock"
)

func newTestMux(t *testing.T) (*tdmock.Mock, *tdlib.Mux) {
	mock := tdmock.New(t)
	mux := tdlib.NewMux(mock, tdlib.MuxOptions{
		Logger:         zap.NewNop(),
		ReceiveTimeout: 10 * time.Millisecond,
	})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- mux.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		require.NoError(t, mux.Close())
	})
	return mock, mux
}

func newTestClient(t *testing.T, opts tdlib.Options) (*tdmock.Mock, *tdlib.Client) {
	mock, mux := newTestMux(t)
	client, err := mux.NewClient(context.Background(), opts)
	require.NoError(t, err)
	return mock, client
}

func TestClientInvoke(t *testing.T) {
	ctx := context.Background()
	mock, client := newTestClient(t, tdlib.Options{})

	mock.ExpectCall(tdapi.GetMeRequestTypeName).ThenResult(&tdapi.User{ID: 42, FirstName: "Alice"})
	me, err := client.API().GetMe(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), me.ID)
	assert.Equal(t, "Alice", me.FirstName)
	assert.Equal(t, client.ID(), me.ClientID)
	assert.NotEmpty(t, me.Extra)

	// Self is cached after the first call.
	mock.ExpectCall(tdapi.GetMeRequestTypeName).ThenResult(&tdapi.User{ID: 42})
	self, err := client.Self(ctx)
	require.NoError(t, err)
	self2, err := client.Self(ctx)
	require.NoError(t, err)
	require.Same(t, self, self2)
}

func TestClientInvokeKeepsExtra(t *testing.T) {
	mock, client := newTestClient(t, tdlib.Options{})

	req := tdapi.NewGetChatRequestBuilder().ChatID(1).Build()
	extra := req.Extra
	mock.ExpectCall(tdapi.GetChatRequestTypeName).ThenFunc(func(clientID int32, request []byte) (tdjson.Object, error) {
		h, err := tdjson.Peek(request)
		if err != nil {
			return nil, err
		}
		assert.Equal(t, extra, h.Extra)
		assert.Equal(t, clientID, h.ClientID)
		return &tdapi.Chat{ID: 1, Title: "chat"}, nil
	})
	chat, err := client.API().GetChat(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "chat", chat.Title)
	assert.Equal(t, extra, chat.Extra)
}

func TestClientConcurrentCorrelation(t *testing.T) {
	const n = 16
	mock, client := newTestClient(t, tdlib.Options{})

	type call struct {
		extra string
		x     int32
	}
	calls := make(chan call, n)
	for i := 0; i < n; i++ {
		mock.ExpectCall(tdapi.TestSquareIntRequestTypeName).ThenFunc(func(clientID int32, request []byte) (tdjson.Object, error) {
			var req tdapi.TestSquareIntRequest
			if err := tdjson.Unmarshal(request, &req); err != nil {
				return nil, err
			}
			calls <- call{extra: req.Extra, x: req.X}
			return nil, nil
		})
	}

	var wg sync.WaitGroup
	results := make([]int32, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := client.API().TestSquareInt(context.Background(), &tdapi.TestSquareIntRequest{X: int32(i)})
			errs[i] = err
			if err == nil {
				results[i] = res.Value
			}
		}(i)
	}

	received := make([]call, 0, n)
	for i := 0; i < n; i++ {
		received = append(received, <-calls)
	}
	// Reply in reverse order of arrival.
	for i := len(received) - 1; i >= 0; i-- {
		c := received[i]
		mock.Reply(client.ID(), c.extra, &tdapi.TestInt{Value: c.x * c.x})
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, int32(i*i), results[i])
	}
}

func TestClientTDLibError(t *testing.T) {
	ctx := context.Background()
	mock, client := newTestClient(t, tdlib.Options{})

	mock.ExpectCall(tdapi.GetChatRequestTypeName).ThenErr(400, "CHAT_NOT_FOUND")
	_, err := client.API().GetChat(ctx, &tdapi.GetChatRequest{ChatID: 5})
	require.Error(t, err)
	rpcErr, ok := tderr.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, rpcErr.Code)
	assert.Equal(t, "CHAT_NOT_FOUND", rpcErr.Type)
	assert.ErrorIs(t, err, tderr.ErrBadRequest)
	assert.Equal(t, tderr.ErrTDLib, tderr.KindOf(err))

	mock.ExpectCall(tdapi.GetMeRequestTypeName).ThenErr(429, "Too Many Requests: retry after 7")
	_, err = client.API().GetMe(ctx)
	d, ok := tderr.FloodWait(err)
	require.True(t, ok)
	assert.Equal(t, 7, d)

	// testReturnError returns the error object as a regular result.
	mock.ExpectCall(tdapi.TestReturnErrorRequestTypeName).ThenResult(&tdapi.Error{Code: 1, Message: "echo"})
	res, err := client.API().TestReturnError(ctx, &tdapi.TestReturnErrorRequest{Error: &tdapi.Error{Code: 1, Message: "echo"}})
	require.NoError(t, err)
	assert.Equal(t, "echo", res.Message)
}

func TestClientTransportError(t *testing.T) {
	mock, client := newTestClient(t, tdlib.Options{})

	mock.ExpectCall(tdapi.GetMeRequestTypeName).ThenTransportErr(errors.New("broken pipe"))
	_, err := client.API().GetMe(context.Background())
	require.ErrorIs(t, err, tderr.ErrIO)

	err = client.Invoke(context.Background(), nil, &tdapi.Ok{})
	require.ErrorIs(t, err, tderr.ErrBadRequest)
}

func TestClientMalformedReply(t *testing.T) {
	mock, client := newTestClient(t, tdlib.Options{})

	mock.ExpectCall(tdapi.GetChatRequestTypeName).ThenResult(&tdapi.User{ID: 1})
	_, err := client.API().GetChat(context.Background(), &tdapi.GetChatRequest{ChatID: 1})
	require.ErrorIs(t, err, tderr.ErrJSON)
}

func TestClientCancel(t *testing.T) {
	mock, client := newTestClient(t, tdlib.Options{})

	var extra string
	mock.ExpectCall(tdapi.GetMeRequestTypeName).ThenFunc(func(clientID int32, request []byte) (tdjson.Object, error) {
		h, err := tdjson.Peek(request)
		extra = h.Extra
		return nil, err
	})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := client.API().GetMe(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// Late reply is dropped and doesn't disturb the next call.
	mock.Reply(client.ID(), extra, &tdapi.User{ID: 1})
	mock.ExpectCall(tdapi.GetMeRequestTypeName).ThenResult(&tdapi.User{ID: 2})
	me, err := client.API().GetMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), me.ID)
}

func TestClientClose(t *testing.T) {
	mock, client := newTestClient(t, tdlib.Options{})

	mock.ExpectCall(tdapi.GetChatRequestTypeName).ThenNoReply()
	mock.ExpectCall(tdapi.CloseRequestTypeName).ThenOK()

	pending := make(chan error, 1)
	go func() {
		_, err := client.API().GetChat(context.Background(), &tdapi.GetChatRequest{ChatID: 1})
		pending <- err
	}()
	require.Eventually(t, func() bool {
		return len(mock.Remaining()) == 1
	}, time.Second, time.Millisecond)

	require.NoError(t, client.Close(context.Background()))
	require.ErrorIs(t, <-pending, tderr.ErrClosed)
	<-client.Done()

	_, err := client.API().GetMe(context.Background())
	require.ErrorIs(t, err, tderr.ErrClosed)
	assert.Equal(t, tderr.ErrInternal, tderr.KindOf(err))
	require.NoError(t, client.Close(context.Background()))
}

func TestClientUpdates(t *testing.T) {
	d := tdapi.NewUpdateDispatcher()
	titles := make(chan string, 1)
	d.OnChatTitle(func(ctx context.Context, update *tdapi.UpdateChatTitle) error {
		titles <- update.Title
		return nil
	})
	mock, client := newTestClient(t, tdlib.Options{UpdateHandler: d})

	mock.PushUpdate(client.ID(), &tdapi.UpdateChatTitle{ChatID: 1, Title: "news"})
	select {
	case title := <-titles:
		assert.Equal(t, "news", title)
	case <-time.After(time.Second):
		t.Fatal("update not delivered")
	}

	mock.PushUpdate(client.ID(), &tdapi.UpdateAuthorizationState{
		AuthorizationState: &tdapi.AuthorizationStateWaitPhoneNumber{},
	})
	require.Eventually(t, func() bool {
		_, ok := client.AuthorizationState().(*tdapi.AuthorizationStateWaitPhoneNumber)
		return ok
	}, time.Second, time.Millisecond)

	// Objects of other clients and unsupported objects are ignored.
	mock.PushUpdate(client.ID()+1, &tdapi.UpdateChatTitle{ChatID: 2, Title: "other"})
	mock.PushRaw([]byte(`{"@type":"updateUnknownThing","@client_id":1}`))
	mock.PushRaw([]byte(`not json`))

	mock.PushUpdate(client.ID(), &tdapi.UpdateAuthorizationState{
		AuthorizationState: &tdapi.AuthorizationStateClosed{},
	})
	select {
	case <-client.Done():
	case <-time.After(time.Second):
		t.Fatal("client not closed")
	}
	assert.Empty(t, titles)
}

func TestClientUpdateQueueTimeout(t *testing.T) {
	release := make(chan struct{})
	errs := make(chan error, 8)
	d := tdapi.NewUpdateDispatcher()
	d.OnChatTitle(func(ctx context.Context, update *tdapi.UpdateChatTitle) error {
		<-release
		return nil
	})
	mock, client := newTestClient(t, tdlib.Options{
		UpdateHandler: d,
		UpdateQueue:   1,
		UpdateTimeout: 10 * time.Millisecond,
		OnError: func(err error) {
			errs <- err
		},
	})
	defer close(release)

	for i := 0; i < 3; i++ {
		mock.PushUpdate(client.ID(), &tdapi.UpdateChatTitle{ChatID: 1, Title: "t"})
	}
	select {
	case err := <-errs:
		require.ErrorIs(t, err, tderr.ErrTimeout)
		assert.Equal(t, tderr.ErrInternal, tderr.KindOf(err))
	case <-time.After(time.Second):
		t.Fatal("update was not dropped")
	}
}

func TestClientMiddlewares(t *testing.T) {
	var seen []string
	var order []string
	mw := func(name string) tdlib.Middleware {
		return tdlib.MiddlewareFunc(func(next tdapi.Invoker) tdlib.InvokeFunc {
			return func(ctx context.Context, input tdapi.Function, output tdjson.TDLibDecoder) error {
				order = append(order, name)
				return next.Invoke(ctx, input, output)
			}
		})
	}
	mock, client := newTestClient(t, tdlib.Options{
		TracerProvider: noop.NewTracerProvider(),
		Middlewares: []tdlib.Middleware{
			mw("first"),
			mw("second"),
			hook.UpdateHook(func(ctx context.Context, u tdapi.UpdateClass) error {
				seen = append(seen, u.TypeName())
				return nil
			}),
		},
	})

	mock.ExpectCall(tdapi.GetCurrentStateRequestTypeName).ThenResult(&tdapi.Updates{Updates: []tdapi.UpdateClass{
		&tdapi.UpdateConnectionState{State: &tdapi.ConnectionStateReady{}},
		&tdapi.UpdateOption{Name: "version", Value: &tdapi.OptionValueString{Value: "1.8.0"}},
	}})
	state, err := client.API().GetCurrentState(context.Background())
	require.NoError(t, err)
	require.Len(t, state.Updates, 2)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, []string{tdapi.UpdateConnectionStateTypeName, tdapi.UpdateOptionTypeName}, seen)
}

func TestMuxExecute(t *testing.T) {
	mock, mux := newTestMux(t)

	mock.ExpectCall(tdapi.GetTextEntitiesRequestTypeName).ThenResult(&tdapi.TextEntities{
		Entities: []tdapi.TextEntity{{Offset: 0, Length: 4, Type: &tdapi.TextEntityTypeURL{}}},
	})
	var res tdapi.TextEntities
	require.NoError(t, mux.Execute(context.Background(), &tdapi.GetTextEntitiesRequest{Text: "t.me"}, &res))
	require.Len(t, res.Entities, 1)
	assert.IsType(t, &tdapi.TextEntityTypeURL{}, res.Entities[0].Type)

	mock.ExpectCall(tdapi.GetMeRequestTypeName).ThenNoReply()
	err := mux.Execute(context.Background(), &tdapi.GetMeRequest{}, &tdapi.User{})
	require.ErrorIs(t, err, tderr.ErrBadRequest)
}
