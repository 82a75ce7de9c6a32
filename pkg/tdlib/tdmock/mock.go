// Package tdmock contains a scripted in-memory TDLib transport for tests.
package tdmock

import (
	"context"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mau.fi/gotdlib/pkg/tdapi"
	"go.mau.fi/gotdlib/pkg/tdjson"
	"go.mau.fi/gotdlib/pkg/tdlib"
)

// ErrClosed is returned by transport methods after Close.
var ErrClosed = errors.New("mock transport closed")

// TestingT is the subset of testing.TB used by Mock.
type TestingT interface {
	require.TestingT
	Helper()
	Cleanup(func())
}

type expectation struct {
	typ     string
	handler Handler
}

// Mock is a Transport which replies to requests with scripted results.
// Requests must arrive in the order they were expected.
type Mock struct {
	t TestingT

	mu       sync.Mutex
	expected []expectation
	lastID   int32

	encodeMu sync.Mutex

	incoming  chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

var _ tdlib.Transport = (*Mock)(nil)

// New creates a new Mock. All expectations must be met at the end of the test.
func New(t TestingT) *Mock {
	m := &Mock{
		t:        t,
		incoming: make(chan []byte, 64),
		done:     make(chan struct{}),
	}
	t.Cleanup(func() {
		assert.Empty(t, m.Remaining(), "not all expected calls were made")
	})
	return m
}

// RequestBuilder configures the reply to an expected call.
type RequestBuilder struct {
	mock *Mock
	typ  string
}

// ExpectCall expects a request with the given @type.
func (m *Mock) ExpectCall(typ string) *RequestBuilder {
	return &RequestBuilder{mock: m, typ: typ}
}

// ThenFunc replies with the result of fn. A nil result sends no reply.
func (b *RequestBuilder) ThenFunc(fn HandlerFunc) *Mock {
	b.mock.mu.Lock()
	b.mock.expected = append(b.mock.expected, expectation{typ: b.typ, handler: fn})
	b.mock.mu.Unlock()
	return b.mock
}

// ThenResult replies with result.
func (b *RequestBuilder) ThenResult(result tdjson.Object) *Mock {
	return b.ThenFunc(func(int32, []byte) (tdjson.Object, error) {
		return result, nil
	})
}

// ThenOK replies with ok.
func (b *RequestBuilder) ThenOK() *Mock {
	return b.ThenResult(&tdapi.Ok{})
}

// ThenErr replies with a TDLib error object.
func (b *RequestBuilder) ThenErr(code int32, message string) *Mock {
	return b.ThenResult(&tdapi.Error{Code: code, Message: message})
}

// ThenNoReply accepts the request and never replies to it.
func (b *RequestBuilder) ThenNoReply() *Mock {
	return b.ThenFunc(func(int32, []byte) (tdjson.Object, error) {
		return nil, nil
	})
}

// ThenTransportErr fails the Send call itself.
func (b *RequestBuilder) ThenTransportErr(err error) *Mock {
	return b.ThenFunc(func(int32, []byte) (tdjson.Object, error) {
		return nil, err
	})
}

// Remaining returns the types of expected calls that were not made yet.
func (m *Mock) Remaining() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, 0, len(m.expected))
	for _, e := range m.expected {
		types = append(types, e.typ)
	}
	return types
}

// PushUpdate sends an update to the client with the given identifier.
func (m *Mock) PushUpdate(clientID int32, update tdapi.UpdateClass) {
	m.Push(clientID, update)
}

// Push sends any object to the client with the given identifier, without @extra.
func (m *Mock) Push(clientID int32, obj tdjson.Object) {
	m.t.Helper()
	data, err := m.encode(obj, tdjson.Meta{ClientID: clientID})
	require.NoError(m.t, err)
	m.PushRaw(data)
}

// Reply sends result as the reply to the request with the given @extra. It is
// meant for requests accepted with ThenNoReply or a nil ThenFunc result.
func (m *Mock) Reply(clientID int32, extra string, result tdjson.Object) {
	m.t.Helper()
	data, err := m.encode(result, tdjson.Meta{Extra: extra, ClientID: clientID})
	require.NoError(m.t, err)
	m.PushRaw(data)
}

// PushRaw sends raw bytes to the receive loop.
func (m *Mock) PushRaw(data []byte) {
	select {
	case m.incoming <- data:
	case <-m.done:
	}
}

func (m *Mock) encode(obj tdjson.Object, meta tdjson.Meta) ([]byte, error) {
	m.encodeMu.Lock()
	defer m.encodeMu.Unlock()
	env := obj.Envelope()
	saved := *env
	*env = meta
	defer func() { *env = saved }()
	return tdjson.Marshal(obj)
}

func (m *Mock) next(request []byte) (tdjson.Header, Handler, error) {
	h, err := tdjson.Peek(request)
	if err != nil {
		return h, nil, errors.Wrap(err, "peek request")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.expected) == 0 {
		m.t.Errorf("unexpected call %s: %s", h.Type, request)
		return h, nil, errors.Errorf("unexpected call %s", h.Type)
	}
	e := m.expected[0]
	m.expected = m.expected[1:]
	if e.typ != h.Type {
		m.t.Errorf("expected call %s, got %s", e.typ, h.Type)
	}
	return h, e.handler, nil
}

func (m *Mock) isClosed() bool {
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}

// CreateClientID implements tdlib.Transport.
func (m *Mock) CreateClientID(ctx context.Context) (int32, error) {
	if m.isClosed() {
		return 0, ErrClosed
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastID++
	return m.lastID, nil
}

// Send implements tdlib.Transport.
func (m *Mock) Send(ctx context.Context, clientID int32, request []byte) error {
	if m.isClosed() {
		return ErrClosed
	}
	h, handler, err := m.next(request)
	if err != nil {
		return err
	}
	result, err := handler.Handle(clientID, request)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	data, err := m.encode(result, tdjson.Meta{Extra: h.Extra, ClientID: clientID})
	if err != nil {
		return errors.Wrap(err, "encode result")
	}
	m.PushRaw(data)
	return nil
}

// Receive implements tdlib.Transport.
func (m *Mock) Receive(ctx context.Context, timeout time.Duration) ([]byte, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case data := <-m.incoming:
		return data, nil
	case <-timer.C:
		return nil, nil
	case <-m.done:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Execute implements tdlib.Transport.
func (m *Mock) Execute(ctx context.Context, request []byte) ([]byte, error) {
	if m.isClosed() {
		return nil, ErrClosed
	}
	h, handler, err := m.next(request)
	if err != nil {
		return nil, err
	}
	result, err := handler.Handle(0, request)
	if err != nil || result == nil {
		return nil, err
	}
	return m.encode(result, tdjson.Meta{Extra: h.Extra})
}

// Close implements tdlib.Transport.
func (m *Mock) Close() error {
	m.closeOnce.Do(func() {
		close(m.done)
	})
	return nil
}
