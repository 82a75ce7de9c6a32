package tderr

import (
	"io"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, tt := range []struct {
		code     int
		msg      string
		typ      string
		argument int
	}{
		{400, "PHONE_CODE_INVALID", "PHONE_CODE_INVALID", 0},
		{420, "FLOOD_WAIT_30", "FLOOD_WAIT", 30},
		{429, "Too Many Requests: retry after 12", "FLOOD_WAIT", 12},
		{404, "Not Found", "", 0},
		{400, "CHANNEL_PRIVATE", "CHANNEL_PRIVATE", 0},
	} {
		t.Run(tt.msg, func(t *testing.T) {
			e := New(tt.code, tt.msg)
			require.Equal(t, tt.typ, e.Type)
			require.Equal(t, tt.argument, e.Argument)
		})
	}
}

func TestAs(t *testing.T) {
	err := errors.Wrap(New(400, "PHONE_NUMBER_INVALID"), "invoke")
	rpcErr, ok := As(err)
	require.True(t, ok)
	require.Equal(t, 400, rpcErr.Code)
	require.True(t, Is(err, "PHONE_NUMBER_INVALID"))
	require.False(t, Is(err, "PHONE_CODE_INVALID"))
	require.True(t, IsCode(err, 401, 400))
	require.ErrorIs(t, err, ErrTDLib)
	require.ErrorIs(t, err, ErrBadRequest)
	require.Equal(t, ErrTDLib, KindOf(err))

	_, ok = As(io.EOF)
	require.False(t, ok)
	require.False(t, IsCode(io.EOF, 400))
}

func TestFloodWait(t *testing.T) {
	d, ok := FloodWait(errors.Wrap(New(429, "Too Many Requests: retry after 5"), "send"))
	require.True(t, ok)
	require.Equal(t, 5, d)

	_, ok = FloodWait(New(400, "MESSAGE_EMPTY"))
	require.False(t, ok)
}

func TestMark(t *testing.T) {
	require.NoError(t, Mark(nil, ErrIO))

	err := Mark(io.ErrUnexpectedEOF, ErrIO)
	require.ErrorIs(t, err, ErrIO)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, io.ErrUnexpectedEOF.Error(), err.Error())
	require.Equal(t, ErrIO, KindOf(errors.Wrap(err, "receive")))

	// Marking twice keeps the original.
	require.Same(t, err, Mark(err, ErrIO))
}

func TestChannelErrors(t *testing.T) {
	require.ErrorIs(t, ErrTimeout, ErrInternal)
	require.ErrorIs(t, ErrClosed, ErrInternal)
	require.Equal(t, ErrInternal, KindOf(errors.Wrap(ErrClosed, "enqueue update")))
	require.Nil(t, KindOf(io.EOF))
}
