package tdlib

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go.mau.fi/gotdlib/pkg/tderr"
)

func TestFuture(t *testing.T) {
	f := newFuture[int]()
	require.True(t, f.set(1))
	require.False(t, f.set(2))
	require.False(t, f.fail(tderr.ErrClosed))
	v, err := f.get(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, v)

	f = newFuture[int]()
	require.True(t, f.fail(tderr.ErrClosed))
	_, err = f.get(context.Background())
	require.ErrorIs(t, err, tderr.ErrClosed)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	_, err = newFuture[int]().get(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
