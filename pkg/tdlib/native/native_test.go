//go:build !tdjson

package native

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnavailable(t *testing.T) {
	tr, err := New(Options{})
	require.ErrorIs(t, err, ErrUnavailable)
	require.Nil(t, tr)
}
