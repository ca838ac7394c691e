package berr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIs(t *testing.T) {
	cause := errors.New("boom")
	err := New(Rpc, cause)

	require.Error(t, err)
	require.True(t, Is(err, Rpc))
	require.False(t, Is(err, Oracle))
	require.ErrorIs(t, err, cause)
}

func TestNewNilCause(t *testing.T) {
	require.Nil(t, New(Config, nil))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "sink_http", SinkHttp.String())
	require.Equal(t, "unknown", Kind(99).String())
}
