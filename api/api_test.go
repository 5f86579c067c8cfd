// File: api/api_test.go

package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnErrorStrings(t *testing.T) {
	require.Equal(t, "no error", ConnNoError.String())
	require.Equal(t, "not connected", ConnNotConnected.String())
	require.Equal(t, "i/o error", ConnIoError.String())
	require.Equal(t, "stream closed by peer", ConnStreamClosed.String())
	require.Equal(t, "unknown connection error", ConnError(99).String())
}

func TestConnectionStateStrings(t *testing.T) {
	require.Equal(t, "disconnected", StateDisconnected.String())
	require.Equal(t, "connecting", StateConnecting.String())
	require.Equal(t, "connected", StateConnected.String())
	require.Equal(t, "unknown", ConnectionState(99).String())
}
