// File: transport/options_test.go

package transport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	c := NewConn(nil, nil, "example.net", 5222,
		WithBufferSize(16), WithRecvTimeout(250000))
	require.Len(t, c.buf, 16)
	require.Equal(t, 250000, c.recvTimeout)
}

func TestOptionsRejectNonPositive(t *testing.T) {
	c := NewConn(nil, nil, "example.net", 5222,
		WithBufferSize(0), WithRecvTimeout(-1))
	require.Len(t, c.buf, DefaultBufferSize)
	require.Equal(t, DefaultRecvTimeout, c.recvTimeout)
}
