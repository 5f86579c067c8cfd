//go:build linux
// +build linux

// File: resolver/resolver_test.go

package resolver

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SilverCreekEntertainment/gloox/api"
	"github.com/SilverCreekEntertainment/gloox/internal/socket"
)

func TestConnectAndClose(t *testing.T) {
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		peer, err := ln.Accept()
		if err != nil {
			return
		}
		buf := make([]byte, 1)
		peer.Read(buf)
		peer.Close()
	}()

	addr := ln.Addr().(*net.TCPAddr)
	fd, cerr := Connect("127.0.0.1", addr.Port, nil)
	require.Equal(t, api.ConnNoError, cerr)
	require.GreaterOrEqual(t, fd, 0)

	CloseSocket(fd, nil)
	<-done
}

func TestConnectEmptyHost(t *testing.T) {
	fd, cerr := Connect("", 5222, nil)
	require.Equal(t, api.ConnDNSError, cerr)
	require.Equal(t, socket.InvalidFD, fd)
}

func TestConnectUnresolvableHost(t *testing.T) {
	// .invalid is reserved and never resolves (RFC 2606).
	fd, cerr := Connect("does-not-exist.invalid", 5222, nil)
	require.Equal(t, api.ConnDNSError, cerr)
	require.Equal(t, socket.InvalidFD, fd)
}

func TestConnectRefused(t *testing.T) {
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().(*net.TCPAddr)
	require.NoError(t, ln.Close())

	fd, cerr := Connect("127.0.0.1", addr.Port, nil)
	require.Equal(t, api.ConnConnectionRefused, cerr)
	require.Equal(t, socket.InvalidFD, fd)
}

func TestCloseSocketIgnoresInvalid(t *testing.T) {
	CloseSocket(socket.InvalidFD, nil)
}
