// File: resolver/resolver.go
//
// Package resolver is the connect-side collaborator of the transport
// core: it resolves a hostname, opens a stream socket to the first
// address that accepts, and owns the matching close routine. The core
// itself never resolves addresses.

package resolver

import (
	"fmt"
	"net"

	"github.com/SilverCreekEntertainment/gloox/api"
	"github.com/SilverCreekEntertainment/gloox/internal/socket"
	"github.com/SilverCreekEntertainment/gloox/logging"
)

// Connect resolves host and connects a blocking TCP socket to it on the
// given port. It returns the open descriptor and api.ConnNoError on
// success; socket.InvalidFD and a classifying error code otherwise.
func Connect(host string, port int, logger *logging.Logger) (int, api.ConnError) {
	if host == "" {
		logger.Err(logging.AreaResolver, "connect requested with empty host")
		return socket.InvalidFD, api.ConnDNSError
	}

	ips, err := net.LookupIP(host)
	if err != nil || len(ips) == 0 {
		logger.Err(logging.AreaResolver, fmt.Sprintf("lookup %s failed: %v", host, err))
		return socket.InvalidFD, api.ConnDNSError
	}

	var lastErr error
	for _, ip := range ips {
		fd, err := socket.Dial(ip, port)
		if err == nil {
			return fd, api.ConnNoError
		}
		lastErr = err
	}
	logger.Err(logging.AreaResolver,
		fmt.Sprintf("connect %s:%d failed: %v", host, port, lastErr))
	return socket.InvalidFD, api.ConnConnectionRefused
}

// CloseSocket closes an open descriptor obtained from Connect. Teardown
// paths delegate here so close-side handling stays in one place.
func CloseSocket(fd int, logger *logging.Logger) {
	if fd < 0 {
		return
	}
	if err := socket.Close(fd); err != nil {
		logger.Err(logging.AreaResolver, fmt.Sprintf("close socket %d failed: %v", fd, err))
	}
}
