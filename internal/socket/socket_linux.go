//go:build linux
// +build linux

// File: internal/socket/socket_linux.go
//
// Linux implementation on golang.org/x/sys/unix. Sockets are created
// blocking: the send path relies on kernel backpressure and the receive
// path only reads after a readiness poll reports data.

package socket

import (
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

// Dial creates a blocking TCP socket and connects it to ip:port. On
// success the open descriptor is returned; on failure InvalidFD and the
// connect error.
func Dial(ip net.IP, port int) (int, error) {
	family := unix.AF_INET
	if ip.To4() == nil {
		family = unix.AF_INET6
	}

	fd, err := unix.Socket(family, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, unix.IPPROTO_TCP)
	if err != nil {
		return InvalidFD, fmt.Errorf("socket create: %w", err)
	}

	sa, err := sockaddr(ip, port, family)
	if err != nil {
		_ = unix.Close(fd)
		return InvalidFD, err
	}

	if err := unix.Connect(fd, sa); err != nil {
		_ = unix.Close(fd)
		return InvalidFD, fmt.Errorf("connect: %w", err)
	}
	return fd, nil
}

// Read reads from fd into p, retrying on EINTR.
func Read(fd int, p []byte) (int, error) {
	for {
		n, err := unix.Read(fd, p)
		if err == unix.EINTR {
			continue
		}
		return n, err
	}
}

// Write writes p to fd, retrying on EINTR. It reports how many bytes the
// kernel accepted, which may be fewer than len(p).
func Write(fd int, p []byte) (int, error) {
	for {
		n, err := unix.Write(fd, p)
		if err == unix.EINTR {
			continue
		}
		return n, err
	}
}

// Close closes fd.
func Close(fd int) error {
	return unix.Close(fd)
}

// LocalAddr returns the numeric local interface address and port bound to
// fd, as reported by getsockname(2).
func LocalAddr(fd int) (string, int, error) {
	sa, err := unix.Getsockname(fd)
	if err != nil {
		return "", 0, fmt.Errorf("getsockname: %w", err)
	}
	switch sa := sa.(type) {
	case *unix.SockaddrInet4:
		return net.IP(sa.Addr[:]).String(), sa.Port, nil
	case *unix.SockaddrInet6:
		return net.IP(sa.Addr[:]).String(), sa.Port, nil
	default:
		return "", 0, fmt.Errorf("getsockname: unexpected address family %T", sa)
	}
}

// sockaddr builds the unix.Sockaddr for ip:port in the given family.
func sockaddr(ip net.IP, port int, family int) (unix.Sockaddr, error) {
	if family == unix.AF_INET {
		ip4 := ip.To4()
		if ip4 == nil {
			return nil, fmt.Errorf("sockaddr: %s is not an IPv4 address", ip)
		}
		sa := &unix.SockaddrInet4{Port: port}
		copy(sa.Addr[:], ip4)
		return sa, nil
	}
	ip16 := ip.To16()
	if ip16 == nil {
		return nil, fmt.Errorf("sockaddr: %s is not an IPv6 address", ip)
	}
	sa := &unix.SockaddrInet6{Port: port}
	copy(sa.Addr[:], ip16)
	return sa, nil
}
