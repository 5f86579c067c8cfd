//go:build !linux
// +build !linux

// File: internal/socket/socket_stub.go
//
// Non-Linux stub. The module currently targets Linux; other platforms get
// explicit "not supported" failures instead of silent misbehavior.

package socket

import (
	"errors"
	"net"
)

var errNotSupported = errors.New("socket: platform not supported")

// Dial is unsupported on this platform.
func Dial(ip net.IP, port int) (int, error) { return InvalidFD, errNotSupported }

// Read is unsupported on this platform.
func Read(fd int, p []byte) (int, error) { return 0, errNotSupported }

// Write is unsupported on this platform.
func Write(fd int, p []byte) (int, error) { return 0, errNotSupported }

// Close is unsupported on this platform.
func Close(fd int) error { return errNotSupported }

// LocalAddr is unsupported on this platform.
func LocalAddr(fd int) (string, int, error) { return "", 0, errNotSupported }
