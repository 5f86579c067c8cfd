// File: internal/socket/socket.go
//
// Package socket wraps the raw stream-socket syscalls the transport core
// relies on. Descriptors are plain OS file descriptors; InvalidFD is the
// "not open" sentinel used throughout the module.

package socket

// InvalidFD denotes a descriptor slot with no open socket behind it.
const InvalidFD = -1
