// File: transport/conn.go
//
// Package transport implements the TCP byte-stream connection primitive.
// A Conn owns one socket descriptor and coordinates the concurrent send
// and receive paths over it: two independent guards give full-duplex
// operation, a cooperative cancel flag stops the receive loop, and
// teardown uses non-blocking lock acquisition so it can never deadlock
// against in-flight I/O.
//
// The Conn moves opaque bytes. Framing, parsing and any handshake belong
// to the layers above it; address resolution and socket close-side
// handling live in the resolver package.

package transport

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/SilverCreekEntertainment/gloox/api"
	"github.com/SilverCreekEntertainment/gloox/internal/socket"
	"github.com/SilverCreekEntertainment/gloox/logging"
	"github.com/SilverCreekEntertainment/gloox/prep"
	"github.com/SilverCreekEntertainment/gloox/resolver"
)

const (
	// DefaultBufferSize is the capacity of the receive scratch buffer.
	DefaultBufferSize = 8192

	// DefaultRecvTimeout bounds one receive attempt, in microseconds.
	DefaultRecvTimeout = 1000000
)

// Conn is a bidirectional TCP byte-stream connection over one socket
// descriptor. The zero value is not usable; construct with NewConn.
//
// A Conn never spawns its own receive worker: Receive is meant to be
// driven on a caller-owned goroutine while Send, DataAvailable,
// Statistics and the introspection queries may be called from any
// goroutine.
type Conn struct {
	id      string
	handler api.ConnectionDataHandler
	logger  *logging.Logger

	server string
	port   int

	// sendMu serializes outbound writes, recvMu serializes receive
	// attempts. Teardown must hold both; the paths never take the
	// other direction's guard, so send and receive proceed concurrently.
	sendMu sync.Mutex
	recvMu sync.Mutex

	sock     atomic.Int64
	state    atomic.Int32
	cancel   atomic.Bool
	bytesIn  atomic.Int64
	bytesOut atomic.Int64

	// buf is owned exclusively by the receive path.
	buf         []byte
	recvTimeout int

	notifier *notifier
}

// NewConn constructs a disconnected Conn for server:port. The hostname is
// normalized to its IDNA ASCII form once, here; a hostname that cannot be
// normalized leaves the server string empty, which makes Connect fail
// later rather than construction fail now. handler and logger may be nil.
func NewConn(handler api.ConnectionDataHandler, logger *logging.Logger, server string, port int, opts ...Option) *Conn {
	c := &Conn{
		id:          uuid.NewString(),
		handler:     handler,
		logger:      logger,
		port:        port,
		buf:         make([]byte, DefaultBufferSize),
		recvTimeout: DefaultRecvTimeout,
		notifier:    newNotifier(handler),
	}
	c.server, _ = prep.Idna(server)
	c.sock.Store(socket.InvalidFD)
	c.state.Store(int32(api.StateDisconnected))
	c.cancel.Store(true)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the connection's log-correlation identifier.
func (c *Conn) ID() string { return c.id }

// Server returns the normalized target hostname.
func (c *Conn) Server() string { return c.server }

// Port returns the target port.
func (c *Conn) Port() int { return c.port }

// State returns the coarse connection state.
func (c *Conn) State() api.ConnectionState {
	return api.ConnectionState(c.state.Load())
}

// Connect resolves the target and opens the socket via the resolver
// collaborator, transitioning the state to Connected and arming the
// receive loop. It is a no-op when already connected.
func (c *Conn) Connect() api.ConnError {
	if c.State() == api.StateConnected {
		return api.ConnNoError
	}
	c.state.Store(int32(api.StateConnecting))

	fd, cerr := resolver.Connect(c.server, c.port, c.logger)
	if cerr != api.ConnNoError {
		c.state.Store(int32(api.StateDisconnected))
		return cerr
	}

	c.sock.Store(int64(fd))
	c.cancel.Store(false)
	c.state.Store(int32(api.StateConnected))
	return api.ConnNoError
}

// Disconnect requests cooperative termination of the receive loop. It
// only signals intent: an in-flight receive attempt observes the flag
// after at most its own timeout. It does not close the socket; Cleanup
// does.
func (c *Conn) Disconnect() {
	c.recvMu.Lock()
	c.cancel.Store(true)
	c.recvMu.Unlock()
}

// Cleanup tears the connection down: close the socket through the
// resolver, reset both byte counters, mark the state Disconnected.
//
// Both guards are acquired without blocking; if either is held by an
// in-flight send or receive, Cleanup rolls back and returns false with
// no state changed. Blocking here could deadlock against a path stuck
// inside a syscall, so the caller retries later instead. Returns true
// when teardown ran.
func (c *Conn) Cleanup() bool {
	if !c.sendMu.TryLock() {
		return false
	}
	if !c.recvMu.TryLock() {
		c.sendMu.Unlock()
		return false
	}

	if fd := int(c.sock.Load()); fd >= 0 {
		resolver.CloseSocket(fd, c.logger)
		c.sock.Store(socket.InvalidFD)
	}
	c.state.Store(int32(api.StateDisconnected))
	c.cancel.Store(true)
	c.bytesIn.Store(0)
	c.bytesOut.Store(0)

	c.recvMu.Unlock()
	c.sendMu.Unlock()
	return true
}

// Statistics returns the cumulative byte counters since the last
// Cleanup. Each counter is read atomically but the pair is not captured
// under a guard, so a concurrent send or receive may make the two values
// reflect slightly different instants.
func (c *Conn) Statistics() (totalIn, totalOut int64) {
	return c.bytesIn.Load(), c.bytesOut.Load()
}

// LocalPort returns the locally bound port, or -1 when it cannot be
// determined. "Unknown" is a valid, silent outcome.
func (c *Conn) LocalPort() int {
	fd := int(c.sock.Load())
	if fd < 0 {
		return -1
	}
	_, port, err := socket.LocalAddr(fd)
	if err != nil {
		return -1
	}
	return port
}

// LocalInterface returns the numeric local interface address, or the
// empty string when it cannot be determined.
func (c *Conn) LocalInterface() string {
	fd := int(c.sock.Load())
	if fd < 0 {
		return ""
	}
	host, _, err := socket.LocalAddr(fd)
	if err != nil {
		return ""
	}
	return host
}
