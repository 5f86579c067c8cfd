// File: transport/recv.go

package transport

import (
	"github.com/SilverCreekEntertainment/gloox/api"
	"github.com/SilverCreekEntertainment/gloox/internal/socket"
	"github.com/SilverCreekEntertainment/gloox/poll"
)

// Receive drives the receive loop until cancellation or a fatal
// condition. It is a blocking call meant for a dedicated caller-owned
// goroutine. The loop repeats bounded single attempts, so after
// Disconnect it exits within at most one receive timeout.
//
// An exit caused purely by cancellation is reported as ConnNotConnected.
func (c *Conn) Receive() api.ConnError {
	if c.sock.Load() < 0 {
		return api.ConnNotConnected
	}

	err := api.ConnNoError
	for !c.cancel.Load() {
		err = c.Recv(c.recvTimeout)
		if err != api.ConnNoError {
			break
		}
	}
	if err == api.ConnNoError {
		return api.ConnNotConnected
	}
	return err
}

// DataAvailable reports whether a read on this connection would return
// data, an error or a close within timeoutMicros microseconds. With no
// open socket it returns true immediately so the error surfaces in the
// receive path instead of here. Callers multiplexing this connection
// with other work can use it to avoid committing to a blocking Recv.
func (c *Conn) DataAvailable(timeoutMicros int) bool {
	return poll.DataAvailable(int(c.sock.Load()), timeoutMicros, c.logger)
}

// Recv performs one bounded receive attempt: wait up to timeoutMicros for
// readability, then read once into the scratch buffer. Received bytes are
// counted and dispatched to the handler. A timeout with no data is not an
// error; ConnNoError tells the caller to try again.
func (c *Conn) Recv(timeoutMicros int) api.ConnError {
	c.recvMu.Lock()

	fd := int(c.sock.Load())
	if c.cancel.Load() || fd < 0 {
		c.recvMu.Unlock()
		return api.ConnNotConnected
	}

	if !poll.DataAvailable(fd, timeoutMicros, c.logger) {
		c.recvMu.Unlock()
		return api.ConnNoError
	}

	n, err := socket.Read(fd, c.buf)
	if n > 0 {
		c.bytesIn.Add(int64(n))
		// The dispatcher copies out of the scratch buffer before the
		// guard is released.
		c.notifier.postData(c.buf[:n])
	}
	c.recvMu.Unlock()

	if err != nil {
		return api.ConnIoError
	}
	if n == 0 {
		return api.ConnStreamClosed
	}
	return api.ConnNoError
}
