// File: transport/send.go

package transport

import (
	"fmt"

	"github.com/SilverCreekEntertainment/gloox/api"
	"github.com/SilverCreekEntertainment/gloox/internal/socket"
	"github.com/SilverCreekEntertainment/gloox/logging"
)

// Send writes data to the socket under the send guard, looping over
// partial writes until everything is on the wire or a write fails hard.
// Empty input and a closed connection both fail with no side effects.
//
// The outbound counter advances by the full requested length even when
// the loop fails partway; callers wanting exact on-wire accounting must
// not rely on it after a failed Send.
//
// A fatal write error is reported twice: false to the caller, and a
// ConnIoError disconnect notification dispatched to the handler outside
// the guard.
func (c *Conn) Send(data []byte) bool {
	c.sendMu.Lock()

	fd := int(c.sock.Load())
	if len(data) == 0 || fd < 0 {
		c.sendMu.Unlock()
		return false
	}

	var sendErr error
	for sent := 0; sent < len(data); {
		n, err := socket.Write(fd, data[sent:])
		if err != nil {
			sendErr = err
			break
		}
		sent += n
	}
	c.bytesOut.Add(int64(len(data)))

	c.sendMu.Unlock()

	if sendErr != nil {
		c.logger.Err(logging.AreaConnection,
			fmt.Sprintf("conn %s: send() failed: %v", c.id, sendErr))
		c.notifier.postDisconnect(api.ConnIoError)
		return false
	}
	return true
}
