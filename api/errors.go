// File: api/errors.go
//
// Connection-level error taxonomy shared by the transport core and its
// collaborators (resolver, poller).

package api

// ConnError describes the outcome of a connection-level operation.
type ConnError int

const (
	// ConnNoError indicates the operation completed without error.
	ConnNoError ConnError = iota

	// ConnNotConnected indicates no open socket backs the connection, or
	// a receive loop exited after cancellation without observing an error.
	ConnNotConnected

	// ConnIoError indicates an OS-level send or receive failure.
	ConnIoError

	// ConnStreamClosed indicates the peer closed the stream cleanly.
	ConnStreamClosed

	// ConnDNSError indicates the resolver could not resolve the target host.
	ConnDNSError

	// ConnConnectionRefused indicates no resolved address accepted the
	// connection attempt.
	ConnConnectionRefused
)

var connErrorNames = map[ConnError]string{
	ConnNoError:           "no error",
	ConnNotConnected:      "not connected",
	ConnIoError:           "i/o error",
	ConnStreamClosed:      "stream closed by peer",
	ConnDNSError:          "dns resolution failed",
	ConnConnectionRefused: "connection refused",
}

// String returns a human-readable name for the error code.
func (e ConnError) String() string {
	if name, ok := connErrorNames[e]; ok {
		return name
	}
	return "unknown connection error"
}
