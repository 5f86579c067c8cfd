// File: api/handler.go
//
// Consumer-side interface for connection events. The connection holds a
// non-owning reference to a handler and never closes over its lifetime.

package api

// ConnectionDataHandler consumes bytes and lifecycle events from a
// connection. Implementations are invoked from the connection's
// notification dispatcher, never while the connection holds its send or
// receive guard.
type ConnectionDataHandler interface {
	// HandleReceivedData is called with a chunk of received payload bytes.
	// The slice is only valid for the duration of the call; implementations
	// that retain the data must copy it.
	HandleReceivedData(data []byte)

	// HandleDisconnect is called when the connection is torn down due to a
	// fatal condition, with the classifying error code.
	HandleDisconnect(reason ConnError)
}
