// File: api/state.go

package api

// ConnectionState is the coarse lifecycle state of a connection.
type ConnectionState int32

const (
	// StateDisconnected is both the initial and the post-teardown state.
	StateDisconnected ConnectionState = iota

	// StateConnecting means a resolver/connector is populating the socket.
	StateConnecting

	// StateConnected means the socket is open and usable.
	StateConnected
)

// String returns a human-readable name for the state.
func (s ConnectionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}
