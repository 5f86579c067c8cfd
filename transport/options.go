// File: transport/options.go

package transport

// Option customizes a Conn at construction time.
type Option func(*Conn)

// WithBufferSize overrides the receive scratch buffer capacity.
func WithBufferSize(n int) Option {
	return func(c *Conn) {
		if n > 0 {
			c.buf = make([]byte, n)
		}
	}
}

// WithRecvTimeout overrides the per-attempt receive timeout, in
// microseconds. Shorter timeouts tighten the worst-case latency of
// cooperative cancellation.
func WithRecvTimeout(micros int) Option {
	return func(c *Conn) {
		if micros > 0 {
			c.recvTimeout = micros
		}
	}
}
