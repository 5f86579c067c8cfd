// File: poll/poll.go
//
// Package poll answers one question: will a read on a descriptor return
// data (or an error, or a close) within a bounded wait? Each query
// acquires a short-lived readiness-multiplexing context and releases it
// on every exit path.

package poll

import "github.com/SilverCreekEntertainment/gloox/logging"

// DataAvailable reports whether fd is readable within timeoutMicros
// microseconds.
//
// A negative fd returns true immediately: the subsequent read is the
// place where "not connected" surfaces, not here. Failures of the polling
// facility itself are logged and reported as "not ready".
func DataAvailable(fd int, timeoutMicros int, logger *logging.Logger) bool {
	return dataAvailable(fd, timeoutMicros, logger)
}
