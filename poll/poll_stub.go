//go:build !linux
// +build !linux

// File: poll/poll_stub.go

package poll

import "github.com/SilverCreekEntertainment/gloox/logging"

func dataAvailable(fd int, timeoutMicros int, logger *logging.Logger) bool {
	if fd < 0 {
		return true
	}
	logger.Err(logging.AreaPoll, "readiness polling not supported on this platform")
	return false
}
