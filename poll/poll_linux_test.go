//go:build linux
// +build linux

// File: poll/poll_linux_test.go

package poll

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/SilverCreekEntertainment/gloox/logging"
)

// capturingSink records every message it receives.
type capturingSink struct {
	mu       sync.Mutex
	messages []string
}

func (s *capturingSink) Log(level logging.Level, area logging.Area, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
}

func (s *capturingSink) joined() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.messages, "\n")
}

// pairedSockets returns both ends of a connected stream socket pair.
func pairedSockets(t *testing.T) (int, int) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	require.NoError(t, err)
	t.Cleanup(func() {
		unix.Close(fds[0])
		unix.Close(fds[1])
	})
	return fds[0], fds[1]
}

func TestDataAvailableReadable(t *testing.T) {
	a, b := pairedSockets(t)

	_, err := unix.Write(b, []byte("ping"))
	require.NoError(t, err)

	require.True(t, DataAvailable(a, 1000000, nil))
}

func TestDataAvailableTimesOut(t *testing.T) {
	a, _ := pairedSockets(t)

	const timeoutMicros = 50000
	start := time.Now()
	require.False(t, DataAvailable(a, timeoutMicros, nil))
	require.GreaterOrEqual(t, time.Since(start), 45*time.Millisecond)
}

func TestDataAvailableClosedPeer(t *testing.T) {
	a, b := pairedSockets(t)

	// A peer close counts as readiness: the read will observe EOF.
	require.NoError(t, unix.Close(b))
	require.True(t, DataAvailable(a, 1000000, nil))
}

func TestDataAvailableNoSocket(t *testing.T) {
	require.True(t, DataAvailable(-1, 1000, nil))
}

func TestDataAvailableBadDescriptor(t *testing.T) {
	sink := &capturingSink{}
	logger := logging.NewLogger()
	logger.AddSink(sink)

	// A descriptor that is not open fails registration; the failure is
	// logged and reported as not ready.
	require.False(t, DataAvailable(1<<20, 1000, logger))
	require.Contains(t, sink.joined(), "epoll_ctl() failed")
}
