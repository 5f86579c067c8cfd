//go:build linux
// +build linux

// File: poll/poll_linux.go
//
// Linux epoll(7) implementation. The epoll instance is created per call
// and closed before returning, on every path.

package poll

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/SilverCreekEntertainment/gloox/logging"
)

func dataAvailable(fd int, timeoutMicros int, logger *logging.Logger) bool {
	if fd < 0 {
		// Let the next read report the closed descriptor.
		return true
	}

	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		logger.Err(logging.AreaPoll, fmt.Sprintf("epoll_create1() failed: %v", err))
		return false
	}
	defer unix.Close(epfd)

	ev := unix.EpollEvent{
		Events: unix.EPOLLIN,
		Fd:     int32(fd),
	}
	if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		logger.Err(logging.AreaPoll, fmt.Sprintf("epoll_ctl() failed: %v", err))
		return false
	}

	events := make([]unix.EpollEvent, 1)
	for {
		n, err := unix.EpollWait(epfd, events, timeoutMicros/1000)
		if err == unix.EINTR {
			continue
		}
		return err == nil && n > 0
	}
}
