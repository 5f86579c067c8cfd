// File: logging/sink_stdout.go

package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// writerSink formats messages with a timestamp, level and area prefix and
// writes them line-by-line to an io.Writer.
type writerSink struct {
	mu  sync.Mutex
	out io.Writer
}

// NewStdoutSink returns a sink writing to standard output.
func NewStdoutSink() LogSink {
	return &writerSink{out: os.Stdout}
}

// NewWriterSink returns a sink writing to w.
func NewWriterSink(w io.Writer) LogSink {
	return &writerSink{out: w}
}

// Log implements LogSink.
func (s *writerSink) Log(level Level, area Area, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, "[%s][%s][%s] %s\n",
		time.Now().Format("2006-01-02 15:04:05.000"), level, area, message)
}
