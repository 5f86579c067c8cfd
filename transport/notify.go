// File: transport/notify.go

package transport

import (
	"sync"

	"github.com/eapache/queue"
	"github.com/valyala/bytebufferpool"

	"github.com/SilverCreekEntertainment/gloox/api"
)

// notification is one queued handler callback: a payload chunk when data
// is non-nil, a disconnect event otherwise.
type notification struct {
	data       *bytebufferpool.ByteBuffer
	disconnect api.ConnError
}

// notifier delivers handler callbacks in FIFO order on a drain goroutine
// started on demand and parked again once the queue empties. Callbacks
// therefore never run under the connection's send or receive guard, and
// a handler is free to call back into the connection.
type notifier struct {
	handler api.ConnectionDataHandler

	mu      sync.Mutex
	cond    *sync.Cond
	pending *queue.Queue
	running bool
}

func newNotifier(handler api.ConnectionDataHandler) *notifier {
	n := &notifier{
		handler: handler,
		pending: queue.New(),
	}
	n.cond = sync.NewCond(&n.mu)
	return n
}

// postData queues a copy of data for delivery via HandleReceivedData.
// The copy is taken into a pooled buffer before postData returns, so the
// caller may reuse the backing array immediately.
func (n *notifier) postData(data []byte) {
	if n.handler == nil {
		return
	}
	buf := bytebufferpool.Get()
	buf.Write(data)
	n.post(notification{data: buf})
}

// postDisconnect queues a HandleDisconnect callback.
func (n *notifier) postDisconnect(reason api.ConnError) {
	if n.handler == nil {
		return
	}
	n.post(notification{disconnect: reason})
}

func (n *notifier) post(ev notification) {
	n.mu.Lock()
	n.pending.Add(ev)
	if !n.running {
		n.running = true
		go n.drain()
	}
	n.mu.Unlock()
}

// drain delivers queued notifications until the queue is empty, then
// exits. At most one drain goroutine runs at a time, which preserves
// delivery order.
func (n *notifier) drain() {
	for {
		n.mu.Lock()
		if n.pending.Length() == 0 {
			n.running = false
			n.cond.Broadcast()
			n.mu.Unlock()
			return
		}
		ev := n.pending.Remove().(notification)
		n.mu.Unlock()

		if ev.data != nil {
			n.handler.HandleReceivedData(ev.data.B)
			bytebufferpool.Put(ev.data)
		} else {
			n.handler.HandleDisconnect(ev.disconnect)
		}
	}
}

// flush blocks until every queued notification has been delivered. Must
// not be called from inside a handler callback.
func (n *notifier) flush() {
	n.mu.Lock()
	for n.running || n.pending.Length() > 0 {
		n.cond.Wait()
	}
	n.mu.Unlock()
}
