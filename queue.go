// FILE: queue.go
package log

import (
	"sync"
	"time"
)

// record is a rendered entry waiting in the queue
type record struct {
	at   time.Time // entry timestamp, selects the daily file
	text string
}

// recordQueue is an unbounded multi-producer single-consumer FIFO.
// Producers never block; the consumer waits on ready().
type recordQueue struct {
	mu     sync.Mutex
	items  []record
	closed bool
	signal chan struct{} // 1-slot, holds a pending wake-up
}

func newRecordQueue() *recordQueue {
	return &recordQueue{
		signal: make(chan struct{}, 1),
	}
}

// push appends r and wakes the consumer. It reports false once the queue is closed.
func (q *recordQueue) push(r record) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, r)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default: // wake-up already pending
	}
	return true
}

// drain removes and returns everything queued, oldest first
func (q *recordQueue) drain() []record {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	batch := q.items
	q.items = nil
	return batch
}

// close rejects further pushes; queued items stay available to drain
func (q *recordQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}

func (q *recordQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// ready fires after at least one push since the last receive
func (q *recordQueue) ready() <-chan struct{} {
	return q.signal
}
