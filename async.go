// FILE: async.go
package log

import (
	"io"
	"sync"
	"time"
)

// AsyncFileSink renders entries on the calling goroutine and hands them to a
// single background writer through an unbounded queue. Log calls never wait for file I/O.
type AsyncFileSink struct {
	emitter

	formatter *Formatter
	target    *fileTarget // touched only by the worker once started
	queue     *recordQueue
	state     workerState
	errOut    io.Writer

	flushInterval    time.Duration
	stopChan         chan struct{}
	flushRequestChan chan chan struct{}
	flushMutex       sync.Mutex // Protect concurrent Flush calls
	done             chan struct{}
	exitErr          error // set by the worker before done is closed
}

// NewAsyncFileSink prepares the log file and starts the background writer
func NewAsyncFileSink(cfg *Config) (*AsyncFileSink, error) {
	return newAsyncFileSink(cfg, errorStream, time.Now)
}

func newAsyncFileSink(cfg *Config, errOut io.Writer, now func() time.Time) (*AsyncFileSink, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()

	target, err := newFileTarget(cfg, now())
	if err != nil {
		return nil, err
	}

	s := &AsyncFileSink{
		formatter:        NewFormatter(cfg),
		target:           target,
		queue:            newRecordQueue(),
		errOut:           errOut,
		flushInterval:    time.Duration(cfg.FlushIntervalMs) * time.Millisecond,
		stopChan:         make(chan struct{}),
		flushRequestChan: make(chan chan struct{}),
		done:             make(chan struct{}),
	}
	s.emitter = emitter{now: now, write: s.Write}

	s.state.store(StateRunning)
	go s.processRecords()

	return s, nil
}

// Write filters and renders entry, then queues it for the background writer
func (s *AsyncFileSink) Write(entry Entry) {
	text, ok := s.formatter.Render(entry)
	if !ok {
		return
	}

	if s.state.load() != StateRunning || !s.queue.push(record{at: entry.Timestamp(), text: text}) {
		s.drop()
		return
	}
	s.state.enqueued.Add(1)
}

// drop counts an entry refused after shutdown and reports the first one
func (s *AsyncFileSink) drop() {
	s.state.dropped.Add(1)
	if s.state.dropReported.CompareAndSwap(false, true) {
		internalLog(s.errOut, "entry dropped, file sink is %s (further drops are counted, not reported)", s.state.load())
	}
}

// Flush asks the writer to drain the queue and sync the file, waiting up to timeout
func (s *AsyncFileSink) Flush(timeout time.Duration) error {
	s.flushMutex.Lock()
	defer s.flushMutex.Unlock()

	if s.state.load() != StateRunning {
		return fmtErrorf("file sink not running (%s)", s.state.load())
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	// Create a channel to wait for confirmation from the worker
	confirmChan := make(chan struct{})

	select {
	case s.flushRequestChan <- confirmChan:
	case <-s.done:
		// Final drain already synced everything accepted
		return nil
	case <-timer.C:
		return fmtErrorf("failed to send flush request to writer within %v", timeout)
	}

	select {
	case <-confirmChan:
		return nil
	case <-s.done:
		return nil
	case <-timer.C:
		return fmtErrorf("timeout waiting for flush confirmation (%v)", timeout)
	}
}

// Shutdown stops accepting entries, waits for the writer to drain the queue and
// close the file. With a timeout, an error is returned if the writer has not exited in time.
// Only the first call does anything; later calls return nil.
func (s *AsyncFileSink) Shutdown(timeout ...time.Duration) error {
	if !s.state.transition(StateRunning, StateCancelling) {
		return nil
	}

	s.queue.close()
	close(s.stopChan)

	if len(timeout) == 0 || timeout[0] <= 0 {
		<-s.done
		return s.exitErr
	}

	timer := time.NewTimer(timeout[0])
	defer timer.Stop()

	select {
	case <-s.done:
		return s.exitErr
	case <-timer.C:
		return fmtErrorf("file writer did not exit within timeout (%v), %d entries pending", timeout[0], s.queue.len())
	}
}

// Close waits for the queue to drain and releases the file
func (s *AsyncFileSink) Close() error {
	return s.Shutdown()
}

// State returns the writer's lifecycle stage
func (s *AsyncFileSink) State() WorkerState {
	return s.state.load()
}

// Stats returns a snapshot of the sink counters
func (s *AsyncFileSink) Stats() Stats {
	return Stats{
		State:    s.state.load(),
		Enqueued: s.state.enqueued.Load(),
		Written:  s.state.written.Load(),
		Failed:   s.state.failed.Load(),
		Dropped:  s.state.dropped.Load(),
		Pending:  s.queue.len(),
	}
}

// Path returns the file most recently written to
func (s *AsyncFileSink) Path() string {
	return s.target.Path()
}
