// FILE: processor.go
package log

import (
	"time"
)

// processRecords is the background writer loop. It owns the file target and
// exits only after the stop signal, once the queue is empty.
func (s *AsyncFileSink) processRecords() {
	defer close(s.done)

	flushTicker := time.NewTicker(s.flushInterval)
	defer flushTicker.Stop()

	// --- Main Loop ---
	for {
		select {
		case <-s.queue.ready():
			s.writeBatch(s.queue.drain())

		case confirmChan := <-s.flushRequestChan:
			s.handleFlushRequest(confirmChan)

		case <-flushTicker.C:
			s.syncFile()

		case <-s.stopChan:
			// Queue is closed; everything accepted is in it
			s.writeBatch(s.queue.drain())
			s.exitErr = s.target.close()
			if s.exitErr != nil {
				reportError(s.errOut, s.exitErr)
			}
			s.state.store(StateStopped)
			return
		}
	}
}

// writeBatch appends records in queue order. A failed append loses that record only.
func (s *AsyncFileSink) writeBatch(batch []record) {
	for _, r := range batch {
		if err := s.target.append(r.at, r.text); err != nil {
			s.state.failed.Add(1)
			reportError(s.errOut, err)
			continue
		}
		s.state.written.Add(1)
	}
}

// handleFlushRequest drains, syncs and confirms
func (s *AsyncFileSink) handleFlushRequest(confirmChan chan struct{}) {
	s.writeBatch(s.queue.drain())
	s.syncFile()
	close(confirmChan)
}

// syncFile syncs the current log file if anything was written since the last sync
func (s *AsyncFileSink) syncFile() {
	if err := s.target.sync(); err != nil {
		reportError(s.errOut, err)
	}
}
