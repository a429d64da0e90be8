// FILE: state.go
package log

import (
	"fmt"
	"sync/atomic"
)

// WorkerState is the lifecycle stage of an asynchronous sink's background writer
type WorkerState int32

const (
	StateCreated    WorkerState = iota // queue and signals constructed
	StateRunning                       // draining loop active
	StateCancelling                    // stop requested, final drain in progress
	StateStopped                       // loop exited, file closed
)

func (s WorkerState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateCancelling:
		return "cancelling"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Stats is a snapshot of an asynchronous sink's counters
type Stats struct {
	State    WorkerState
	Enqueued uint64 // entries accepted into the queue
	Written  uint64 // entries appended to a file
	Failed   uint64 // entries lost to I/O errors
	Dropped  uint64 // entries rejected because the sink was not running
	Pending  int    // entries queued but not yet written
}

// workerState encapsulates the runtime state of the background writer
type workerState struct {
	stage atomic.Int32 // WorkerState

	enqueued atomic.Uint64
	written  atomic.Uint64
	failed   atomic.Uint64
	dropped  atomic.Uint64

	dropReported atomic.Bool // first post-shutdown drop has been reported
}

func (s *workerState) load() WorkerState {
	return WorkerState(s.stage.Load())
}

func (s *workerState) store(ws WorkerState) {
	s.stage.Store(int32(ws))
}

// transition moves from one stage to the next, reporting whether this call made the move
func (s *workerState) transition(from, to WorkerState) bool {
	return s.stage.CompareAndSwap(int32(from), int32(to))
}
