package log

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerStateString(t *testing.T) {
	assert.Equal(t, "created", StateCreated.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "cancelling", StateCancelling.String())
	assert.Equal(t, "stopped", StateStopped.String())
	assert.Equal(t, "state(9)", WorkerState(9).String())
}

// TestWorkerStateTransition verifies exactly one caller wins a contended transition
func TestWorkerStateTransition(t *testing.T) {
	var s workerState
	assert.Equal(t, StateCreated, s.load())

	s.store(StateRunning)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.transition(StateRunning, StateCancelling) {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, StateCancelling, s.load())
	assert.False(t, s.transition(StateRunning, StateStopped))
}

// stalledSink returns a running sink whose writer never answers
func stalledSink() *AsyncFileSink {
	s := &AsyncFileSink{
		queue:            newRecordQueue(),
		errOut:           &syncBuffer{},
		stopChan:         make(chan struct{}),
		flushRequestChan: make(chan chan struct{}),
		done:             make(chan struct{}),
	}
	s.state.store(StateRunning)
	return s
}

func TestAsyncFileSinkShutdownTimeout(t *testing.T) {
	s := stalledSink()
	s.queue.push(record{at: time.Now(), text: "stuck"})

	err := s.Shutdown(20 * time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not exit within timeout")
	assert.Contains(t, err.Error(), "1 entries pending")
	assert.Equal(t, StateCancelling, s.State())

	// The stop request was already made
	assert.NoError(t, s.Shutdown(20*time.Millisecond))
}

func TestAsyncFileSinkFlushTimeout(t *testing.T) {
	s := stalledSink()

	err := s.Flush(20 * time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send flush request")

	// Writer accepts the request but never confirms
	go func() { <-s.flushRequestChan }()
	err = s.Flush(200 * time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout waiting for flush confirmation")
}

func TestAsyncFileSinkFlushNotRunning(t *testing.T) {
	sink, _ := createTestAsyncSink(t, nil)
	require.NoError(t, sink.Shutdown())

	err := sink.Flush(time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file sink not running (stopped)")
}
