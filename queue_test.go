package log

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordQueueFIFO(t *testing.T) {
	q := newRecordQueue()
	assert.Nil(t, q.drain())

	for i := 0; i < 5; i++ {
		require.True(t, q.push(record{text: fmt.Sprint(i)}))
	}
	assert.Equal(t, 5, q.len())

	batch := q.drain()
	require.Len(t, batch, 5)
	for i, r := range batch {
		assert.Equal(t, fmt.Sprint(i), r.text)
	}
	assert.Zero(t, q.len())
}

func TestRecordQueueSignal(t *testing.T) {
	q := newRecordQueue()

	select {
	case <-q.ready():
		t.Fatal("signal without push")
	default:
	}

	// Many pushes coalesce into one pending wake-up
	q.push(record{text: "a"})
	q.push(record{text: "b"})

	select {
	case <-q.ready():
	case <-time.After(time.Second):
		t.Fatal("no signal after push")
	}

	select {
	case <-q.ready():
		t.Fatal("second signal for coalesced pushes")
	default:
	}
	assert.Len(t, q.drain(), 2)
}

func TestRecordQueueClose(t *testing.T) {
	q := newRecordQueue()
	q.push(record{text: "before"})
	q.close()

	assert.False(t, q.push(record{text: "after"}))
	batch := q.drain()
	require.Len(t, batch, 1)
	assert.Equal(t, "before", batch[0].text)
}

func TestRecordQueueConcurrentPush(t *testing.T) {
	q := newRecordQueue()

	const producers = 20
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := 0; m < perProducer; m++ {
				q.push(record{text: "x"})
			}
		}()
	}

	// Consumer drains concurrently
	total := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for running := true; running; {
		select {
		case <-q.ready():
			total += len(q.drain())
		case <-done:
			running = false
		}
	}
	total += len(q.drain())

	assert.Equal(t, producers*perProducer, total)
}
