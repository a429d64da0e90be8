package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFileSink(t *testing.T, modify func(*Config)) (*FileSink, *syncBuffer) {
	t.Helper()
	cfg := testConfig(t)
	if modify != nil {
		modify(cfg)
	}
	errOut := &syncBuffer{}
	sink, err := newFileSink(cfg, errOut, time.Now)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sink.Close() })
	return sink, errOut
}

// TestFileSinkWritesImmediately verifies entries are on disk when Log returns
func TestFileSinkWritesImmediately(t *testing.T) {
	sink, _ := createTestFileSink(t, nil)

	sink.Log("first", LevelInfo, CategoryGeneral, "")
	assert.Equal(t, []string{"first"}, messages(t, readLines(t, sink.Path())))

	sink.Log("second", LevelWarn, CategoryNone, "jobs")
	lines := readLines(t, sink.Path())
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "[WARN ] [jobs] second")
}

func TestFileSinkFilter(t *testing.T) {
	sink, _ := createTestFileSink(t, func(c *Config) { c.Level = LevelError })

	sink.Log("quiet", LevelWarn, CategoryGeneral, "")
	sink.Log("loud", LevelError, CategoryGeneral, "")
	require.NoError(t, sink.Close())

	assert.Equal(t, []string{"loud"}, messages(t, readLines(t, sink.Path())))
}

// TestFileSinkConcurrentWrites checks writes from many goroutines produce whole lines
func TestFileSinkConcurrentWrites(t *testing.T) {
	sink, _ := createTestFileSink(t, nil)

	const producers = 8
	const perProducer = 50
	payload := strings.Repeat("x", 512)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for m := 0; m < perProducer; m++ {
				sink.Log(fmt.Sprintf("%d-%d %s", id, m, payload), LevelInfo, CategoryGeneral, "")
			}
		}(p)
	}
	wg.Wait()
	require.NoError(t, sink.Close())

	lines := readLines(t, sink.Path())
	require.Len(t, lines, producers*perProducer)
	for _, line := range lines {
		p, err := ParseLine(line)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(p.Message, payload))
	}
}

func TestFileSinkRolling(t *testing.T) {
	sink, _ := createTestFileSink(t, func(c *Config) { c.RollingLog = true })

	day1 := time.Date(2025, 12, 31, 23, 0, 0, 0, time.Local)
	day2 := time.Date(2026, 1, 1, 1, 0, 0, 0, time.Local)
	sink.Write(NewEntryAt(day1, "old year", LevelInfo, CategoryGeneral, ""))
	sink.Write(NewEntryAt(day2, "new year", LevelInfo, CategoryGeneral, ""))
	require.NoError(t, sink.Close())

	dir := filepath.Dir(sink.Path())
	assert.Equal(t, []string{"old year"}, messages(t, readLines(t, filepath.Join(dir, "log_31-12-2025.txt"))))
	assert.Equal(t, []string{"new year"}, messages(t, readLines(t, filepath.Join(dir, "log_01-01-2026.txt"))))
}

func TestFileSinkWriteFailureIsReported(t *testing.T) {
	sink, errOut := createTestFileSink(t, func(c *Config) { c.RollingLog = true })
	dir := filepath.Dir(sink.Path())

	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, os.WriteFile(dir, []byte("blocker"), 0644))

	assert.NotPanics(t, func() {
		sink.Write(NewEntryAt(time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local), "lost", LevelInfo, CategoryGeneral, ""))
	})
	assert.Contains(t, errOut.String(), "log: failed to create log directory")

	// Sink stays usable once the path is writable again
	require.NoError(t, os.Remove(dir))
	sink.Write(NewEntryAt(time.Date(2030, 1, 2, 0, 0, 0, 0, time.Local), "kept", LevelInfo, CategoryGeneral, ""))
	assert.Equal(t, []string{"kept"}, messages(t, readLines(t, filepath.Join(dir, "log_02-01-2030.txt"))))
}

func TestFileSinkClose(t *testing.T) {
	sink, errOut := createTestFileSink(t, nil)

	sink.Log("kept", LevelInfo, CategoryGeneral, "")
	require.NoError(t, sink.Flush(time.Second))
	require.NoError(t, sink.Close())
	assert.NoError(t, sink.Close(), "second close is a no-op")

	sink.Log("dropped 1", LevelInfo, CategoryGeneral, "")
	sink.Log("dropped 2", LevelInfo, CategoryGeneral, "")
	assert.Equal(t, 1, strings.Count(errOut.String(), "entry dropped"))
	assert.Error(t, sink.Flush(time.Second))

	assert.Equal(t, []string{"kept"}, messages(t, readLines(t, sink.Path())))
}

func TestNewFileSinkErrors(t *testing.T) {
	cfg := testConfig(t)
	cfg.Name = ""
	_, err := NewFileSink(cfg)
	assert.Error(t, err)

	cfg = testConfig(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	cfg.Directory = filepath.Join(blocker, "sub")
	_, err = NewFileSink(cfg)
	assert.ErrorContains(t, err, "failed to create log directory")
}
