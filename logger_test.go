// FILE: lixenwraith/simplelog/logger_test.go
package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestLogger creates logger in temp directory
func createTestLogger(t testing.TB) (*Logger, string) {
	t.Helper()
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.EnableConsole = false
	cfg.EnableFile = true
	cfg.Directory = tmpDir
	cfg.FlushIntervalMs = 10

	logger, err := NewLogger(cfg)
	require.NoError(t, err)

	return logger, tmpDir
}

// TestNewLogger verifies the sinks selected by configuration
func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		sinks     int
		fileType  any
		wantStats bool
	}{
		{"async file only", func(c *Config) {}, 1, &AsyncFileSink{}, true},
		{"sync file only", func(c *Config) { c.Async = false }, 1, &FileSink{}, false},
		{"console and file", func(c *Config) { c.EnableConsole = true }, 2, &AsyncFileSink{}, true},
		{"console only", func(c *Config) { c.EnableConsole = true; c.EnableFile = false }, 1, nil, false},
		{"nothing", func(c *Config) { c.EnableFile = false }, 0, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.modify(cfg)

			logger, err := newLogger(cfg, &bytes.Buffer{}, time.Now)
			require.NoError(t, err)
			defer logger.Shutdown()

			assert.Len(t, logger.sinks, tt.sinks)
			if tt.fileType == nil {
				assert.Nil(t, logger.file)
				assert.Empty(t, logger.FilePath())
			} else {
				assert.IsType(t, tt.fileType, logger.file)
				assert.Equal(t, filepath.Join(cfg.Directory, "log.txt"), logger.FilePath())
			}
			_, ok := logger.Stats()
			assert.Equal(t, tt.wantStats, ok)
		})
	}
}

func TestNewLoggerInvalidConfig(t *testing.T) {
	_, err := NewLogger(nil)
	assert.ErrorContains(t, err, "configuration cannot be nil")

	cfg := testConfig(t)
	cfg.ConsoleTarget = "printer"
	_, err = NewLogger(cfg)
	assert.ErrorContains(t, err, "invalid configuration")
}

// TestLoggerConfigIsCopied verifies later changes to the caller's config have no effect
func TestLoggerConfigIsCopied(t *testing.T) {
	cfg := testConfig(t)
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	defer logger.Shutdown()

	cfg.Level = LevelError
	assert.Equal(t, LevelInfo, logger.GetConfig().Level)

	got := logger.GetConfig()
	got.Name = "changed"
	assert.Equal(t, "log", logger.GetConfig().Name)
}

// TestLoggerFanOut verifies one call reaches both console and file
func TestLoggerFanOut(t *testing.T) {
	cfg := testConfig(t)
	cfg.EnableConsole = true
	cfg.ConsoleColor = false

	var console bytes.Buffer
	ts := time.Date(2024, 7, 8, 9, 10, 11, 0, time.Local)
	logger, err := newLogger(cfg, &console, func() time.Time { return ts })
	require.NoError(t, err)

	logger.Info("started")
	logger.Debug("hidden")
	logger.Log("custom", LevelWarn, CategoryNone, "worker")
	require.NoError(t, logger.Shutdown())

	expected := []string{
		"[08.07.2024 09:10:11] [INFO ] [GENERAL] started",
		"[08.07.2024 09:10:11] [WARN ] [worker] custom",
	}
	assert.Equal(t, strings.Join(expected, "\n")+"\n", console.String())
	assert.Equal(t, expected, readLines(t, logger.FilePath()))
}

func TestLoggerLevelHelpers(t *testing.T) {
	cfg := testConfig(t)
	cfg.Level = LevelDebug
	logger, err := NewLogger(cfg)
	require.NoError(t, err)

	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")
	require.NoError(t, logger.Shutdown())

	lines := readLines(t, logger.FilePath())
	require.Len(t, lines, 4)

	levels := []Level{LevelDebug, LevelInfo, LevelWarn, LevelError}
	for i, line := range lines {
		p, err := ParseLine(line)
		require.NoError(t, err)
		assert.Equal(t, levels[i], p.Level)
		assert.Equal(t, CategoryGeneral, p.Category)
	}
}

func TestLoggerEnabled(t *testing.T) {
	logger, _ := createTestLogger(t)
	defer logger.Shutdown()

	assert.False(t, logger.Enabled(LevelDebug))
	assert.True(t, logger.Enabled(LevelInfo))
	assert.True(t, logger.Enabled(LevelError))
}

func TestLoggerFlush(t *testing.T) {
	logger, _ := createTestLogger(t)
	defer logger.Shutdown()

	logger.Info("flush me")
	require.NoError(t, logger.Flush(time.Second))

	assert.Equal(t, []string{"flush me"}, messages(t, readLines(t, logger.FilePath())))
	stats, ok := logger.Stats()
	require.True(t, ok)
	assert.Equal(t, uint64(1), stats.Written)
}

// TestLoggerShutdown covers idempotency and post-shutdown behavior
func TestLoggerShutdown(t *testing.T) {
	logger, _ := createTestLogger(t)

	logger.Info("before")

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, logger.Shutdown(time.Second))
		}()
	}
	wg.Wait()
	assert.NoError(t, logger.Close())

	assert.NotPanics(t, func() {
		logger.Info("after")
		logger.LogError(errors.New("after"), LevelError, CategoryGeneral, "")
	})
	assert.Error(t, logger.Flush(100*time.Millisecond))

	stats, ok := logger.Stats()
	require.True(t, ok)
	assert.Equal(t, StateStopped, stats.State)
	assert.Equal(t, uint64(2), stats.Dropped)
	assert.Equal(t, []string{"before"}, messages(t, readLines(t, logger.FilePath())))
}

// TestLoggerDropsAfterShutdown verifies no sink, console included, sees entries after Shutdown
func TestLoggerDropsAfterShutdown(t *testing.T) {
	cfg := testConfig(t)
	cfg.EnableConsole = true
	cfg.ConsoleColor = false

	var console, errOut bytes.Buffer
	logger, err := newLogger(cfg, &console, time.Now)
	require.NoError(t, err)
	logger.errOut = &errOut

	logger.Info("before")
	require.NoError(t, logger.Shutdown())
	printed := console.String()

	logger.Info("after")
	logger.Warn("after again")
	logger.Debug("filtered, not counted")

	assert.Equal(t, printed, console.String(), "console must not receive entries after shutdown")
	assert.Equal(t, []string{"before"}, messages(t, readLines(t, logger.FilePath())))

	stats, ok := logger.Stats()
	require.True(t, ok)
	assert.Equal(t, uint64(2), stats.Dropped)
	assert.Equal(t, 1, strings.Count(errOut.String(), "log: entry dropped, logger is shut down"))
}

func TestLoggerOverwriteOnStart(t *testing.T) {
	cfg := testConfig(t)
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	logger.Info("first run")
	require.NoError(t, logger.Shutdown())

	cfg.OverwriteOnStart = true
	logger, err = NewLogger(cfg)
	require.NoError(t, err)
	logger.Info("second run")
	require.NoError(t, logger.Shutdown())

	assert.Equal(t, []string{"second run"}, messages(t, readLines(t, logger.FilePath())))
}

// TestLoggerNesting verifies a Logger can be used as another logger's sink
func TestLoggerNesting(t *testing.T) {
	inner, _ := createTestLogger(t)

	var outer Sink = inner
	outer.Write(NewEntry("nested", LevelWarn, CategoryAuth, ""))
	require.NoError(t, outer.Close())

	lines := readLines(t, inner.FilePath())
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[WARN ] [AUTH] nested")
}

func TestNewLoggerFileSetupFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	cfg := testConfig(t)
	cfg.Directory = filepath.Join(blocker, "logs")
	_, err := NewLogger(cfg)
	assert.ErrorContains(t, err, "failed to create log directory")
}
