package log

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
)

func TestLevelColor(t *testing.T) {
	tests := []struct {
		level Level
		color text.Color
	}{
		{LevelDebug, text.FgCyan},
		{LevelInfo, text.FgWhite},
		{LevelWarn, text.FgYellow},
		{LevelError, text.FgRed},
		{Level(99), text.FgHiWhite},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.color, levelColor(tt.level))
		})
	}
}

func TestConsoleSinkPlain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConsoleColor = false
	cfg.Level = LevelInfo

	var out bytes.Buffer
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	sink := newConsoleSink(cfg, &out, &bytes.Buffer{}, func() time.Time { return ts })

	sink.Log("hidden", LevelDebug, CategoryGeneral, "")
	sink.Log("shown", LevelInfo, CategoryUI, "")

	assert.Equal(t, "[02.01.2024 03:04:05] [INFO ] [UI] shown\n", out.String())
	assert.NoError(t, sink.Close())
}

func TestConsoleSinkColor(t *testing.T) {
	// Color output is otherwise subject to NO_COLOR and terminal detection
	text.EnableColors()

	cfg := DefaultConfig()
	cfg.ConsoleColor = true
	cfg.Level = LevelDebug

	var out bytes.Buffer
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	sink := newConsoleSink(cfg, &out, &bytes.Buffer{}, func() time.Time { return ts })

	sink.Log("careful", LevelWarn, CategoryNone, "")

	plain := "[02.01.2024 03:04:05] [WARN ] [] careful"
	assert.Equal(t, text.FgYellow.Sprint(plain)+"\n", out.String())
	assert.True(t, strings.HasPrefix(out.String(), "\x1b[33m"+plain), "line starts with the yellow sequence")
	assert.True(t, strings.HasSuffix(out.String(), plain+"\x1b[0m\n"), "line ends with the reset sequence")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func TestConsoleSinkWriteFailure(t *testing.T) {
	cfg := DefaultConfig()
	var errOut bytes.Buffer
	sink := newConsoleSink(cfg, failingWriter{}, &errOut, time.Now)

	assert.NotPanics(t, func() {
		sink.Log("lost", LevelError, CategoryGeneral, "")
	})
	assert.Equal(t, "log: console write failed: stdout closed\n", errOut.String())
}

func TestNewConsoleSinkTarget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConsoleTarget = TargetStderr
	assert.Equal(t, os.Stderr, NewConsoleSink(cfg).out)

	cfg.ConsoleTarget = TargetStdout
	assert.Equal(t, os.Stdout, NewConsoleSink(cfg).out)
}
