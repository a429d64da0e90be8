// FILE: console.go
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
)

// ConsoleSink writes rendered entries to stdout or stderr, optionally colored by level
type ConsoleSink struct {
	emitter

	formatter *Formatter
	color     bool
	errOut    io.Writer

	mu  sync.Mutex
	out io.Writer
}

// NewConsoleSink creates a console sink for cfg.ConsoleTarget
func NewConsoleSink(cfg *Config) *ConsoleSink {
	var out io.Writer = os.Stdout
	if cfg.ConsoleTarget == TargetStderr {
		out = os.Stderr
	}
	return newConsoleSink(cfg, out, errorStream, time.Now)
}

func newConsoleSink(cfg *Config, out, errOut io.Writer, now func() time.Time) *ConsoleSink {
	s := &ConsoleSink{
		formatter: NewFormatter(cfg),
		color:     cfg.ConsoleColor,
		errOut:    errOut,
		out:       out,
	}
	s.emitter = emitter{now: now, write: s.Write}
	return s
}

// levelColor maps a level to its display color
func levelColor(level Level) text.Color {
	switch level {
	case LevelDebug:
		return text.FgCyan
	case LevelInfo:
		return text.FgWhite
	case LevelWarn:
		return text.FgYellow
	case LevelError:
		return text.FgRed
	default:
		return text.FgHiWhite
	}
}

// Write renders entry and prints it as one line
func (s *ConsoleSink) Write(entry Entry) {
	line, ok := s.formatter.Render(entry)
	if !ok {
		return
	}
	if s.color {
		// Sprint appends the reset sequence
		line = levelColor(entry.Level()).Sprint(line)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.out, line+"\n"); err != nil {
		internalLog(s.errOut, "console write failed: %v", err)
	}
}

// Close is a no-op; the standard streams stay open
func (s *ConsoleSink) Close() error {
	return nil
}
