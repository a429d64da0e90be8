// FILE: file.go
package log

import (
	"io"
	"sync"
	"time"
)

// FileSink appends entries to the log file on the calling goroutine.
// Concurrent writes are serialized by the sink's mutex.
type FileSink struct {
	emitter

	formatter *Formatter
	errOut    io.Writer

	mu           sync.Mutex
	target       *fileTarget
	closed       bool
	dropReported bool
}

// NewFileSink prepares the log directory and file
func NewFileSink(cfg *Config) (*FileSink, error) {
	return newFileSink(cfg, errorStream, time.Now)
}

func newFileSink(cfg *Config, errOut io.Writer, now func() time.Time) (*FileSink, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	target, err := newFileTarget(cfg, now())
	if err != nil {
		return nil, err
	}

	s := &FileSink{
		formatter: NewFormatter(cfg),
		errOut:    errOut,
		target:    target,
	}
	s.emitter = emitter{now: now, write: s.Write}
	return s, nil
}

// Write filters and renders entry and appends it to the file
func (s *FileSink) Write(entry Entry) {
	text, ok := s.formatter.Render(entry)
	if !ok || text == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		if !s.dropReported {
			s.dropReported = true
			internalLog(s.errOut, "entry dropped, file sink is closed (further drops are not reported)")
		}
		return
	}

	if err := s.target.append(entry.Timestamp(), text); err != nil {
		reportError(s.errOut, err)
	}
}

// Flush syncs the file; timeout is not used since writes are already complete
func (s *FileSink) Flush(_ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmtErrorf("file sink closed")
	}
	return s.target.sync()
}

// Close syncs and closes the file. Later calls return nil.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.target.close()
}

// Path returns the file most recently written to
func (s *FileSink) Path() string {
	return s.target.Path()
}
