// FILE: lixenwraith/simplelog/logger.go
package log

import (
	"io"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Logger fans entries out to the sinks selected by its configuration.
// It is itself a Sink, so loggers can be nested.
type Logger struct {
	emitter

	config    *Config
	formatter *Formatter
	sinks     []Sink
	file      Sink // nil when file output is disabled

	errOut         io.Writer
	shutdownCalled atomic.Bool
	dropped        atomic.Uint64
	dropReported   atomic.Bool
}

// shutdowner is implemented by sinks whose close can be bounded by a timeout
type shutdowner interface {
	Shutdown(timeout ...time.Duration) error
}

// NewLogger creates the console and file sinks enabled in cfg.
// The configuration is validated and copied; later changes to cfg have no effect.
func NewLogger(cfg *Config) (*Logger, error) {
	return newLogger(cfg, nil, time.Now)
}

// newLogger allows tests to capture console output and control the clock.
// A nil console writer selects stdout or stderr from the configuration.
func newLogger(cfg *Config, console io.Writer, now func() time.Time) (*Logger, error) {
	if cfg == nil {
		return nil, fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmtErrorf("invalid configuration: %w", err)
	}
	cfg = cfg.Clone()

	l := &Logger{
		config:    cfg,
		formatter: NewFormatter(cfg),
		errOut:    errorStream,
	}
	l.emitter = emitter{now: now, write: l.Write}

	if cfg.EnableConsole {
		if console == nil {
			l.sinks = append(l.sinks, NewConsoleSink(cfg))
		} else {
			l.sinks = append(l.sinks, newConsoleSink(cfg, console, errorStream, now))
		}
	}

	if cfg.EnableFile {
		var (
			file Sink
			err  error
		)
		if cfg.Async {
			file, err = newAsyncFileSink(cfg, errorStream, now)
		} else {
			file, err = newFileSink(cfg, errorStream, now)
		}
		if err != nil {
			return nil, err
		}
		l.file = file
		l.sinks = append(l.sinks, file)
	}

	return l, nil
}

// Write passes entry to every sink. After Shutdown entries are dropped and counted.
func (l *Logger) Write(entry Entry) {
	if l.shutdownCalled.Load() {
		if l.Enabled(entry.Level()) {
			l.drop()
		}
		return
	}
	for _, s := range l.sinks {
		s.Write(entry)
	}
}

// drop counts an entry refused after shutdown and reports the first one
func (l *Logger) drop() {
	l.dropped.Add(1)
	if l.dropReported.CompareAndSwap(false, true) {
		internalLog(l.errOut, "entry dropped, logger is shut down (further drops are counted, not reported)")
	}
}

// Enabled reports whether entries at level pass the configured minimum level
func (l *Logger) Enabled(level Level) bool {
	return l.formatter.Enabled(level)
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string) {
	l.Log(message, LevelDebug, CategoryGeneral, "")
}

// Info logs a message at info level
func (l *Logger) Info(message string) {
	l.Log(message, LevelInfo, CategoryGeneral, "")
}

// Warn logs a message at warning level
func (l *Logger) Warn(message string) {
	l.Log(message, LevelWarn, CategoryGeneral, "")
}

// Error logs a message at error level
func (l *Logger) Error(message string) {
	l.Log(message, LevelError, CategoryGeneral, "")
}

// Flush waits for buffering sinks to write and sync their pending entries
func (l *Logger) Flush(timeout time.Duration) error {
	var err error
	for _, s := range l.sinks {
		if f, ok := s.(Flusher); ok {
			err = combineErrors(err, f.Flush(timeout))
		}
	}
	return err
}

// Shutdown closes all sinks concurrently. The optional timeout bounds the wait for
// asynchronous sinks. Only the first call does anything; later calls return nil.
func (l *Logger) Shutdown(timeout ...time.Duration) error {
	if !l.shutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	errs := make([]error, len(l.sinks))
	var g errgroup.Group
	for i, s := range l.sinks {
		g.Go(func() error {
			if sd, ok := s.(shutdowner); ok {
				errs[i] = sd.Shutdown(timeout...)
			} else {
				errs[i] = s.Close()
			}
			return nil
		})
	}
	_ = g.Wait()

	var finalErr error
	for _, err := range errs {
		finalErr = combineErrors(finalErr, err)
	}
	return finalErr
}

// Close is Shutdown without a timeout
func (l *Logger) Close() error {
	return l.Shutdown()
}

// GetConfig returns a copy of the configuration the logger was built with
func (l *Logger) GetConfig() *Config {
	return l.config.Clone()
}

// FilePath returns the current log file, or "" when file output is disabled
func (l *Logger) FilePath() string {
	switch f := l.file.(type) {
	case *AsyncFileSink:
		return f.Path()
	case *FileSink:
		return f.Path()
	default:
		return ""
	}
}

// Stats returns the asynchronous file sink's counters; ok is false when there is none.
// Dropped includes entries the logger refused after Shutdown.
func (l *Logger) Stats() (stats Stats, ok bool) {
	if f, isAsync := l.file.(*AsyncFileSink); isAsync {
		stats = f.Stats()
		stats.Dropped += l.dropped.Load()
		return stats, true
	}
	return Stats{}, false
}
