// FILE: storage.go
package log

import (
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// fileTarget owns one open log file and resolves which file an entry belongs to.
// It is not safe for concurrent use; callers serialize access.
type fileTarget struct {
	dir     string
	name    string
	ext     string
	rolling bool

	file  *os.File
	path  atomic.Value // string, readable from any goroutine
	dirty bool         // bytes written since the last sync
}

// newFileTarget prepares the log directory and opens the file for the current time.
// Calling it repeatedly with the same config is harmless.
func newFileTarget(cfg *Config, now time.Time) (*fileTarget, error) {
	t := &fileTarget{
		dir:     cfg.Directory,
		name:    cfg.Name,
		ext:     cfg.fileExtension(),
		rolling: cfg.RollingLog,
	}

	if err := os.MkdirAll(t.dir, 0755); err != nil {
		return nil, fmtErrorf("failed to create log directory '%s': %w", t.dir, err)
	}

	if !t.rolling && cfg.OverwriteOnStart {
		if err := truncateIfExists(t.pathFor(now)); err != nil {
			return nil, err
		}
	}

	if err := t.open(t.pathFor(now)); err != nil {
		return nil, err
	}
	return t, nil
}

// truncateIfExists empties an existing file and leaves a missing one alone
func truncateIfExists(path string) error {
	err := os.Truncate(path, 0)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmtErrorf("failed to truncate log file '%s': %w", path, err)
}

// staticPath is <dir>/<name>.<ext>
func (t *fileTarget) staticPath() string {
	return filepath.Join(t.dir, t.name+t.ext)
}

// dailyPath is <dir>/log_<dd-MM-yyyy>.<ext>
func (t *fileTarget) dailyPath(ts time.Time) string {
	return filepath.Join(t.dir, rollingFilePrefix+ts.Format(rollingDateFormat)+t.ext)
}

// pathFor returns the file an entry stamped ts is written to
func (t *fileTarget) pathFor(ts time.Time) string {
	if t.rolling {
		return t.dailyPath(ts)
	}
	return t.staticPath()
}

// Path returns the path of the most recently opened file
func (t *fileTarget) Path() string {
	if p, ok := t.path.Load().(string); ok {
		return p
	}
	return ""
}

// open closes any current handle and opens path for appending
func (t *fileTarget) open(path string) error {
	if t.file != nil {
		t.closeFile()
	}

	// Directory may have been removed while running
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmtErrorf("failed to create log directory '%s': %w", filepath.Dir(path), err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmtErrorf("failed to open/create log file '%s': %w", path, err)
	}
	t.file = file
	t.path.Store(path)
	return nil
}

// append writes text and a newline to the file for ts, switching files when the day changed
func (t *fileTarget) append(ts time.Time, text string) error {
	path := t.pathFor(ts)
	if t.file == nil || path != t.Path() {
		if err := t.open(path); err != nil {
			return err
		}
	}

	buf := make([]byte, 0, len(text)+1)
	buf = append(buf, text...)
	buf = append(buf, '\n')

	if _, err := t.file.Write(buf); err != nil {
		// Reopen on the next append
		t.closeFile()
		return fmtErrorf("failed to write to log file '%s': %w", path, err)
	}
	t.dirty = true
	return nil
}

// sync flushes written bytes to stable storage
func (t *fileTarget) sync() error {
	if t.file == nil || !t.dirty {
		return nil
	}
	t.dirty = false
	if err := t.file.Sync(); err != nil {
		return fmtErrorf("failed to sync log file '%s': %w", t.file.Name(), err)
	}
	return nil
}

// close syncs and releases the handle
func (t *fileTarget) close() error {
	if t.file == nil {
		return nil
	}
	syncErr := t.sync()
	closeErr := t.closeFile()
	return combineErrors(syncErr, closeErr)
}

func (t *fileTarget) closeFile() error {
	f := t.file
	t.file = nil
	t.dirty = false
	if err := f.Close(); err != nil {
		return fmtErrorf("failed to close log file '%s': %w", f.Name(), err)
	}
	return nil
}
