// FILE: sink.go
package log

import (
	"io"
	"os"
	"time"
)

// Sink receives log entries. Write never blocks on a failing destination and
// never returns an error; failures are reported to the sink's error stream.
type Sink interface {
	Write(entry Entry)
	Close() error
}

// Flusher is implemented by sinks that buffer entries before they reach storage
type Flusher interface {
	Flush(timeout time.Duration) error
}

// emitter is the call surface shared by all sinks
type emitter struct {
	now   func() time.Time
	write func(Entry)
}

// Log records a message
func (e emitter) Log(message string, level Level, category Category, customCategory string) {
	e.write(NewEntryAt(e.now(), message, level, category, customCategory))
}

// LogError records an error together with its chain of wrapped causes
func (e emitter) LogError(err error, level Level, category Category, customCategory string) {
	if err == nil {
		e.Log("nil", level, category, customCategory)
		return
	}
	e.write(NewEntryAt(e.now(), errorMessage(err), level, category, customCategory))
}

// LogValue records an arbitrary value
func (e emitter) LogValue(v any, level Level, category Category, customCategory string) {
	e.write(NewEntryAt(e.now(), valueMessage(v), level, category, customCategory))
}

// errorStream is the destination for diagnostics about the logger itself
var errorStream io.Writer = os.Stderr
