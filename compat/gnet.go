package compat

import (
	"fmt"
	"os"
	"time"

	log "github.com/lixenwraith/simplelog"
	"github.com/panjf2000/gnet/v2/pkg/logging"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter wraps simplelog's Logger to implement gnet logging.Logger interface
type GnetAdapter struct {
	logger         *log.Logger
	customCategory string           // Set when the category is log.CategoryNone
	category       log.Category     // Category for all entries
	fatalHandler   func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *log.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger:   logger,
		category: log.CategoryNetwork,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithGnetCategory routes entries to a category other than Network.
// A custom name is used only with log.CategoryNone.
func WithGnetCategory(category log.Category, custom string) GnetOption {
	return func(a *GnetAdapter) {
		a.category = category
		a.customCategory = custom
	}
}

func (a *GnetAdapter) logf(level log.Level, format string, args ...any) {
	// Skip formatting for filtered levels
	if !a.logger.Enabled(level) {
		return
	}
	a.logger.Log(fmt.Sprintf(format, args...), level, a.category, a.customCategory)
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logf(log.LevelDebug, format, args...)
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logf(log.LevelInfo, format, args...)
}

// Warnf logs at warn level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logf(log.LevelWarn, format, args...)
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logf(log.LevelError, format, args...)
}

// Fatalf logs at error level and triggers fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Log("fatal: "+msg, log.LevelError, a.category, a.customCategory)

	// Ensure log is flushed before exit
	_ = a.logger.Flush(100 * time.Millisecond)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
