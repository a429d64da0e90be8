// FILE: lixenwraith/simplelog/constant.go
package log

import (
	"fmt"
	"strings"
	"time"
)

// Level is the severity of a log entry. Higher values are more severe.
type Level int64

// Log level constants
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the symbolic name of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int64(l))
	}
}

// MarshalText emits the symbolic name, so JSON carries "ERROR" rather than 8
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText accepts a level name, case-insensitive
func (l *Level) UnmarshalText(b []byte) error {
	parsed, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Category is a predefined grouping for log entries.
// CategoryNone defers to the entry's custom category.
type Category int

// Category constants
const (
	CategoryNone Category = iota
	CategoryGeneral
	CategoryAuth
	CategoryNetwork
	CategoryDatabase
	CategoryUI
	CategoryAPI
	CategoryDebug
)

var categoryNames = [...]string{
	CategoryNone:     "NONE",
	CategoryGeneral:  "GENERAL",
	CategoryAuth:     "AUTH",
	CategoryNetwork:  "NETWORK",
	CategoryDatabase: "DATABASE",
	CategoryUI:       "UI",
	CategoryAPI:      "API",
	CategoryDebug:    "DEBUG",
}

// exactCategory matches a rendered category name, case-sensitive
func exactCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return CategoryNone, false
}

// String returns the symbolic name of the category
func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("CATEGORY(%d)", int(c))
}

// MarshalText emits the symbolic name
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts a category name, case-insensitive
func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Output formats
const (
	FormatTxt  = "txt"
	FormatJSON = "json"
)

// Console targets
const (
	TargetStdout = "stdout"
	TargetStderr = "stderr"
)

// File naming
const (
	rollingFilePrefix = "log_"
	rollingDateFormat = "02-01-2006"
)

// Timestamp layouts
const (
	// DefaultTimestampFormat renders dd.MM.yyyy HH:mm:ss
	DefaultTimestampFormat = "02.01.2006 15:04:05"
	jsonTimestampFormat    = time.RFC3339Nano
)

// Timers
const (
	// Minimum wait time used throughout the package
	minWaitTime = 10 * time.Millisecond
	// Width the level name is padded to in plain text
	levelWidth = 5
)

// levelNames is used by ParseLevel and validation
var levelNames = map[string]Level{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
}

// knownLevel reports whether l is one of the four defined levels
func knownLevel(l Level) bool {
	_, ok := levelNames[strings.ToLower(l.String())]
	return ok
}
