// FILE: lixenwraith/simplelog/utility.go
package log

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "log: ") {
		format = "log: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// internalLog writes a logger diagnostic to the error stream, never the log destination
func internalLog(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}

	// Ensure consistent "log: " prefix
	if !strings.HasPrefix(format, "log: ") {
		format = "log: " + format
	}
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}

	fmt.Fprintf(w, format, args...)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// ParseLevel converts a level name or its numeric value to a Level.
func ParseLevel(levelStr string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(levelStr))
	if lvl, ok := levelNames[s]; ok {
		return lvl, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && knownLevel(Level(n)) {
		return Level(n), nil
	}
	return 0, fmtErrorf("invalid level string: '%s' (use debug, info, warn, error)", levelStr)
}

// ParseCategory converts a category name to a Category.
func ParseCategory(categoryStr string) (Category, error) {
	s := strings.ToUpper(strings.TrimSpace(categoryStr))
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return CategoryNone, fmtErrorf("invalid category string: '%s'", categoryStr)
}

// reportError writes an error that already carries the "log: " prefix
func reportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	internalLog(w, "%s", strings.TrimPrefix(err.Error(), "log: "))
}
